package service

import (
	"context"
	"testing"
	"time"

	"lightningcath-stock-api/internal/cache"
	"lightningcath-stock-api/internal/catalog"
	"lightningcath-stock-api/internal/model"
	"lightningcath-stock-api/internal/repository"
)

func TestFilterStock(t *testing.T) {
	items := catalog.SeedStock()

	tests := []struct {
		name    string
		query   StockQuery
		wantIDs []string
		min     int
	}{
		{
			name:  "no_filters_returns_all",
			query: StockQuery{},
			min:   len(items),
		},
		{
			name:  "search_is_case_insensitive",
			query: StockQuery{Search: "PEBAX"},
			min:   10,
		},
		{
			name:    "search_matches_id",
			query:   StockQuery{Search: "resin-023"},
			wantIDs: []string{"resin-023"},
		},
		{
			name:    "search_matches_notes",
			query:   StockQuery{Search: "mixed with tpu"},
			wantIDs: []string{"resin-036"},
		},
		{
			name:  "category_is_exact",
			query: StockQuery{Category: model.CategoryHeatShrink},
			min:   1,
		},
		{
			name:    "search_and_family_combine",
			query:   StockQuery{Search: "grilamid", Family: "Nylon"},
			wantIDs: []string{"resin-025", "resin-026"},
		},
		{
			name:    "no_match",
			query:   StockQuery{Search: "does-not-exist"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterStock(items, tt.query)
			if tt.wantIDs != nil {
				if len(got) != len(tt.wantIDs) {
					t.Fatalf("got %d items, want %d", len(got), len(tt.wantIDs))
				}
				for i, id := range tt.wantIDs {
					if got[i].ID != id {
						t.Errorf("item %d = %s, want %s", i, got[i].ID, id)
					}
				}
				return
			}
			if len(got) < tt.min {
				t.Errorf("got %d items, want at least %d", len(got), tt.min)
			}
			for _, item := range got {
				if tt.query.Category != "" && item.Category != tt.query.Category {
					t.Errorf("item %s leaked through category filter", item.ID)
				}
			}
		})
	}
}

func TestMaterialFamiliesSortedDistinct(t *testing.T) {
	items := []model.StockItem{
		{ID: "a", MaterialFamily: "Pebax"},
		{ID: "b", MaterialFamily: "Nylon"},
		{ID: "c", MaterialFamily: "Pebax"},
		{ID: "d", MaterialFamily: ""},
		{ID: "e", MaterialFamily: "Acetal"},
	}

	got := MaterialFamilies(items)
	want := []string{"Acetal", "Nylon", "Pebax"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("families[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestStockViewSeedFallbackAndRefresh(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryStockRepository(nil)
	c := cache.NewMemoryCache()
	defer c.Close()

	view := NewStockView(repo, c, time.Minute, nil)

	items, live, _, err := view.Items(ctx)
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	if live {
		t.Error("seed fallback must report live=false")
	}
	if len(items) != len(catalog.SeedStock()) {
		t.Errorf("expected seed collection, got %d items", len(items))
	}

	// A write lands in the store but the cached view is still served.
	if err := repo.Save(ctx, []model.StockItem{{ID: "only-1", Description: "One"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	items, _, _, _ = view.Items(ctx)
	if len(items) != len(catalog.SeedStock()) {
		t.Errorf("cached view must be stable until refresh, got %d items", len(items))
	}

	// Refresh busts the cache; the next read sees the persisted override.
	if err := view.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	items, live, _, err = view.Items(ctx)
	if err != nil {
		t.Fatalf("Items after refresh failed: %v", err)
	}
	if !live || len(items) != 1 || items[0].ID != "only-1" {
		t.Errorf("after refresh: live=%v items=%+v", live, items)
	}
}

func TestViewAndEditorShareOnlyTheStore(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryStockRepository(nil)
	c := cache.NewMemoryCache()
	defer c.Close()

	view := NewStockView(repo, c, time.Minute, nil)
	editor := NewStockEditor(repo, nil)

	if _, err := editor.Add(ctx, model.StockItem{ID: "shared-1", Description: "Shared"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := view.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	items, live, _, err := view.Items(ctx)
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	if !live {
		t.Error("view must see the editor's persisted write as live data")
	}
	found := false
	for _, item := range items {
		if item.ID == "shared-1" {
			found = true
		}
	}
	if !found {
		t.Error("editor write not visible to the view after refresh")
	}
}
