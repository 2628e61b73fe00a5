package service

import (
	"context"
	"fmt"
	"testing"

	"lightningcath-stock-api/internal/catalog"
	"lightningcath-stock-api/internal/model"
	"lightningcath-stock-api/internal/repository"
	"lightningcath-stock-api/pkg/apierror"
)

func newTestEditor(t *testing.T) (*StockEditor, *repository.MemoryStockRepository) {
	t.Helper()
	repo := repository.NewMemoryStockRepository(nil)
	return NewStockEditor(repo, nil), repo
}

func TestEditorLoadsSeedWithoutPersisting(t *testing.T) {
	ctx := context.Background()
	editor, repo := newTestEditor(t)

	items, err := editor.Items(ctx)
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	if len(items) != len(catalog.SeedStock()) {
		t.Errorf("expected seed collection, got %d items", len(items))
	}

	// Merely reading the seed must not write it to the store.
	if exists, _ := repo.Exists(ctx); exists {
		t.Error("seed fallback must not be persisted")
	}
}

func TestEditorAdd(t *testing.T) {
	ctx := context.Background()
	editor, repo := newTestEditor(t)

	item := model.StockItem{ID: "resin-900", Category: model.CategoryResin, Description: "Test resin"}
	res, err := editor.Add(ctx, item)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if res.PersistErr != nil {
		t.Errorf("unexpected persist error: %v", res.PersistErr)
	}
	if res.Total != len(catalog.SeedStock())+1 {
		t.Errorf("Total = %d", res.Total)
	}

	// The mutation is written through.
	if exists, _ := repo.Exists(ctx); !exists {
		t.Error("mutation must persist the collection")
	}
}

func TestEditorAddDuplicateIDLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	editor, _ := newTestEditor(t)

	before, _ := editor.Items(ctx)
	depthBefore := editor.UndoDepth()

	_, err := editor.Add(ctx, model.StockItem{ID: "resin-001", Description: "Duplicate"})
	apiErr, ok := err.(*apierror.Error)
	if !ok || apiErr.Code != "DUPLICATE_ID" {
		t.Fatalf("expected DUPLICATE_ID, got %v", err)
	}

	after, _ := editor.Items(ctx)
	if len(after) != len(before) {
		t.Error("rejected add must not change the collection")
	}
	if editor.UndoDepth() != depthBefore {
		t.Error("rejected add must not grow the undo history")
	}
}

func TestEditorAddMissingFields(t *testing.T) {
	ctx := context.Background()
	editor, _ := newTestEditor(t)

	_, err := editor.Add(ctx, model.StockItem{Notes: "no id or description"})
	apiErr, ok := err.(*apierror.Error)
	if !ok || apiErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
	if len(apiErr.Details) != 2 {
		t.Errorf("expected field errors for id and description, got %+v", apiErr.Details)
	}
}

func TestEditorUpdateIDImmutable(t *testing.T) {
	ctx := context.Background()
	editor, _ := newTestEditor(t)

	// Body without an ID inherits the path ID.
	if _, err := editor.Update(ctx, "resin-001", model.StockItem{Description: "Renamed"}); err != nil {
		t.Fatalf("Update without body ID failed: %v", err)
	}

	// A body carrying a different ID is rejected.
	_, err := editor.Update(ctx, "resin-001", model.StockItem{ID: "resin-999", Description: "Renamed"})
	apiErr, ok := err.(*apierror.Error)
	if !ok || apiErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR for ID change, got %v", err)
	}
}

func TestEditorUpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	editor, _ := newTestEditor(t)

	_, err := editor.Update(ctx, "nope-1", model.StockItem{Description: "x"})
	apiErr, ok := err.(*apierror.Error)
	if !ok || apiErr.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestEditorDelete(t *testing.T) {
	ctx := context.Background()
	editor, _ := newTestEditor(t)

	before, _ := editor.Items(ctx)
	res, err := editor.Delete(ctx, "resin-001")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if res.Total != len(before)-1 {
		t.Errorf("Total = %d, want %d", res.Total, len(before)-1)
	}

	if _, err := editor.Delete(ctx, "resin-001"); err == nil {
		t.Error("second delete must report not found")
	}
}

func TestEditorSetQuantityCoercion(t *testing.T) {
	ctx := context.Background()
	editor, _ := newTestEditor(t)

	tests := []struct {
		raw  string
		want model.Quantity
	}{
		{raw: "17", want: model.Quantity{Count: 17}},
		{raw: "Coming Soon!", want: model.Quantity{ComingSoon: true}},
		{raw: "garbage", want: model.Quantity{Count: 0}},
	}

	for _, tt := range tests {
		q, _, err := editor.SetQuantity(ctx, "resin-002", tt.raw)
		if err != nil {
			t.Fatalf("SetQuantity(%q) failed: %v", tt.raw, err)
		}
		if q != tt.want {
			t.Errorf("SetQuantity(%q) = %+v, want %+v", tt.raw, q, tt.want)
		}
	}
}

func TestEditorImportMerge(t *testing.T) {
	ctx := context.Background()
	editor, _ := newTestEditor(t)

	seedLen := len(catalog.SeedStock())
	incoming := []model.StockItem{
		{ID: "resin-001", Description: "Replaced in place"},
		{ID: "new-001", Description: "Appended"},
	}

	res, err := editor.ImportMerge(ctx, incoming)
	if err != nil {
		t.Fatalf("ImportMerge failed: %v", err)
	}
	if res.Total != seedLen+1 {
		t.Errorf("Total = %d, want %d", res.Total, seedLen+1)
	}

	items, _ := editor.Items(ctx)
	// Existing ID replaced without moving.
	if items[0].ID != "resin-001" || items[0].Description != "Replaced in place" {
		t.Errorf("item 0 = %+v", items[0])
	}
	// New ID appended at the end.
	if items[len(items)-1].ID != "new-001" {
		t.Errorf("last item = %+v", items[len(items)-1])
	}
}

func TestEditorImportMergeValidatesBeforeApplying(t *testing.T) {
	ctx := context.Background()
	editor, _ := newTestEditor(t)

	before, _ := editor.Items(ctx)
	_, err := editor.ImportMerge(ctx, []model.StockItem{
		{ID: "ok-1", Description: "fine"},
		{ID: "", Description: "missing id"},
	})
	if err == nil {
		t.Fatal("expected validation failure")
	}

	after, _ := editor.Items(ctx)
	if len(after) != len(before) {
		t.Error("failed import must not partially apply")
	}
}

func TestEditorUndo(t *testing.T) {
	ctx := context.Background()
	editor, _ := newTestEditor(t)

	seedLen := len(catalog.SeedStock())
	for i := 0; i < 3; i++ {
		item := model.StockItem{ID: fmt.Sprintf("undo-%d", i), Description: "Undo test"}
		if _, err := editor.Add(ctx, item); err != nil {
			t.Fatalf("Add %d failed: %v", i, err)
		}
	}
	if editor.UndoDepth() != 3 {
		t.Fatalf("UndoDepth = %d, want 3", editor.UndoDepth())
	}

	for i := 2; i >= 0; i-- {
		res, ok := editor.Undo(ctx)
		if !ok {
			t.Fatalf("Undo %d reported empty stack", i)
		}
		if res.Total != seedLen+i {
			t.Errorf("after undo, Total = %d, want %d", res.Total, seedLen+i)
		}
	}

	// Exhausted stack is a no-op.
	if _, ok := editor.Undo(ctx); ok {
		t.Error("Undo on empty stack must report false")
	}
	items, _ := editor.Items(ctx)
	if len(items) != seedLen {
		t.Errorf("collection = %d items, want seed length %d", len(items), seedLen)
	}
}

func TestEditorUndoDepthBounded(t *testing.T) {
	ctx := context.Background()
	editor, _ := newTestEditor(t)

	for i := 0; i < 15; i++ {
		item := model.StockItem{ID: fmt.Sprintf("bulk-%d", i), Description: "Bulk"}
		if _, err := editor.Add(ctx, item); err != nil {
			t.Fatalf("Add %d failed: %v", i, err)
		}
	}
	if editor.UndoDepth() != maxUndoDepth {
		t.Errorf("UndoDepth = %d, want %d", editor.UndoDepth(), maxUndoDepth)
	}

	undone := 0
	for {
		if _, ok := editor.Undo(ctx); !ok {
			break
		}
		undone++
	}
	if undone != maxUndoDepth {
		t.Errorf("undid %d states, want %d", undone, maxUndoDepth)
	}
}

func TestEditorPersistFailureIsWarningNotError(t *testing.T) {
	ctx := context.Background()
	editor, repo := newTestEditor(t)
	repo.FailSaves = true

	res, err := editor.Add(ctx, model.StockItem{ID: "x-1", Description: "X"})
	if err != nil {
		t.Fatalf("Add must succeed in memory: %v", err)
	}
	if res.PersistErr == nil {
		t.Fatal("expected a persist error on the result")
	}

	// The in-memory change stands.
	items, _ := editor.Items(ctx)
	found := false
	for _, item := range items {
		if item.ID == "x-1" {
			found = true
		}
	}
	if !found {
		t.Error("in-memory change must survive a failed write-through")
	}
}

func TestEditorReset(t *testing.T) {
	ctx := context.Background()
	editor, repo := newTestEditor(t)

	if _, err := editor.Add(ctx, model.StockItem{ID: "x-1", Description: "X"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if exists, _ := repo.Exists(ctx); !exists {
		t.Fatal("expected a persisted snapshot before reset")
	}

	res, err := editor.Reset(ctx)
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if res.Total != len(catalog.SeedStock()) {
		t.Errorf("Total = %d, want seed length", res.Total)
	}
	if exists, _ := repo.Exists(ctx); exists {
		t.Error("Reset must clear the persisted override")
	}

	// Reset itself is undoable.
	if _, ok := editor.Undo(ctx); !ok {
		t.Error("Reset must push an undo state")
	}
}

func TestEditorRefreshKeepsUndoHistory(t *testing.T) {
	ctx := context.Background()
	editor, _ := newTestEditor(t)

	if _, err := editor.Add(ctx, model.StockItem{ID: "x-1", Description: "X"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := editor.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if editor.UndoDepth() != 1 {
		t.Errorf("Refresh must keep the undo history, depth = %d", editor.UndoDepth())
	}
}
