package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"lightningcath-stock-api/internal/model"

	"go.uber.org/zap"
)

func TestSnapshotRoundTrip(t *testing.T) {
	items := []model.StockItem{
		{ID: "a-1", Description: "Item A", Quantity: model.Quantity{Count: 3}},
		{ID: "a-2", Description: "Item B", Quantity: model.Quantity{ComingSoon: true},
			Attrs: map[string]string{model.AttrLength: "48\""}},
	}

	blob, err := encodeSnapshot(items, time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("encodeSnapshot failed: %v", err)
	}

	// The envelope carries the schema version and timestamp.
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(blob, &envelope); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	var version string
	if err := json.Unmarshal(envelope["version"], &version); err != nil || version != SnapshotVersion {
		t.Errorf("version = %q, want %q", version, SnapshotVersion)
	}
	var ts string
	if err := json.Unmarshal(envelope["timestamp"], &ts); err != nil || ts != "2026-01-15T10:00:00Z" {
		t.Errorf("timestamp = %q, want RFC3339 UTC", ts)
	}

	decoded, ok := decodeSnapshot(blob, zap.NewNop())
	if !ok {
		t.Fatal("decodeSnapshot rejected its own encoding")
	}
	if len(decoded) != 2 || decoded[1].Attr(model.AttrLength) != "48\"" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestDecodeSnapshotRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{name: "corrupt_json", blob: `{"version":"1.0","items":[`},
		{name: "not_json_at_all", blob: `hello`},
		{name: "version_mismatch", blob: `{"version":"2.0","timestamp":"x","items":[]}`},
		{name: "missing_version", blob: `{"items":[]}`},
		{name: "null_items", blob: `{"version":"1.0","timestamp":"x","items":null}`},
		{name: "missing_items", blob: `{"version":"1.0","timestamp":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, ok := decodeSnapshot([]byte(tt.blob), zap.NewNop())
			if ok {
				t.Errorf("expected rejection, got %+v", items)
			}
		})
	}
}

func TestEncodeSnapshotEmptyCollectionStaysLive(t *testing.T) {
	blob, err := encodeSnapshot(nil, time.Now())
	if err != nil {
		t.Fatalf("encodeSnapshot failed: %v", err)
	}
	items, ok := decodeSnapshot(blob, zap.NewNop())
	if !ok {
		t.Fatal("an emptied collection must decode as present")
	}
	if items == nil || len(items) != 0 {
		t.Errorf("decoded = %+v, want empty collection", items)
	}
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryStockRepository(nil)

	// Empty store reports absent, not an error.
	if _, ok, err := repo.Load(ctx); err != nil || ok {
		t.Fatalf("empty Load = (ok=%v, err=%v), want absent", ok, err)
	}
	if exists, _ := repo.Exists(ctx); exists {
		t.Error("empty store must not report existence")
	}

	items := []model.StockItem{{ID: "a-1", Description: "Item A"}}
	if err := repo.Save(ctx, items); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, ok, err := repo.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load = (ok=%v, err=%v)", ok, err)
	}
	if len(loaded) != 1 || loaded[0].ID != "a-1" {
		t.Errorf("loaded = %+v", loaded)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok, _ := repo.Load(ctx); ok {
		t.Error("cleared store must report absent")
	}
}

func TestMemoryRepositoryStaleVersionTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryStockRepository(nil)
	repo.SeedBlob([]byte(`{"version":"0.9","timestamp":"old","items":[{"id":"x","description":"y"}]}`))

	_, ok, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error for stale version: %v", err)
	}
	if ok {
		t.Error("stale-version snapshot must read as absent")
	}

	// The stale blob stays in place until the next write overwrites it.
	if exists, _ := repo.Exists(ctx); !exists {
		t.Error("stale blob must not be deleted on read")
	}
}

func TestMemoryRepositoryFailSaves(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryStockRepository(nil)
	repo.FailSaves = true

	if err := repo.Save(ctx, nil); err == nil {
		t.Error("expected Save to fail")
	}
}
