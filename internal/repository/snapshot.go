package repository

import (
	"encoding/json"
	"time"

	"lightningcath-stock-api/internal/model"

	"go.uber.org/zap"
)

const (
	// SnapshotKey is the single well-known key the collection lives under.
	SnapshotKey = "lightningcath_stock_data"

	// SnapshotVersion is the schema version tag embedded in every snapshot.
	// A stored snapshot with any other version is treated as absent; no
	// migration is attempted.
	SnapshotVersion = "1.0"
)

// snapshot is the persisted store record.
type snapshot struct {
	Version   string            `json:"version"`
	Timestamp string            `json:"timestamp"`
	Items     []model.StockItem `json:"items"`
}

// encodeSnapshot wraps the collection with the version tag and timestamp.
// A nil collection is written as [] so an emptied collection stays live.
func encodeSnapshot(items []model.StockItem, now time.Time) ([]byte, error) {
	if items == nil {
		items = []model.StockItem{}
	}
	return json.Marshal(snapshot{
		Version:   SnapshotVersion,
		Timestamp: now.UTC().Format(time.RFC3339),
		Items:     items,
	})
}

// decodeSnapshot parses a stored blob. Corrupt JSON, a version mismatch or a
// missing items payload yields (nil, false) rather than an error; the caller
// falls back to the seed data. Stale data stays in the store untouched until
// the next write overwrites it.
func decodeSnapshot(data []byte, log *zap.Logger) ([]model.StockItem, bool) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Warn("discarding corrupt stock snapshot", zap.Error(err))
		return nil, false
	}
	if snap.Version != SnapshotVersion {
		log.Warn("discarding stock snapshot with mismatched schema version",
			zap.String("stored_version", snap.Version),
			zap.String("expected_version", SnapshotVersion))
		return nil, false
	}
	// A null or missing items array is an absent collection, not an empty
	// live one. An emptied collection is stored as [].
	if snap.Items == nil {
		log.Warn("discarding stock snapshot with no items payload")
		return nil, false
	}
	return snap.Items, true
}
