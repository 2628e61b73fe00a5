package codec

import (
	"encoding/json"
	"fmt"

	"lightningcath-stock-api/internal/model"
)

// ToJSON serializes the collection as an indented item array, matching the
// admin panel's JSON export.
func ToJSON(items []model.StockItem) ([]byte, error) {
	return json.MarshalIndent(items, "", "  ")
}

// FromJSON parses a JSON item array. Items missing an ID or Description are
// rejected, aborting the whole import.
func FromJSON(data []byte) ([]model.StockItem, error) {
	var items []model.StockItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	for i, item := range items {
		if item.ID == "" || item.Description == "" {
			return nil, fmt.Errorf("json: item %d: id and description are required", i)
		}
	}
	return items, nil
}
