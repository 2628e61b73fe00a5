package service

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"lightningcath-stock-api/internal/cache"
	"lightningcath-stock-api/internal/catalog"
	"lightningcath-stock-api/internal/model"
	"lightningcath-stock-api/internal/repository"

	"go.uber.org/zap"
)

// StockQuery holds the user-entered filters of a stock listing.
type StockQuery struct {
	Search   string
	Category string
	Family   string
}

// FilterStock applies the query to a collection. Search is case-insensitive
// substring matching across ID, description, material family and notes; an
// item matches if ANY of those fields contains the term. Category and family
// are exact matches, AND-combined with the search predicate.
func FilterStock(items []model.StockItem, q StockQuery) []model.StockItem {
	term := strings.ToLower(q.Search)

	out := make([]model.StockItem, 0, len(items))
	for _, item := range items {
		if term != "" &&
			!strings.Contains(strings.ToLower(item.ID), term) &&
			!strings.Contains(strings.ToLower(item.Description), term) &&
			!strings.Contains(strings.ToLower(item.MaterialFamily), term) &&
			!strings.Contains(strings.ToLower(item.Notes), term) {
			continue
		}
		if q.Category != "" && item.Category != q.Category {
			continue
		}
		if q.Family != "" && item.MaterialFamily != q.Family {
			continue
		}
		out = append(out, item)
	}
	return out
}

// MaterialFamilies derives the sorted distinct family list from whatever
// collection is currently loaded, so newly imported families show up in the
// filter options.
func MaterialFamilies(items []model.StockItem) []string {
	seen := make(map[string]bool, len(items))
	var families []string
	for _, item := range items {
		if item.MaterialFamily == "" || seen[item.MaterialFamily] {
			continue
		}
		seen[item.MaterialFamily] = true
		families = append(families, item.MaterialFamily)
	}
	sort.Strings(families)
	return families
}

// viewState is the cached read-view payload.
type viewState struct {
	Live       bool              `json:"live"`
	LastSynced time.Time         `json:"last_synced"`
	Items      []model.StockItem `json:"items"`
}

const viewCacheKey = "stock:view"

// StockView is the read-only listing side of the portal. It shares no memory
// with the admin editor; the durable snapshot store is the only channel
// between the two, so edits become visible here on cache expiry or an
// explicit refresh (the focus/visibility re-poll of the original UI).
type StockView struct {
	repo  repository.StockRepository
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

// NewStockView creates the read view.
func NewStockView(repo repository.StockRepository, c cache.Cache, ttl time.Duration, log *zap.Logger) *StockView {
	if log == nil {
		log = zap.NewNop()
	}
	return &StockView{repo: repo, cache: c, ttl: ttl, log: log}
}

// Items returns the current collection, the live-data flag and the moment the
// snapshot was last read. Falls back to the seed dataset when no persisted
// override exists.
func (v *StockView) Items(ctx context.Context) ([]model.StockItem, bool, time.Time, error) {
	data, err := v.cache.GetOrSet(ctx, viewCacheKey, v.ttl, func() ([]byte, error) {
		state, err := v.loadState(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(state)
	})
	if err != nil {
		return nil, false, time.Time{}, err
	}

	var state viewState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, false, time.Time{}, err
	}
	return state.Items, state.Live, state.LastSynced, nil
}

// Refresh busts the cached view so the next read hits the store.
func (v *StockView) Refresh(ctx context.Context) error {
	return v.cache.Delete(ctx, viewCacheKey)
}

func (v *StockView) loadState(ctx context.Context) (viewState, error) {
	items, ok, err := v.repo.Load(ctx)
	if err != nil {
		return viewState{}, err
	}
	if !ok {
		return viewState{
			Live:       false,
			LastSynced: time.Now(),
			Items:      catalog.SeedStock(),
		}, nil
	}
	return viewState{Live: true, LastSynced: time.Now(), Items: items}, nil
}
