package service

import (
	"context"
	"sync"
	"time"

	"lightningcath-stock-api/internal/catalog"
	"lightningcath-stock-api/internal/model"
	"lightningcath-stock-api/internal/repository"
	"lightningcath-stock-api/pkg/apierror"

	"go.uber.org/zap"
)

// maxUndoDepth bounds the undo history to the last 10 collection states.
const maxUndoDepth = 10

// MutationResult reports the outcome of a mutating admin operation.
// PersistErr is non-nil when the write-through to the snapshot store failed;
// the in-memory change still stands and the caller must surface the failure
// rather than silently dropping it.
type MutationResult struct {
	Total      int
	PersistErr error
}

// StockEditor is the admin-side controller over the stock collection: CRUD,
// inline quantity edits, import-merge, reset, and a bounded undo stack. All
// state transitions happen under one mutex; the undo snapshot and the
// mutation are taken together, so undo never observes a half-applied edit.
type StockEditor struct {
	repo repository.StockRepository
	log  *zap.Logger

	mu         sync.RWMutex
	items      []model.StockItem
	history    [][]model.StockItem
	loaded     bool
	live       bool
	lastSynced time.Time
}

// NewStockEditor creates the editor. The collection is loaded lazily on first
// use; loading the seed dataset never writes it back to the store.
func NewStockEditor(repo repository.StockRepository, log *zap.Logger) *StockEditor {
	if log == nil {
		log = zap.NewNop()
	}
	return &StockEditor{repo: repo, log: log}
}

// ensureLoaded populates the in-memory collection from the store, falling
// back to the seed dataset. Callers must hold the write lock.
func (e *StockEditor) ensureLoaded(ctx context.Context) error {
	if e.loaded {
		return nil
	}
	items, ok, err := e.repo.Load(ctx)
	if err != nil {
		return apierror.StorageFailure(err.Error())
	}
	if ok {
		e.items = items
		e.live = true
	} else {
		e.items = catalog.SeedStock()
		e.live = false
	}
	e.lastSynced = time.Now()
	e.loaded = true
	return nil
}

// List returns the filtered collection plus listing metadata.
func (e *StockEditor) List(ctx context.Context, q StockQuery) ([]model.StockItem, int, bool, time.Time, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureLoaded(ctx); err != nil {
		return nil, 0, false, time.Time{}, err
	}
	filtered := FilterStock(e.items, q)
	return model.CloneItems(filtered), len(e.items), e.live, e.lastSynced, nil
}

// Items returns a copy of the full collection.
func (e *StockEditor) Items(ctx context.Context) ([]model.StockItem, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return model.CloneItems(e.items), nil
}

// Refresh discards the in-memory collection and re-reads the store. The undo
// history survives; it belongs to this editing session, not to the store.
func (e *StockEditor) Refresh(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.loaded = false
	return e.ensureLoaded(ctx)
}

// Add appends a new item after validating the required fields and ID
// uniqueness. Rejection leaves the collection untouched.
func (e *StockEditor) Add(ctx context.Context, item model.StockItem) (MutationResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureLoaded(ctx); err != nil {
		return MutationResult{}, err
	}
	if err := validateRequired(item); err != nil {
		return MutationResult{}, err
	}
	if e.indexOf(item.ID) >= 0 {
		return MutationResult{}, apierror.DuplicateID(item.ID)
	}

	e.pushHistory()
	e.items = append(e.items, item.Clone())
	return e.writeThrough(ctx), nil
}

// Update replaces the record matching id. The ID is immutable once created:
// a body carrying a different ID is rejected.
func (e *StockEditor) Update(ctx context.Context, id string, item model.StockItem) (MutationResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureLoaded(ctx); err != nil {
		return MutationResult{}, err
	}
	if item.ID == "" {
		item.ID = id
	}
	if item.ID != id {
		return MutationResult{}, apierror.ValidationError("item ID is immutable",
			apierror.FieldError{Field: "id", Message: "ID cannot be changed after creation"})
	}
	if err := validateRequired(item); err != nil {
		return MutationResult{}, err
	}
	idx := e.indexOf(id)
	if idx < 0 {
		return MutationResult{}, apierror.NotFound("no item with ID '" + id + "'")
	}

	e.pushHistory()
	e.items[idx] = item.Clone()
	return e.writeThrough(ctx), nil
}

// Delete removes the record matching id.
func (e *StockEditor) Delete(ctx context.Context, id string) (MutationResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureLoaded(ctx); err != nil {
		return MutationResult{}, err
	}
	idx := e.indexOf(id)
	if idx < 0 {
		return MutationResult{}, apierror.NotFound("no item with ID '" + id + "'")
	}

	e.pushHistory()
	e.items = append(e.items[:idx], e.items[idx+1:]...)
	return e.writeThrough(ctx), nil
}

// SetQuantity is the narrow inline edit touching only the quantity, with the
// same sentinel-vs-integer coercion as CSV import.
func (e *StockEditor) SetQuantity(ctx context.Context, id, raw string) (model.Quantity, MutationResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureLoaded(ctx); err != nil {
		return model.Quantity{}, MutationResult{}, err
	}
	idx := e.indexOf(id)
	if idx < 0 {
		return model.Quantity{}, MutationResult{}, apierror.NotFound("no item with ID '" + id + "'")
	}

	e.pushHistory()
	q := model.ParseQuantity(raw)
	e.items[idx].Quantity = q
	return q, e.writeThrough(ctx), nil
}

// ImportMerge applies upsert-merge semantics: records whose IDs already exist
// are fully replaced in place, new IDs are appended, and existing records
// absent from the import are left untouched (order-stable).
func (e *StockEditor) ImportMerge(ctx context.Context, incoming []model.StockItem) (MutationResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureLoaded(ctx); err != nil {
		return MutationResult{}, err
	}
	for _, item := range incoming {
		if err := validateRequired(item); err != nil {
			return MutationResult{}, err
		}
	}

	e.pushHistory()
	byID := make(map[string]int, len(e.items))
	for i, item := range e.items {
		byID[item.ID] = i
	}
	for _, item := range incoming {
		if idx, ok := byID[item.ID]; ok {
			e.items[idx] = item.Clone()
		} else {
			byID[item.ID] = len(e.items)
			e.items = append(e.items, item.Clone())
		}
	}
	return e.writeThrough(ctx), nil
}

// Reset replaces the collection with the seed dataset and clears the
// persisted override.
func (e *StockEditor) Reset(ctx context.Context) (MutationResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureLoaded(ctx); err != nil {
		return MutationResult{}, err
	}

	e.pushHistory()
	e.items = catalog.SeedStock()
	e.live = false
	e.lastSynced = time.Now()

	res := MutationResult{Total: len(e.items)}
	if err := e.repo.Clear(ctx); err != nil {
		e.log.Error("failed to clear persisted stock data", zap.Error(err))
		res.PersistErr = apierror.StorageFailure(err.Error())
	}
	return res, nil
}

// Undo restores the most recent snapshot. Returns false (a no-op) once the
// stack is exhausted. The restored state is written through like any other
// mutation.
func (e *StockEditor) Undo(ctx context.Context) (MutationResult, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.history) == 0 {
		return MutationResult{Total: len(e.items)}, false
	}
	last := len(e.history) - 1
	e.items = e.history[last]
	e.history = e.history[:last]
	return e.writeThrough(ctx), true
}

// UndoDepth reports how many states can still be undone.
func (e *StockEditor) UndoDepth() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.history)
}

// indexOf finds an item by ID. Callers must hold the lock.
func (e *StockEditor) indexOf(id string) int {
	for i, item := range e.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// pushHistory snapshots the collection immediately before a mutation,
// trimming the stack to the last maxUndoDepth states. Callers must hold the
// write lock.
func (e *StockEditor) pushHistory() {
	e.history = append(e.history, model.CloneItems(e.items))
	if len(e.history) > maxUndoDepth {
		e.history = e.history[len(e.history)-maxUndoDepth:]
	}
}

// writeThrough persists the collection after a mutation. Failure is reported
// on the result, not returned as an error: writes are best-effort and the
// in-memory change stands. Callers must hold the write lock.
func (e *StockEditor) writeThrough(ctx context.Context) MutationResult {
	res := MutationResult{Total: len(e.items)}
	if err := e.repo.Save(ctx, e.items); err != nil {
		e.log.Error("failed to persist stock collection", zap.Error(err))
		res.PersistErr = apierror.StorageFailure(err.Error())
		return res
	}
	e.live = true
	e.lastSynced = time.Now()
	return res
}

func validateRequired(item model.StockItem) error {
	var details []apierror.FieldError
	if item.ID == "" {
		details = append(details, apierror.FieldError{Field: "id", Message: "this field is required"})
	}
	if item.Description == "" {
		details = append(details, apierror.FieldError{Field: "description", Message: "this field is required"})
	}
	if len(details) > 0 {
		return apierror.ValidationError("missing required fields", details...)
	}
	return nil
}
