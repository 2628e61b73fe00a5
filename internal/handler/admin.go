package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"runtime"
	"strings"
	"time"

	"lightningcath-stock-api/internal/codec"
	"lightningcath-stock-api/internal/middleware"
	"lightningcath-stock-api/internal/model"
	"lightningcath-stock-api/internal/service"
	"lightningcath-stock-api/pkg/apierror"
	"lightningcath-stock-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// maxImportBytes caps admin import payloads.
const maxImportBytes = 8 << 20

// AdminHandler serves the authenticated admin surface: session management and
// stock mutation.
type AdminHandler struct {
	editor    *service.StockEditor
	view      *service.StockView
	tokens    *service.TokenService
	startTime time.Time
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(editor *service.StockEditor, view *service.StockView, tokens *service.TokenService) *AdminHandler {
	return &AdminHandler{
		editor:    editor,
		view:      view,
		tokens:    tokens,
		startTime: time.Now(),
	}
}

// Login handles POST /api/v1/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}

	token, ttl, err := h.tokens.Login(r.Context(), req.Key)
	if err != nil {
		response.Error(w, apierror.Unauthorized(err.Error()))
		return
	}

	response.OK(w, map[string]interface{}{
		"token":      token,
		"expires_in": int(ttl.Seconds()),
	})
}

// Logout handles POST /api/v1/admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r)
	if err := h.tokens.Logout(r.Context(), token); err != nil {
		response.Error(w, apierror.InternalError("failed to revoke session"))
		return
	}
	response.NoContent(w)
}

// List handles GET /api/v1/admin/stock
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	items, total, live, lastSynced, err := h.editor.List(r.Context(), queryFromRequest(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSONWithMeta(w, http.StatusOK, items, response.Meta{
		Total:      total,
		Showing:    len(items),
		Live:       live,
		LastSynced: lastSynced.Format(time.RFC3339),
	})
}

// Add handles POST /api/v1/admin/stock
func (h *AdminHandler) Add(w http.ResponseWriter, r *http.Request) {
	var item model.StockItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}

	res, err := h.editor.Add(r.Context(), item)
	if err != nil {
		response.Error(w, err)
		return
	}
	h.invalidateView(r)
	writeMutation(w, http.StatusCreated, item, res)
}

// Update handles PUT /api/v1/admin/stock/{id}
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var item model.StockItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}

	res, err := h.editor.Update(r.Context(), id, item)
	if err != nil {
		response.Error(w, err)
		return
	}
	h.invalidateView(r)
	writeMutation(w, http.StatusOK, item, res)
}

// Delete handles DELETE /api/v1/admin/stock/{id}
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.editor.Delete(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	h.invalidateView(r)
	writeMutation(w, http.StatusOK, map[string]interface{}{
		"deleted": id,
		"total":   res.Total,
	}, res)
}

// SetQuantity handles PATCH /api/v1/admin/stock/{id}/quantity
func (h *AdminHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Quantity string `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}

	q, res, err := h.editor.SetQuantity(r.Context(), id, req.Quantity)
	if err != nil {
		response.Error(w, err)
		return
	}
	h.invalidateView(r)
	writeMutation(w, http.StatusOK, map[string]interface{}{
		"id":       id,
		"quantity": q,
	}, res)
}

// Import handles POST /api/v1/admin/stock/import. The payload format follows
// the Content-Type: text/csv for CSV, anything else is parsed as JSON.
func (h *AdminHandler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		response.Error(w, apierror.BadRequest("failed to read request body"))
		return
	}

	var incoming []model.StockItem
	if strings.Contains(r.Header.Get("Content-Type"), "csv") {
		incoming, err = codec.FromCSV(string(body))
	} else {
		incoming, err = codec.FromJSON(body)
	}
	if err != nil {
		response.Error(w, apierror.ParseFailure(err.Error()))
		return
	}

	res, err := h.editor.ImportMerge(r.Context(), incoming)
	if err != nil {
		response.Error(w, err)
		return
	}
	h.invalidateView(r)
	writeMutation(w, http.StatusOK, map[string]interface{}{
		"imported": len(incoming),
		"total":    res.Total,
	}, res)
}

// Undo handles POST /api/v1/admin/stock/undo
func (h *AdminHandler) Undo(w http.ResponseWriter, r *http.Request) {
	res, ok := h.editor.Undo(r.Context())
	if !ok {
		response.Error(w, apierror.Conflict("nothing to undo"))
		return
	}
	h.invalidateView(r)
	writeMutation(w, http.StatusOK, map[string]interface{}{
		"total":          res.Total,
		"undo_remaining": h.editor.UndoDepth(),
	}, res)
}

// Reset handles POST /api/v1/admin/stock/reset
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	res, err := h.editor.Reset(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	h.invalidateView(r)
	writeMutation(w, http.StatusOK, map[string]interface{}{
		"total": res.Total,
	}, res)
}

// Refresh handles POST /api/v1/admin/stock/refresh
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.editor.Refresh(r.Context()); err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.editor.Items(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, map[string]interface{}{
		"total": len(items),
	})
}

// ExportCSV handles GET /api/v1/admin/stock/export/csv. Unlike the public
// export this reads the editing session, uncommitted state included.
func (h *AdminHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	items, err := h.editor.Items(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="lightningcath-stock.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(codec.ToCSV(items)))
}

// Stats handles GET /api/v1/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	items, err := h.editor.Items(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	byCategory := make(map[string]int)
	comingSoon := 0
	for _, item := range items {
		byCategory[item.Category]++
		if item.Quantity.ComingSoon {
			comingSoon++
		}
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	response.OK(w, map[string]interface{}{
		"stock": map[string]interface{}{
			"total":       len(items),
			"by_category": byCategory,
			"coming_soon": comingSoon,
			"undo_depth":  h.editor.UndoDepth(),
		},
		"runtime": map[string]interface{}{
			"uptime":     time.Since(h.startTime).Round(time.Second).String(),
			"go_version": runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
			"alloc_mb":   mem.Alloc / 1024 / 1024,
		},
	})
}

// invalidateView drops the public read cache after a mutation so browsers see
// the change on their next poll.
func (h *AdminHandler) invalidateView(r *http.Request) {
	if h.view != nil {
		_ = h.view.Refresh(r.Context())
	}
}

// writeMutation renders a mutation outcome, downgrading a persistence failure
// to a warning on an otherwise successful response.
func writeMutation(w http.ResponseWriter, statusCode int, data interface{}, res service.MutationResult) {
	if res.PersistErr != nil {
		response.JSONWithWarning(w, statusCode, data,
			"saved in memory only: "+res.PersistErr.Error())
		return
	}
	response.JSON(w, statusCode, data)
}
