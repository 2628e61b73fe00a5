package handler

import (
	"fmt"
	"net/http"
	"time"

	"lightningcath-stock-api/internal/catalog"
	"lightningcath-stock-api/internal/codec"
	"lightningcath-stock-api/internal/model"
	"lightningcath-stock-api/internal/service"
	"lightningcath-stock-api/pkg/apierror"
	"lightningcath-stock-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// StockHandler serves the public, read-only stock surface.
type StockHandler struct {
	view *service.StockView
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(view *service.StockView) *StockHandler {
	return &StockHandler{view: view}
}

// queryFromRequest extracts the listing filters.
func queryFromRequest(r *http.Request) service.StockQuery {
	q := r.URL.Query()
	return service.StockQuery{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Family:   q.Get("family"),
	}
}

// List handles GET /api/v1/stock
func (h *StockHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.URL.Query().Get("refresh") != "" {
		if err := h.view.Refresh(ctx); err != nil {
			response.Error(w, apierror.StorageFailure(err.Error()))
			return
		}
	}

	items, live, lastSynced, err := h.view.Items(ctx)
	if err != nil {
		response.Error(w, apierror.StorageFailure(err.Error()))
		return
	}

	filtered := service.FilterStock(items, queryFromRequest(r))
	response.JSONWithMeta(w, http.StatusOK, filtered, response.Meta{
		Total:      len(items),
		Showing:    len(filtered),
		Live:       live,
		LastSynced: lastSynced.Format(time.RFC3339),
	})
}

// Families handles GET /api/v1/stock/families
func (h *StockHandler) Families(w http.ResponseWriter, r *http.Request) {
	items, _, _, err := h.view.Items(r.Context())
	if err != nil {
		response.Error(w, apierror.StorageFailure(err.Error()))
		return
	}
	response.OK(w, service.MaterialFamilies(items))
}

// Categories handles GET /api/v1/stock/categories
func (h *StockHandler) Categories(w http.ResponseWriter, r *http.Request) {
	response.OK(w, model.Categories())
}

// ExportCSV handles GET /api/v1/stock/export/csv
func (h *StockHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	items, _, _, err := h.view.Items(r.Context())
	if err != nil {
		response.Error(w, apierror.StorageFailure(err.Error()))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="lightningcath-stock.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(codec.ToCSV(items)))
}

// ExportJSON handles GET /api/v1/stock/export/json
func (h *StockHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	items, _, _, err := h.view.Items(r.Context())
	if err != nil {
		response.Error(w, apierror.StorageFailure(err.Error()))
		return
	}

	data, err := codec.ToJSON(items)
	if err != nil {
		response.Error(w, apierror.InternalError("failed to encode stock data"))
		return
	}

	filename := fmt.Sprintf("lightningcath-stock-%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Services handles GET /api/v1/services
func (h *StockHandler) Services(w http.ResponseWriter, r *http.Request) {
	response.OK(w, catalog.Services())
}

// LeadTime handles GET /api/v1/services/{service_id}/lead-time
func (h *StockHandler) LeadTime(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "service_id")

	start := time.Now()
	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(w, apierror.BadRequest("start must be formatted YYYY-MM-DD"))
			return
		}
		start = parsed
	}

	estimate, err := service.EstimateLeadTime(serviceID, start)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, estimate)
}
