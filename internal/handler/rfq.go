package handler

import (
	"encoding/json"
	"net/http"

	"lightningcath-stock-api/internal/model"
	"lightningcath-stock-api/internal/service"
	"lightningcath-stock-api/pkg/apierror"
	"lightningcath-stock-api/pkg/response"
)

// RFQHandler serves quote request submission and preview.
type RFQHandler struct {
	rfq *service.RFQService
}

// NewRFQHandler creates a new RFQ handler.
func NewRFQHandler(rfq *service.RFQService) *RFQHandler {
	return &RFQHandler{rfq: rfq}
}

// Submit handles POST /api/v1/rfq
func (h *RFQHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var record model.RFQRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}

	result, err := h.rfq.Submit(r.Context(), record)
	if err != nil {
		// Dispatch failure still carries the rendered document so the
		// caller can offer the local download.
		if apiErr, ok := err.(*apierror.Error); ok && result != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(apiErr.StatusCode)
			_ = json.NewEncoder(w).Encode(response.Response{
				Success: false,
				Data:    result,
				Warning: apiErr.Message,
			})
			return
		}
		response.Error(w, err)
		return
	}

	response.OK(w, result)
}

// Preview handles POST /api/v1/rfq/preview
func (h *RFQHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var record model.RFQRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}

	filename, doc, err := h.rfq.Preview(record)
	if err != nil {
		response.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}
