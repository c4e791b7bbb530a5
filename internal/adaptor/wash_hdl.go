package adaptor

import (
	"encoding/json"
	"net/http"

	"carwash-booking/internal/dto/request"
	"carwash-booking/internal/usecase"
	"carwash-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WashHandler struct {
	service usecase.RedemptionService
	log     *zap.Logger
}

func NewWashHandler(service usecase.RedemptionService, log *zap.Logger) *WashHandler {
	return &WashHandler{
		service: service,
		log:     log.With(zap.String("handler", "wash")),
	}
}

// ScanBarcode handles POST /api/wash/scan-barcode (operator)
func (h *WashHandler) ScanBarcode(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ScanBarcodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.ScanBarcode(r.Context(), operatorID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "scan barcode")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// ListWashes handles GET /api/user/washes (protected)
func (h *WashHandler) ListWashes(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 10)

	washes, err := h.service.ListWashes(r.Context(), userID, page, perPage)
	if err != nil {
		handleServiceError(h.log, w, err, "list washes")
		return
	}

	utils.ResponseSuccess(w, "success", washes)
}

// ListBranchWashes handles GET /api/branches/{id}/washes (operator)
func (h *WashHandler) ListBranchWashes(w http.ResponseWriter, r *http.Request) {
	branchID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid branch ID", nil)
		return
	}

	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 10)

	washes, err := h.service.ListBranchWashes(r.Context(), branchID, page, perPage)
	if err != nil {
		handleServiceError(h.log, w, err, "list branch washes")
		return
	}

	utils.ResponseSuccess(w, "success", washes)
}

// RateWash handles POST /api/feedback (protected)
func (h *WashHandler) RateWash(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.RateWash(r.Context(), userID, &req); err != nil {
		handleServiceError(h.log, w, err, "rate wash")
		return
	}

	utils.ResponseCreated(w, "success", nil)
}
