package adaptor

import (
	"encoding/json"
	"net/http"

	"carwash-booking/internal/dto/request"
	"carwash-booking/internal/usecase"
	"carwash-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ContentHandler struct {
	service usecase.ContentService
	log     *zap.Logger
}

func NewContentHandler(service usecase.ContentService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		log:     log.With(zap.String("handler", "content")),
	}
}

// GetPage handles GET /api/content/{slug} (public)
func (h *ContentHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Slug is required", nil)
		return
	}

	content, err := h.service.GetPage(r.Context(), slug)
	if err != nil {
		handleServiceError(h.log, w, err, "get content page")
		return
	}

	utils.ResponseSuccess(w, "success", content)
}

// UpsertPage handles PUT /api/admin/content (admin only)
func (h *ContentHandler) UpsertPage(w http.ResponseWriter, r *http.Request) {
	var req request.UpsertContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	content, err := h.service.UpsertPage(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "upsert content page")
		return
	}

	utils.ResponseSuccess(w, "success", content)
}

// ListBranches handles GET /api/branches (public)
func (h *ContentHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.service.ListBranches(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list branches")
		return
	}

	utils.ResponseSuccess(w, "success", branches)
}

// CreateBranch handles POST /api/admin/branches (admin only)
func (h *ContentHandler) CreateBranch(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	branch, err := h.service.CreateBranch(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create branch")
		return
	}

	utils.ResponseCreated(w, "success", branch)
}
