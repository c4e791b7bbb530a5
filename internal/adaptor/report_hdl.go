package adaptor

import (
	"net/http"

	"carwash-booking/internal/usecase"
	"carwash-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// Dashboard handles GET /api/admin/reports/dashboard?days= (admin only)
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	days := utils.ParseInt(r.URL.Query().Get("days"), 30)

	dashboard, err := h.service.Dashboard(r.Context(), days)
	if err != nil {
		handleServiceError(h.log, w, err, "build dashboard")
		return
	}

	utils.ResponseSuccess(w, "success", dashboard)
}

// ExpirePackages handles POST /api/admin/packages/expire (admin only)
func (h *ReportHandler) ExpirePackages(w http.ResponseWriter, r *http.Request) {
	expired, err := h.service.ExpireOverdue(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "expire packages")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]int64{"expired": expired})
}
