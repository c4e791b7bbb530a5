package wire

import (
	"carwash-booking/internal/adaptor"
	"carwash-booking/pkg/middleware"
	"carwash-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReport(
	r chi.Router,
	reportHandler *adaptor.ReportHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/reports/dashboard - Washes per branch and payment totals
		r.Get("/api/admin/reports/dashboard", reportHandler.Dashboard)

		// POST /api/admin/packages/expire - Sweep packages past their expiry
		r.Post("/api/admin/packages/expire", reportHandler.ExpirePackages)
	})
}
