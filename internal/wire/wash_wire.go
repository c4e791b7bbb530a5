package wire

import (
	"carwash-booking/internal/adaptor"
	"carwash-booking/pkg/middleware"
	"carwash-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWash(
	r chi.Router,
	washHandler *adaptor.WashHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== OPERATOR ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Operator(log))

		// POST /api/wash/scan-barcode - Redeem one wash at a branch
		r.Post("/api/wash/scan-barcode", washHandler.ScanBarcode)

		// GET /api/branches/{id}/washes - Wash history for a branch
		r.Get("/api/branches/{id}/washes", washHandler.ListBranchWashes)
	})

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// GET /api/user/washes - Wash history for the current user
		r.Get("/api/user/washes", washHandler.ListWashes)

		// POST /api/feedback - Rate a completed wash
		r.Post("/api/feedback", washHandler.RateWash)
	})
}
