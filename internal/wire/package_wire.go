package wire

import (
	"carwash-booking/internal/adaptor"
	"carwash-booking/pkg/middleware"
	"carwash-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePackage(
	r chi.Router,
	packageHandler *adaptor.PackageHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/packages - Catalog of active wash packages
	r.Get("/api/packages", packageHandler.ListPackages)

	// GET /api/packages/{id}?size= - Package priced for a car size
	r.Get("/api/packages/{id}", packageHandler.GetPackage)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// GET /api/user/packages - Purchased packages with barcodes
		r.Get("/api/user/packages", packageHandler.ListUserPackages)
	})
}
