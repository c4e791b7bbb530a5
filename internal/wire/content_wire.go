package wire

import (
	"carwash-booking/internal/adaptor"
	"carwash-booking/pkg/middleware"
	"carwash-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireContent(
	r chi.Router,
	contentHandler *adaptor.ContentHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/content/{slug} - CMS page by slug
	r.Get("/api/content/{slug}", contentHandler.GetPage)

	// GET /api/branches - Active branch locations
	r.Get("/api/branches", contentHandler.ListBranches)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		// PUT /api/admin/content - Create or replace a CMS page
		r.Put("/api/admin/content", contentHandler.UpsertPage)

		// POST /api/admin/branches - Open a new branch
		r.Post("/api/admin/branches", contentHandler.CreateBranch)
	})
}
