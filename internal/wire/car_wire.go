package wire

import (
	"carwash-booking/internal/adaptor"
	"carwash-booking/pkg/middleware"
	"carwash-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCar(
	r chi.Router,
	carHandler *adaptor.CarHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// POST /api/cars - Register a car for the current user
		r.Post("/api/cars", carHandler.AddCar)

		// GET /api/cars - List the current user's cars
		r.Get("/api/cars", carHandler.ListCars)

		// DELETE /api/cars/{id} - Remove one of the current user's cars
		r.Delete("/api/cars/{id}", carHandler.DeleteCar)
	})
}
