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

type CarHandler struct {
	service usecase.CarService
	log     *zap.Logger
}

func NewCarHandler(service usecase.CarService, log *zap.Logger) *CarHandler {
	return &CarHandler{
		service: service,
		log:     log.With(zap.String("handler", "car")),
	}
}

// AddCar handles POST /api/cars (protected)
func (h *CarHandler) AddCar(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	car, err := h.service.AddCar(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "add car")
		return
	}

	utils.ResponseCreated(w, "success", car)
}

// ListCars handles GET /api/cars (protected)
func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	cars, err := h.service.ListCars(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "list cars")
		return
	}

	utils.ResponseSuccess(w, "success", cars)
}

// DeleteCar handles DELETE /api/cars/{id} (protected)
func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	carID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid car ID", nil)
		return
	}

	if err := h.service.DeleteCar(r.Context(), userID, carID); err != nil {
		handleServiceError(h.log, w, err, "delete car")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
