package response

import (
	"carwash-booking/internal/data/entity"
)

type CarResponse struct {
	ID          string         `json:"id"`
	PlateNumber string         `json:"plate_number"`
	Model       string         `json:"model"`
	Size        entity.CarSize `json:"size"`
}

func CarToResponse(car *entity.Car) CarResponse {
	return CarResponse{
		ID:          car.ID.String(),
		PlateNumber: car.PlateNumber,
		Model:       car.Model,
		Size:        car.Size,
	}
}
