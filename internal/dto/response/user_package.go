package response

import (
	"time"

	"carwash-booking/internal/data/entity"
)

type UserPackageResponse struct {
	ID          string                   `json:"id"`
	PackageID   string                   `json:"package_id"`
	PackageName string                   `json:"package_name,omitempty"`
	CarID       string                   `json:"car_id"`
	Barcode     string                   `json:"barcode"`
	WashesLeft  int                      `json:"washes_left"`
	Expiry      time.Time                `json:"expiry"`
	Status      entity.UserPackageStatus `json:"status"`
}

func UserPackageToResponse(up *entity.UserPackage, packageName string) UserPackageResponse {
	return UserPackageResponse{
		ID:          up.ID.String(),
		PackageID:   up.PackageID.String(),
		PackageName: packageName,
		CarID:       up.CarID.String(),
		Barcode:     up.Barcode,
		WashesLeft:  up.WashesLeft,
		Expiry:      up.Expiry,
		Status:      up.Status,
	}
}
