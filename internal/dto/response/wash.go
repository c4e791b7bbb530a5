package response

import (
	"time"

	"carwash-booking/internal/data/entity"
)

type WashResponse struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	OperatorID string            `json:"operator_id"`
	BranchID   string            `json:"branch_id"`
	Status     entity.WashStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

// ScanResultResponse is returned to the operator after a successful
// barcode redemption.
type ScanResultResponse struct {
	User       ProfileResponse `json:"user"`
	CarSize    entity.CarSize  `json:"car_size"`
	Package    PackageResponse `json:"package"`
	WashesLeft int             `json:"washes_left"`
	Expiry     time.Time       `json:"expiry"`
	Status     string          `json:"status"`
	Wash       WashResponse    `json:"wash"`
}

func WashToResponse(wash *entity.Wash) WashResponse {
	return WashResponse{
		ID:         wash.ID.String(),
		UserID:     wash.UserID.String(),
		OperatorID: wash.OperatorID.String(),
		BranchID:   wash.BranchID.String(),
		Status:     wash.Status,
		CreatedAt:  wash.CreatedAt,
	}
}
