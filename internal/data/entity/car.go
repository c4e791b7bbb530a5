package entity

import (
	"github.com/google/uuid"
)

type CarSize string

const (
	CarSizeSmall  CarSize = "small"
	CarSizeMedium CarSize = "medium"
	CarSizeLarge  CarSize = "large"
)

// ValidCarSize reports whether s is one of the supported size tiers.
func ValidCarSize(s string) bool {
	switch CarSize(s) {
	case CarSizeSmall, CarSizeMedium, CarSizeLarge:
		return true
	}
	return false
}

type Car struct {
	Base
	UserID      uuid.UUID `db:"user_id"`
	PlateNumber string    `db:"plate_number"`
	Model       string    `db:"model"`
	Size        CarSize   `db:"size"`
}
