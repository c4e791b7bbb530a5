package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserPackageStatus string

const (
	UserPackageStatusActive  UserPackageStatus = "active"
	UserPackageStatusUsed    UserPackageStatus = "used"
	UserPackageStatusExpired UserPackageStatus = "expired"
)

// UserPackage is one purchased package instance. Status only moves forward:
// active -> used (counter hits 0) or active -> expired (past expiry).
type UserPackage struct {
	Base
	UserID     uuid.UUID         `db:"user_id"`
	PackageID  uuid.UUID         `db:"package_id"`
	CarID      uuid.UUID         `db:"car_id"`
	Barcode    string            `db:"barcode"`
	WashesLeft int               `db:"washes_left"`
	Expiry     time.Time         `db:"expiry"`
	Status     UserPackageStatus `db:"status"`
}
