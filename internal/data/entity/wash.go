package entity

import (
	"github.com/google/uuid"
)

type WashStatus string

const (
	WashStatusCompleted WashStatus = "completed"
	WashStatusCancelled WashStatus = "cancelled"
)

// Wash is the immutable audit record written once per redemption.
type Wash struct {
	BaseSimple
	UserID        uuid.UUID  `db:"user_id"`
	OperatorID    uuid.UUID  `db:"operator_id"`
	BranchID      uuid.UUID  `db:"branch_id"`
	UserPackageID uuid.UUID  `db:"user_package_id"`
	Status        WashStatus `db:"status"`
}
