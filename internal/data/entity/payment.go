package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Payment struct {
	Base
	UserID        uuid.UUID     `db:"user_id"`
	PackageID     uuid.UUID     `db:"package_id"`
	CarID         uuid.UUID     `db:"car_id"`
	Amount        float64       `db:"amount"`
	Currency      string        `db:"currency"`
	Method        string        `db:"method"`
	Status        PaymentStatus `db:"status"`
	CheckoutID    string        `db:"checkout_id"`
	TransactionID *string       `db:"transaction_id"`
}
