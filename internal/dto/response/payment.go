package response

import (
	"time"

	"carwash-booking/internal/data/entity"
)

// CheckoutResponse carries the opaque checkout id the hosted payment form
// is rendered from.
type CheckoutResponse struct {
	PaymentID  string  `json:"payment_id"`
	CheckoutID string  `json:"checkout_id"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
}

type PaymentResponse struct {
	ID            string               `json:"id"`
	PackageID     string               `json:"package_id"`
	Amount        float64              `json:"amount"`
	Currency      string               `json:"currency"`
	Method        string               `json:"method"`
	Status        entity.PaymentStatus `json:"status"`
	TransactionID *string              `json:"transaction_id,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID.String(),
		PackageID:     payment.PackageID.String(),
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		Method:        payment.Method,
		Status:        payment.Status,
		TransactionID: payment.TransactionID,
		CreatedAt:     payment.CreatedAt,
	}
}
