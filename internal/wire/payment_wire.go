package wire

import (
	"carwash-booking/internal/adaptor"
	"carwash-booking/pkg/middleware"
	"carwash-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// POST /api/payments/checkout - Open a hosted checkout session
		r.Post("/api/payments/checkout", paymentHandler.Checkout)

		// GET /api/user/payments - Payment history for the current user
		r.Get("/api/user/payments", paymentHandler.ListPayments)
	})

	// ==================== PUBLIC ROUTES ====================
	// GET /hyperpay/payment-result - Gateway redirect target. Unauthenticated
	// because the customer arrives from the gateway without our JWT.
	r.Get("/hyperpay/payment-result", paymentHandler.PaymentResult)
}
