package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"carwash-booking/internal/data/entity"
	"carwash-booking/internal/data/repository"
	"carwash-booking/internal/dto/request"
	"carwash-booking/internal/dto/response"
	"carwash-booking/internal/gateway"
	"carwash-booking/internal/pricing"
	"carwash-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentGateway is the slice of the HyperPay client the purchase flow
// needs. Tests swap in a stub.
type PaymentGateway interface {
	PrepareCheckout(ctx context.Context, req *gateway.CheckoutRequest) (*gateway.CheckoutResponse, error)
	PaymentStatusWithFallback(ctx context.Context, resourcePath string) (*gateway.StatusResponse, error)
}

type PurchaseService interface {
	// Checkout prices the package for the customer's car and opens a hosted
	// checkout session. The payment starts out pending.
	Checkout(ctx context.Context, userID uuid.UUID, req *request.CheckoutRequest) (*response.CheckoutResponse, error)

	// Finalize polls the gateway for the session outcome and settles the
	// pending payment. Safe to call more than once for the same checkout.
	Finalize(ctx context.Context, checkoutID, resourcePath string) (*response.PaymentResponse, error)

	ListPayments(ctx context.Context, userID uuid.UUID, page, perPage int) (*response.PaginatedResponse[response.PaymentResponse], error)
	ListUserPackages(ctx context.Context, userID uuid.UUID) ([]response.UserPackageResponse, error)
}

type purchaseService struct {
	repo    *repository.Repository
	gateway PaymentGateway
	table   *pricing.Table
	config  *utils.Config
	log     *zap.Logger
}

func NewPurchaseService(repo *repository.Repository, gw PaymentGateway, table *pricing.Table, config *utils.Config, log *zap.Logger) PurchaseService {
	return &purchaseService{
		repo:    repo,
		gateway: gw,
		table:   table,
		config:  config,
		log:     log.With(zap.String("service", "purchase")),
	}
}

func (s *purchaseService) Checkout(ctx context.Context, userID uuid.UUID, req *request.CheckoutRequest) (*response.CheckoutResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Checkout validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		return nil, fmt.Errorf("%w: package_id is not a valid uuid", ErrValidation)
	}
	carID, err := uuid.Parse(req.CarID)
	if err != nil {
		return nil, fmt.Errorf("%w: car_id is not a valid uuid", ErrValidation)
	}

	car, err := s.repo.Car.FindByID(ctx, carID)
	if err != nil {
		s.log.Error("Failed to find car", zap.Error(err), zap.String("car_id", carID.String()))
		return nil, fmt.Errorf("find car: %w", err)
	}
	if car == nil {
		return nil, ErrCarNotFound
	}
	if car.UserID != userID {
		return nil, ErrNotOwner
	}

	pkg, entry, err := s.pricePackage(ctx, packageID, car.Size)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	givenName, surname := splitName(user.Name)
	checkout, err := s.gateway.PrepareCheckout(ctx, &gateway.CheckoutRequest{
		Amount:                entry.Price,
		PaymentType:           "DB",
		MerchantTransactionID: utils.GenerateMerchantTransactionID(),
		CustomerEmail:         user.Email,
		GivenName:             givenName,
		Surname:               surname,
	})
	if err != nil {
		s.log.Error("Checkout preparation failed",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("package_id", packageID.String()))
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:     userID,
		PackageID:  pkg.ID,
		CarID:      carID,
		Amount:     entry.Price,
		Currency:   s.config.Gateway.Currency,
		Method:     req.Method,
		Status:     entity.PaymentStatusPending,
		CheckoutID: checkout.ID,
	}
	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to record pending payment",
			zap.Error(err),
			zap.String("checkout_id", checkout.ID))
		return nil, fmt.Errorf("record payment: %w", err)
	}

	s.log.Info("Checkout prepared",
		zap.String("payment_id", payment.ID.String()),
		zap.String("checkout_id", checkout.ID),
		zap.Float64("amount", entry.Price))

	return &response.CheckoutResponse{
		PaymentID:  payment.ID.String(),
		CheckoutID: checkout.ID,
		Amount:     entry.Price,
		Currency:   payment.Currency,
	}, nil
}

func (s *purchaseService) Finalize(ctx context.Context, checkoutID, resourcePath string) (*response.PaymentResponse, error) {
	payment, err := s.repo.Payment.FindByCheckoutID(ctx, checkoutID)
	if err != nil {
		s.log.Error("Failed to find payment", zap.Error(err), zap.String("checkout_id", checkoutID))
		return nil, fmt.Errorf("find payment: %w", err)
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	// The gateway redirect can be replayed. A settled payment is returned
	// as-is so a second visit never grants a second package.
	if payment.Status == entity.PaymentStatusCompleted {
		resp := response.PaymentToResponse(payment)
		return &resp, nil
	}

	status, err := s.gateway.PaymentStatusWithFallback(ctx, resourcePath)
	if err != nil {
		s.log.Error("Payment status poll failed",
			zap.Error(err),
			zap.String("checkout_id", checkoutID))
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	if !gateway.IsSuccessCode(status.Result.Code) {
		s.log.Warn("Payment rejected by gateway",
			zap.String("checkout_id", checkoutID),
			zap.String("code", status.Result.Code),
			zap.String("description", status.Result.Description))

		settled, err := s.repo.Payment.Settle(ctx, payment.ID, entity.PaymentStatusFailed, nil)
		if err != nil {
			return nil, fmt.Errorf("mark payment failed: %w", err)
		}
		if !settled {
			return s.settledPayment(ctx, payment.ID)
		}
		payment.Status = entity.PaymentStatusFailed
		resp := response.PaymentToResponse(payment)
		return &resp, nil
	}

	// The pending-to-completed transition is the guard. Only the caller
	// that wins it grants the package, so replayed redirects arriving
	// together still issue exactly one.
	transactionID := status.ID
	settled, err := s.repo.Payment.Settle(ctx, payment.ID, entity.PaymentStatusCompleted, &transactionID)
	if err != nil {
		return nil, fmt.Errorf("mark payment completed: %w", err)
	}
	if !settled {
		return s.settledPayment(ctx, payment.ID)
	}
	payment.Status = entity.PaymentStatusCompleted
	payment.TransactionID = &transactionID

	if err := s.grantPackage(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.repo.User.SetPaid(ctx, payment.UserID, true); err != nil {
		// Flag only; the purchased package is already in place.
		s.log.Warn("Failed to flag user as paid",
			zap.Error(err),
			zap.String("user_id", payment.UserID.String()))
	}

	s.notifyPayment(ctx, payment)

	s.log.Info("Payment completed",
		zap.String("payment_id", payment.ID.String()),
		zap.String("transaction_id", transactionID),
		zap.Float64("amount", payment.Amount))

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

// settledPayment re-reads a payment another caller settled first.
func (s *purchaseService) settledPayment(ctx context.Context, id uuid.UUID) (*response.PaymentResponse, error) {
	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find settled payment: %w", err)
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *purchaseService) ListPayments(ctx context.Context, userID uuid.UUID, page, perPage int) (*response.PaginatedResponse[response.PaymentResponse], error) {
	offset := (page - 1) * perPage

	payments, err := s.repo.Payment.FindByUserID(ctx, userID, perPage, offset)
	if err != nil {
		s.log.Error("Failed to list payments", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list payments: %w", err)
	}

	responses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		responses[i] = response.PaymentToResponse(payment)
	}

	total, err := s.repo.Payment.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count payments", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("count payments: %w", err)
	}

	return response.NewPaginatedResponse(responses, page, perPage, total), nil
}

func (s *purchaseService) ListUserPackages(ctx context.Context, userID uuid.UUID) ([]response.UserPackageResponse, error) {
	ups, err := s.repo.UserPackage.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list user packages", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list user packages: %w", err)
	}

	names := map[uuid.UUID]string{}
	responses := make([]response.UserPackageResponse, len(ups))
	for i, up := range ups {
		name, ok := names[up.PackageID]
		if !ok {
			name = s.packageName(ctx, up.PackageID)
			names[up.PackageID] = name
		}
		responses[i] = response.UserPackageToResponse(up, name)
	}

	return responses, nil
}

// ==================== HELPER METHODS ====================

// pricePackage resolves the package and its (car size, tier) price entry.
func (s *purchaseService) pricePackage(ctx context.Context, packageID uuid.UUID, size entity.CarSize) (*entity.Package, pricing.Entry, error) {
	pkg, err := s.repo.Package.FindByID(ctx, packageID)
	if err != nil {
		s.log.Warn("Package lookup failed, checking embedded catalog",
			zap.Error(err),
			zap.String("package_id", packageID.String()))
	}
	if pkg == nil {
		for _, fallback := range pricing.FallbackPackages() {
			if fallback.ID == packageID {
				pkg = fallback
				break
			}
		}
	}
	if pkg == nil {
		return nil, pricing.Entry{}, ErrPackageNotFound
	}
	if !pkg.IsActive {
		return nil, pricing.Entry{}, ErrPackageNotFound
	}

	tier := pkg.Tier
	if tier == "" {
		t, ok := s.table.TierByName(pkg.Name)
		if !ok {
			t, ok = s.table.TierByName(pkg.NameAr)
		}
		if !ok {
			return nil, pricing.Entry{}, ErrPackageNotFound
		}
		tier = t
	}

	entry, err := s.table.Lookup(size, tier)
	if err != nil {
		return nil, pricing.Entry{}, fmt.Errorf("price lookup: %w", err)
	}

	return pkg, entry, nil
}

// grantPackage issues the purchased package with a fresh barcode.
func (s *purchaseService) grantPackage(ctx context.Context, payment *entity.Payment) error {
	car, err := s.repo.Car.FindByID(ctx, payment.CarID)
	if err != nil {
		return fmt.Errorf("find car: %w", err)
	}
	if car == nil {
		return ErrCarNotFound
	}

	_, entry, err := s.pricePackage(ctx, payment.PackageID, car.Size)
	if err != nil {
		return err
	}

	now := time.Now()
	up := &entity.UserPackage{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:     payment.UserID,
		PackageID:  payment.PackageID,
		CarID:      payment.CarID,
		Barcode:    utils.GenerateBarcode(),
		WashesLeft: entry.Washes,
		Expiry:     now.AddDate(0, 0, s.config.Package.ExpiryDays),
		Status:     entity.UserPackageStatusActive,
	}
	if err := s.repo.UserPackage.Create(ctx, up); err != nil {
		s.log.Error("Failed to issue user package",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()))
		return fmt.Errorf("issue user package: %w", err)
	}

	s.log.Info("Package issued",
		zap.String("user_package_id", up.ID.String()),
		zap.String("user_id", payment.UserID.String()),
		zap.Int("washes", up.WashesLeft),
		zap.Time("expiry", up.Expiry))

	return nil
}

func (s *purchaseService) packageName(ctx context.Context, packageID uuid.UUID) string {
	pkg, err := s.repo.Package.FindByID(ctx, packageID)
	if err == nil && pkg != nil {
		return pkg.Name
	}
	for _, fallback := range pricing.FallbackPackages() {
		if fallback.ID == packageID {
			return fallback.Name
		}
	}
	return ""
}

func (s *purchaseService) notifyPayment(ctx context.Context, payment *entity.Payment) {
	paymentID := payment.ID
	n := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    payment.UserID,
		Type:      entity.NotificationTypePayment,
		Message:   fmt.Sprintf("Payment of %.2f %s received. Your package is ready.", payment.Amount, payment.Currency),
		PaymentID: &paymentID,
	}
	if err := s.repo.Notification.Create(ctx, n); err != nil {
		s.log.Warn("Failed to create payment notification",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()))
	}
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
