package repository

import (
	"context"
	"fmt"
	"time"

	"carwash-booking/internal/data/entity"
	"carwash-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PaymentTotals is the financial report aggregate.
type PaymentTotals struct {
	Completed      int64
	Failed         int64
	Pending        int64
	CompletedTotal float64
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByCheckoutID(ctx context.Context, checkoutID string) (*entity.Payment, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Payment, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// Settle moves a pending payment to its final status. Reports false when
	// the payment was not pending, so concurrent settlers cannot both win.
	Settle(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, transactionID *string) (bool, error)

	// Report query
	Totals(ctx context.Context, since time.Time) (*PaymentTotals, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, user_id, package_id, car_id, amount, currency, method, status, checkout_id, transaction_id, created_at, updated_at`

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.UserID,
		payment.PackageID,
		payment.CarID,
		payment.Amount,
		payment.Currency,
		payment.Method,
		payment.Status,
		payment.CheckoutID,
		payment.TransactionID,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("user_id", payment.UserID.String()),
			zap.String("checkout_id", payment.CheckoutID),
		)
		return fmt.Errorf("create payment %s: %w", payment.CheckoutID, err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return r.scanRow(r.db.QueryRow(ctx, query, id))
}

func (r *paymentRepository) FindByCheckoutID(ctx context.Context, checkoutID string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE checkout_id = $1`
	return r.scanRow(r.db.QueryRow(ctx, query, checkoutID))
}

func (r *paymentRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find payments by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find payments by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.UserID,
			&payment.PackageID,
			&payment.CarID,
			&payment.Amount,
			&payment.Currency,
			&payment.Method,
			&payment.Status,
			&payment.CheckoutID,
			&payment.TransactionID,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	return payments, nil
}

func (r *paymentRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM payments WHERE user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count payments by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count payments by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *paymentRepository) Settle(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, transactionID *string) (bool, error) {
	query := `
		UPDATE payments
		SET status = $2, transaction_id = COALESCE($3, transaction_id), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.db.Exec(ctx, query, id, status, transactionID)
	if err != nil {
		r.log.Error("Failed to settle payment",
			zap.Error(err),
			zap.String("payment_id", id.String()),
			zap.String("status", string(status)),
		)
		return false, fmt.Errorf("settle payment %s as %s: %w", id.String(), string(status), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *paymentRepository) Totals(ctx context.Context, since time.Time) (*PaymentTotals, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'failed'),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COALESCE(SUM(amount) FILTER (WHERE status = 'completed'), 0)
		FROM payments
		WHERE created_at >= $1
	`

	var totals PaymentTotals
	err := r.db.QueryRow(ctx, query, since).Scan(
		&totals.Completed,
		&totals.Failed,
		&totals.Pending,
		&totals.CompletedTotal,
	)
	if err != nil {
		r.log.Error("Failed to aggregate payment totals", zap.Error(err))
		return nil, fmt.Errorf("aggregate payment totals: %w", err)
	}

	return &totals, nil
}

func (r *paymentRepository) scanRow(row pgx.Row) (*entity.Payment, error) {
	var payment entity.Payment
	err := row.Scan(
		&payment.ID,
		&payment.UserID,
		&payment.PackageID,
		&payment.CarID,
		&payment.Amount,
		&payment.Currency,
		&payment.Method,
		&payment.Status,
		&payment.CheckoutID,
		&payment.TransactionID,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to scan payment", zap.Error(err))
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return &payment, nil
}
