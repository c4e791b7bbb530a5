package repository

import (
	"context"
	"fmt"

	"carwash-booking/internal/data/entity"
	"carwash-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserPackageRepository interface {
	Create(ctx context.Context, up *entity.UserPackage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserPackage, error)
	FindByBarcode(ctx context.Context, barcode string) (*entity.UserPackage, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.UserPackage, error)

	// RedeemByBarcode consumes one wash in a single conditional update.
	// Returns nil when no row matched the guard (unknown, inactive,
	// expired or exhausted barcode); the caller classifies the cause.
	RedeemByBarcode(ctx context.Context, barcode string) (*entity.UserPackage, error)

	MarkExpired(ctx context.Context) (int64, error)
}

type userPackageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserPackageRepository(db database.PgxIface, log *zap.Logger) UserPackageRepository {
	return &userPackageRepository{
		db:  db,
		log: log.With(zap.String("repository", "user_package")),
	}
}

const userPackageColumns = `id, user_id, package_id, car_id, barcode, washes_left, expiry, status, created_at, updated_at`

func (r *userPackageRepository) Create(ctx context.Context, up *entity.UserPackage) error {
	query := `
		INSERT INTO user_packages (` + userPackageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		up.ID,
		up.UserID,
		up.PackageID,
		up.CarID,
		up.Barcode,
		up.WashesLeft,
		up.Expiry,
		up.Status,
		up.CreatedAt,
		up.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create user package",
			zap.Error(err),
			zap.String("user_id", up.UserID.String()),
			zap.String("barcode", up.Barcode),
		)
		return fmt.Errorf("create user package for %s: %w", up.UserID.String(), err)
	}

	return nil
}

func (r *userPackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserPackage, error) {
	query := `SELECT ` + userPackageColumns + ` FROM user_packages WHERE id = $1`
	return r.scanRow(r.db.QueryRow(ctx, query, id))
}

func (r *userPackageRepository) FindByBarcode(ctx context.Context, barcode string) (*entity.UserPackage, error) {
	query := `SELECT ` + userPackageColumns + ` FROM user_packages WHERE barcode = $1`
	return r.scanRow(r.db.QueryRow(ctx, query, barcode))
}

func (r *userPackageRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.UserPackage, error) {
	query := `
		SELECT ` + userPackageColumns + `
		FROM user_packages
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find user packages",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find user packages for %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var packages []*entity.UserPackage
	for rows.Next() {
		var up entity.UserPackage
		err := rows.Scan(
			&up.ID,
			&up.UserID,
			&up.PackageID,
			&up.CarID,
			&up.Barcode,
			&up.WashesLeft,
			&up.Expiry,
			&up.Status,
			&up.CreatedAt,
			&up.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan user package row", zap.Error(err))
			return nil, fmt.Errorf("scan user package row: %w", err)
		}
		packages = append(packages, &up)
	}

	return packages, nil
}

// RedeemByBarcode performs the guard and the decrement in one statement so
// two concurrent scans of the same barcode can never both pass validation.
func (r *userPackageRepository) RedeemByBarcode(ctx context.Context, barcode string) (*entity.UserPackage, error) {
	query := `
		UPDATE user_packages
		SET washes_left = washes_left - 1,
		    status = CASE WHEN washes_left - 1 = 0 THEN 'used' ELSE status END,
		    updated_at = NOW()
		WHERE barcode = $1
		  AND status = 'active'
		  AND expiry > NOW()
		  AND washes_left > 0
		RETURNING ` + userPackageColumns + `
	`

	up, err := r.scanRow(r.db.QueryRow(ctx, query, barcode))
	if err != nil {
		r.log.Error("Failed to redeem barcode",
			zap.Error(err),
			zap.String("barcode", barcode),
		)
		return nil, fmt.Errorf("redeem barcode %s: %w", barcode, err)
	}

	return up, nil
}

// MarkExpired flips overdue active packages to expired. Returns the number
// of rows touched.
func (r *userPackageRepository) MarkExpired(ctx context.Context) (int64, error) {
	query := `
		UPDATE user_packages
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'active' AND expiry <= NOW()
	`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to mark expired packages", zap.Error(err))
		return 0, fmt.Errorf("mark expired packages: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *userPackageRepository) scanRow(row pgx.Row) (*entity.UserPackage, error) {
	var up entity.UserPackage
	err := row.Scan(
		&up.ID,
		&up.UserID,
		&up.PackageID,
		&up.CarID,
		&up.Barcode,
		&up.WashesLeft,
		&up.Expiry,
		&up.Status,
		&up.CreatedAt,
		&up.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &up, nil
}
