package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carwash-booking/internal/data/entity"
	"carwash-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BranchWashCount is one row of the washes-per-branch report.
type BranchWashCount struct {
	BranchID   uuid.UUID
	BranchName string
	Day        time.Time
	Count      int64
}

type WashRepository interface {
	Create(ctx context.Context, wash *entity.Wash) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Wash, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Wash, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindByBranchID(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]*entity.Wash, error)
	CountByBranchID(ctx context.Context, branchID uuid.UUID) (int64, error)

	// Report query
	CountByBranchPerDay(ctx context.Context, since time.Time) ([]BranchWashCount, error)
}

type washRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWashRepository(db database.PgxIface, log *zap.Logger) WashRepository {
	return &washRepository{
		db:  db,
		log: log.With(zap.String("repository", "wash")),
	}
}

const washColumns = `id, user_id, operator_id, branch_id, user_package_id, status, created_at`

func (r *washRepository) Create(ctx context.Context, wash *entity.Wash) error {
	query := `
		INSERT INTO washes (` + washColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		wash.ID,
		wash.UserID,
		wash.OperatorID,
		wash.BranchID,
		wash.UserPackageID,
		wash.Status,
		wash.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create wash record",
			zap.Error(err),
			zap.String("user_id", wash.UserID.String()),
			zap.String("user_package_id", wash.UserPackageID.String()),
		)
		return fmt.Errorf("create wash record: %w", err)
	}

	return nil
}

func (r *washRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Wash, error) {
	query := `
		SELECT ` + washColumns + `
		FROM washes
		WHERE id = $1
	`

	var wash entity.Wash
	err := r.db.QueryRow(ctx, query, id).Scan(
		&wash.ID,
		&wash.UserID,
		&wash.OperatorID,
		&wash.BranchID,
		&wash.UserPackageID,
		&wash.Status,
		&wash.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("Failed to find wash by ID",
			zap.Error(err),
			zap.String("wash_id", id.String()),
		)
		return nil, fmt.Errorf("find wash by ID %s: %w", id.String(), err)
	}

	return &wash, nil
}

func (r *washRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Wash, error) {
	query := `
		SELECT ` + washColumns + `
		FROM washes
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.queryMany(ctx, query, userID, limit, offset)
}

func (r *washRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM washes WHERE user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count washes by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count washes by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *washRepository) FindByBranchID(ctx context.Context, branchID uuid.UUID, limit, offset int) ([]*entity.Wash, error) {
	query := `
		SELECT ` + washColumns + `
		FROM washes
		WHERE branch_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.queryMany(ctx, query, branchID, limit, offset)
}

func (r *washRepository) CountByBranchID(ctx context.Context, branchID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM washes WHERE branch_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, branchID).Scan(&count); err != nil {
		r.log.Error("Failed to count washes by branch ID",
			zap.Error(err),
			zap.String("branch_id", branchID.String()),
		)
		return 0, fmt.Errorf("count washes by branch ID %s: %w", branchID.String(), err)
	}

	return count, nil
}

func (r *washRepository) CountByBranchPerDay(ctx context.Context, since time.Time) ([]BranchWashCount, error) {
	query := `
		SELECT w.branch_id, b.name, date_trunc('day', w.created_at) AS day, COUNT(*)
		FROM washes w
		JOIN branches b ON b.id = w.branch_id
		WHERE w.created_at >= $1
		GROUP BY w.branch_id, b.name, day
		ORDER BY day DESC, b.name
	`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		r.log.Error("Failed to aggregate washes per branch", zap.Error(err))
		return nil, fmt.Errorf("aggregate washes per branch: %w", err)
	}
	defer rows.Close()

	var counts []BranchWashCount
	for rows.Next() {
		var c BranchWashCount
		if err := rows.Scan(&c.BranchID, &c.BranchName, &c.Day, &c.Count); err != nil {
			r.log.Error("Failed to scan branch count row", zap.Error(err))
			return nil, fmt.Errorf("scan branch count row: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, nil
}

func (r *washRepository) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Wash, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query washes", zap.Error(err))
		return nil, fmt.Errorf("query washes: %w", err)
	}
	defer rows.Close()

	var washes []*entity.Wash
	for rows.Next() {
		var wash entity.Wash
		err := rows.Scan(
			&wash.ID,
			&wash.UserID,
			&wash.OperatorID,
			&wash.BranchID,
			&wash.UserPackageID,
			&wash.Status,
			&wash.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan wash row", zap.Error(err))
			return nil, fmt.Errorf("scan wash row: %w", err)
		}
		washes = append(washes, &wash)
	}

	return washes, nil
}
