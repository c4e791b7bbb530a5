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

type FeedbackRepository interface {
	Create(ctx context.Context, fb *entity.Feedback) error
	FindByWashID(ctx context.Context, washID uuid.UUID) (*entity.Feedback, error)
}

type feedbackRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFeedbackRepository(db database.PgxIface, log *zap.Logger) FeedbackRepository {
	return &feedbackRepository{
		db:  db,
		log: log.With(zap.String("repository", "feedback")),
	}
}

func (r *feedbackRepository) Create(ctx context.Context, fb *entity.Feedback) error {
	query := `
		INSERT INTO feedback (id, user_id, wash_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		fb.ID,
		fb.UserID,
		fb.WashID,
		fb.Rating,
		fb.Comment,
		fb.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create feedback",
			zap.Error(err),
			zap.String("wash_id", fb.WashID.String()),
		)
		return fmt.Errorf("create feedback for wash %s: %w", fb.WashID.String(), err)
	}

	return nil
}

func (r *feedbackRepository) FindByWashID(ctx context.Context, washID uuid.UUID) (*entity.Feedback, error) {
	query := `
		SELECT id, user_id, wash_id, rating, comment, created_at
		FROM feedback
		WHERE wash_id = $1
	`

	var fb entity.Feedback
	err := r.db.QueryRow(ctx, query, washID).Scan(
		&fb.ID,
		&fb.UserID,
		&fb.WashID,
		&fb.Rating,
		&fb.Comment,
		&fb.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find feedback by wash ID",
			zap.Error(err),
			zap.String("wash_id", washID.String()),
		)
		return nil, fmt.Errorf("find feedback by wash ID %s: %w", washID.String(), err)
	}

	return &fb, nil
}
