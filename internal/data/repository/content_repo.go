package repository

import (
	"context"
	"fmt"

	"carwash-booking/internal/data/entity"
	"carwash-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ContentRepository interface {
	FindBySlug(ctx context.Context, slug string) (*entity.Content, error)
	Upsert(ctx context.Context, content *entity.Content) error
}

type contentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContentRepository(db database.PgxIface, log *zap.Logger) ContentRepository {
	return &contentRepository{
		db:  db,
		log: log.With(zap.String("repository", "content")),
	}
}

func (r *contentRepository) FindBySlug(ctx context.Context, slug string) (*entity.Content, error) {
	query := `
		SELECT id, slug, title, body, created_at, updated_at
		FROM contents
		WHERE slug = $1
	`

	var content entity.Content
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&content.ID,
		&content.Slug,
		&content.Title,
		&content.Body,
		&content.CreatedAt,
		&content.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find content by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find content by slug %s: %w", slug, err)
	}

	return &content, nil
}

func (r *contentRepository) Upsert(ctx context.Context, content *entity.Content) error {
	query := `
		INSERT INTO contents (id, slug, title, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (slug)
		DO UPDATE SET title = EXCLUDED.title, body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		content.ID,
		content.Slug,
		content.Title,
		content.Body,
		content.CreatedAt,
		content.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert content",
			zap.Error(err),
			zap.String("slug", content.Slug),
		)
		return fmt.Errorf("upsert content %s: %w", content.Slug, err)
	}

	return nil
}
