package usecase

import (
	"context"
	"fmt"
	"time"

	"carwash-booking/internal/data/repository"
	"carwash-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// notificationRetention is how long a notification stays around before the
// next list call sweeps it away.
const notificationRetention = 30 * 24 * time.Hour

type NotificationService interface {
	List(ctx context.Context, userID uuid.UUID, page, perPage int) (*response.PaginatedResponse[response.NotificationResponse], error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}

type notificationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewNotificationService(repo *repository.Repository, log *zap.Logger) NotificationService {
	return &notificationService{
		repo: repo,
		log:  log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, page, perPage int) (*response.PaginatedResponse[response.NotificationResponse], error) {
	// Old notifications are purged lazily on read, so the table never
	// needs a background sweeper.
	if purged, err := s.repo.Notification.DeleteOlderThan(ctx, time.Now().Add(-notificationRetention)); err != nil {
		s.log.Warn("Failed to purge old notifications", zap.Error(err))
	} else if purged > 0 {
		s.log.Info("Purged old notifications", zap.Int64("count", purged))
	}

	offset := (page - 1) * perPage

	notifications, err := s.repo.Notification.FindByUserID(ctx, userID, perPage, offset)
	if err != nil {
		s.log.Error("Failed to list notifications", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	responses := make([]response.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = response.NotificationToResponse(n)
	}

	total, err := s.repo.Notification.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count notifications", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("count notifications: %w", err)
	}

	return response.NewPaginatedResponse(responses, page, perPage, total), nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	updated, err := s.repo.Notification.MarkRead(ctx, notificationID, userID)
	if err != nil {
		s.log.Error("Failed to mark notification read",
			zap.Error(err),
			zap.String("notification_id", notificationID.String()),
			zap.String("user_id", userID.String()))
		return fmt.Errorf("mark notification read: %w", err)
	}
	if !updated {
		return ErrNotificationNotFound
	}
	return nil
}
