package usecase

import (
	"context"
	"fmt"
	"time"

	"carwash-booking/internal/data/repository"
	"carwash-booking/internal/dto/response"

	"go.uber.org/zap"
)

type ReportService interface {
	// Dashboard aggregates washes per branch per day and payment totals
	// over the trailing window.
	Dashboard(ctx context.Context, days int) (*response.DashboardResponse, error)

	// ExpireOverdue sweeps packages whose expiry date has passed.
	ExpireOverdue(ctx context.Context) (int64, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
	}
}

func (s *reportService) Dashboard(ctx context.Context, days int) (*response.DashboardResponse, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	counts, err := s.repo.Wash.CountByBranchPerDay(ctx, since)
	if err != nil {
		s.log.Error("Failed to aggregate branch washes", zap.Error(err))
		return nil, fmt.Errorf("aggregate branch washes: %w", err)
	}

	totals, err := s.repo.Payment.Totals(ctx, since)
	if err != nil {
		s.log.Error("Failed to aggregate payments", zap.Error(err))
		return nil, fmt.Errorf("aggregate payments: %w", err)
	}

	perBranch := make([]response.BranchDayCount, len(counts))
	for i, c := range counts {
		perBranch[i] = response.BranchDayCount{
			BranchID:   c.BranchID.String(),
			BranchName: c.BranchName,
			Day:        c.Day.Format("2006-01-02"),
			Washes:     c.Count,
		}
	}

	return &response.DashboardResponse{
		WashesPerBranch: perBranch,
		Payments: response.PaymentTotalsResponse{
			Completed:      totals.Completed,
			Failed:         totals.Failed,
			Pending:        totals.Pending,
			CompletedTotal: totals.CompletedTotal,
		},
	}, nil
}

func (s *reportService) ExpireOverdue(ctx context.Context) (int64, error) {
	expired, err := s.repo.UserPackage.MarkExpired(ctx)
	if err != nil {
		s.log.Error("Failed to expire overdue packages", zap.Error(err))
		return 0, fmt.Errorf("expire overdue packages: %w", err)
	}

	if expired > 0 {
		s.log.Info("Expired overdue packages", zap.Int64("count", expired))
	}

	return expired, nil
}
