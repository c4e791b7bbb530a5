package usecase

import (
	"context"
	"fmt"
	"time"

	"carwash-booking/internal/data/entity"
	"carwash-booking/internal/data/repository"
	"carwash-booking/internal/dto/request"
	"carwash-booking/internal/dto/response"
	"carwash-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContentService interface {
	GetPage(ctx context.Context, slug string) (*response.ContentResponse, error)
	UpsertPage(ctx context.Context, req *request.UpsertContentRequest) (*response.ContentResponse, error)

	ListBranches(ctx context.Context) ([]response.BranchResponse, error)
	CreateBranch(ctx context.Context, req *request.CreateBranchRequest) (*response.BranchResponse, error)
}

type contentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewContentService(repo *repository.Repository, log *zap.Logger) ContentService {
	return &contentService{
		repo: repo,
		log:  log.With(zap.String("service", "content")),
	}
}

func (s *contentService) GetPage(ctx context.Context, slug string) (*response.ContentResponse, error) {
	content, err := s.repo.Content.FindBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to find content", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("find content: %w", err)
	}
	if content == nil {
		return nil, ErrContentNotFound
	}

	resp := response.ContentToResponse(content)
	return &resp, nil
}

func (s *contentService) UpsertPage(ctx context.Context, req *request.UpsertContentRequest) (*response.ContentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Content validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	content := &entity.Content{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Slug:  req.Slug,
		Title: req.Title,
		Body:  req.Body,
	}

	if err := s.repo.Content.Upsert(ctx, content); err != nil {
		s.log.Error("Failed to upsert content", zap.Error(err), zap.String("slug", req.Slug))
		return nil, fmt.Errorf("upsert content: %w", err)
	}

	s.log.Info("Content page saved", zap.String("slug", req.Slug))

	resp := response.ContentToResponse(content)
	return &resp, nil
}

func (s *contentService) ListBranches(ctx context.Context) ([]response.BranchResponse, error) {
	branches, err := s.repo.Branch.FindAllActive(ctx)
	if err != nil {
		s.log.Error("Failed to list branches", zap.Error(err))
		return nil, fmt.Errorf("list branches: %w", err)
	}

	responses := make([]response.BranchResponse, len(branches))
	for i, branch := range branches {
		responses[i] = response.BranchToResponse(branch)
	}

	return responses, nil
}

func (s *contentService) CreateBranch(ctx context.Context, req *request.CreateBranchRequest) (*response.BranchResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Branch validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	branch := &entity.Branch{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		City:     req.City,
		IsActive: true,
	}

	if err := s.repo.Branch.Create(ctx, branch); err != nil {
		s.log.Error("Failed to create branch", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create branch: %w", err)
	}

	s.log.Info("Branch created",
		zap.String("branch_id", branch.ID.String()),
		zap.String("name", branch.Name))

	resp := response.BranchToResponse(branch)
	return &resp, nil
}
