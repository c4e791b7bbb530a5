package usecase

import (
	"context"
	"fmt"

	"carwash-booking/internal/data/entity"
	"carwash-booking/internal/data/repository"
	"carwash-booking/internal/dto/response"
	"carwash-booking/internal/pricing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	ListPackages(ctx context.Context) ([]response.PackageResponse, error)

	// GetPackageWithPrice merges the (car size, tier) price table entry onto
	// the package identified by id.
	GetPackageWithPrice(ctx context.Context, id uuid.UUID, size string) (*response.PricedPackageResponse, error)
}

type catalogService struct {
	repo  *repository.Repository
	table *pricing.Table
	log   *zap.Logger
}

func NewCatalogService(repo *repository.Repository, table *pricing.Table, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:  repo,
		table: table,
		log:   log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListPackages(ctx context.Context) ([]response.PackageResponse, error) {
	packages, err := s.repo.Package.FindAllActive(ctx)
	if err != nil {
		// Catalog reads must survive store trouble: serve the embedded list.
		s.log.Warn("Falling back to embedded package catalog", zap.Error(err))
		packages = pricing.FallbackPackages()
	}

	responses := make([]response.PackageResponse, len(packages))
	for i, pkg := range packages {
		responses[i] = response.PackageToResponse(pkg)
	}

	return responses, nil
}

func (s *catalogService) GetPackageWithPrice(ctx context.Context, id uuid.UUID, size string) (*response.PricedPackageResponse, error) {
	if !entity.ValidCarSize(size) {
		return nil, ErrInvalidCarSize
	}
	carSize := entity.CarSize(size)

	pkg, err := s.repo.Package.FindByID(ctx, id)
	if err != nil {
		s.log.Warn("Package lookup failed, checking embedded catalog",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
	}
	// An unseeded store still serves the embedded catalog ids.
	if pkg == nil {
		pkg = s.fallbackByID(id)
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}

	tier := pkg.Tier
	if tier == "" {
		// Older catalog rows carry only the display name.
		t, ok := s.table.TierByName(pkg.Name)
		if !ok {
			t, ok = s.table.TierByName(pkg.NameAr)
		}
		if !ok {
			return nil, ErrPackageNotFound
		}
		tier = t
	}

	entry, err := s.table.Lookup(carSize, tier)
	if err != nil {
		return nil, fmt.Errorf("price lookup: %w", err)
	}

	merged := response.MergePricing(pkg, carSize, entry)
	return &merged, nil
}

func (s *catalogService) fallbackByID(id uuid.UUID) *entity.Package {
	for _, pkg := range pricing.FallbackPackages() {
		if pkg.ID == id {
			return pkg
		}
	}
	return nil
}
