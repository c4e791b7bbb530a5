package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"carwash-booking/internal/data/entity"
	"carwash-booking/internal/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// failingPackageRepo simulates a catalog store outage.
type failingPackageRepo struct{}

func (failingPackageRepo) Create(context.Context, *entity.Package) error {
	return errors.New("store down")
}

func (failingPackageRepo) FindByID(context.Context, uuid.UUID) (*entity.Package, error) {
	return nil, errors.New("store down")
}

func (failingPackageRepo) FindAllActive(context.Context) ([]*entity.Package, error) {
	return nil, errors.New("store down")
}

func TestGetPackageWithPriceMergesTableEntry(t *testing.T) {
	repo := newFakeRepository()
	now := time.Now()
	pkg := &entity.Package{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:     "Advanced",
		Tier:     entity.TierAdvanced,
		IsActive: true,
	}
	require.NoError(t, repo.Package.Create(context.Background(), pkg))

	service := NewCatalogService(repo, pricing.DefaultTable(), zap.NewNop())

	priced, err := service.GetPackageWithPrice(context.Background(), pkg.ID, "large")
	require.NoError(t, err)

	assert.Equal(t, 360.0, priced.BasePrice)
	assert.Equal(t, 440.0, priced.OriginalPrice)
	assert.Equal(t, 80.0, priced.Savings)
	assert.Equal(t, 10, priced.Washes)
	assert.Equal(t, 8, priced.PaidWashes)
	assert.Equal(t, 2, priced.FreeWashes)
	assert.Equal(t, entity.CarSizeLarge, priced.Size)
}

func TestGetPackageWithPriceResolvesTierFromArabicName(t *testing.T) {
	repo := newFakeRepository()
	now := time.Now()
	pkg := &entity.Package{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:     "الباقة المتقدمة",
		IsActive: true,
	}
	require.NoError(t, repo.Package.Create(context.Background(), pkg))

	service := NewCatalogService(repo, pricing.DefaultTable(), zap.NewNop())

	priced, err := service.GetPackageWithPrice(context.Background(), pkg.ID, "small")
	require.NoError(t, err)
	assert.Equal(t, entity.CarSizeSmall, priced.Size)
	assert.Positive(t, priced.BasePrice)
}

func TestGetPackageWithPriceInvalidSize(t *testing.T) {
	repo := newFakeRepository()
	service := NewCatalogService(repo, pricing.DefaultTable(), zap.NewNop())

	_, err := service.GetPackageWithPrice(context.Background(), uuid.New(), "gigantic")
	assert.ErrorIs(t, err, ErrInvalidCarSize)
}

func TestGetPackageWithPriceUnknownID(t *testing.T) {
	repo := newFakeRepository()
	service := NewCatalogService(repo, pricing.DefaultTable(), zap.NewNop())

	_, err := service.GetPackageWithPrice(context.Background(), uuid.New(), "medium")
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

// A catalog store outage falls back to the embedded package list.
func TestListPackagesFallsBackOnStoreError(t *testing.T) {
	repo := newFakeRepository()
	repo.Package = failingPackageRepo{}
	service := NewCatalogService(repo, pricing.DefaultTable(), zap.NewNop())

	packages, err := service.ListPackages(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 3)
}

// A healthy but unseeded store still serves the embedded catalog ids.
func TestGetPackageWithPriceFallsBackOnEmptyStore(t *testing.T) {
	repo := newFakeRepository()
	service := NewCatalogService(repo, pricing.DefaultTable(), zap.NewNop())

	priced, err := service.GetPackageWithPrice(context.Background(), pricing.AdvancedPackageID, "large")
	require.NoError(t, err)
	assert.Equal(t, 360.0, priced.BasePrice)
	assert.Equal(t, 10, priced.Washes)
}

func TestGetPackageWithPriceFallsBackOnStoreError(t *testing.T) {
	repo := newFakeRepository()
	repo.Package = failingPackageRepo{}
	service := NewCatalogService(repo, pricing.DefaultTable(), zap.NewNop())

	priced, err := service.GetPackageWithPrice(context.Background(), pricing.AdvancedPackageID, "large")
	require.NoError(t, err)
	assert.Equal(t, 360.0, priced.BasePrice)
}
