package usecase

import (
	"context"
	"fmt"
	"time"

	"carwash-booking/internal/data/entity"
	"carwash-booking/internal/data/repository"
	"carwash-booking/internal/dto/request"
	"carwash-booking/internal/dto/response"
	"carwash-booking/internal/pricing"
	"carwash-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RedemptionService interface {
	// ScanBarcode redeems one wash from the package behind the barcode and
	// records the wash against the operator's branch.
	ScanBarcode(ctx context.Context, operatorID uuid.UUID, req *request.ScanBarcodeRequest) (*response.ScanResultResponse, error)

	ListWashes(ctx context.Context, userID uuid.UUID, page, perPage int) (*response.PaginatedResponse[response.WashResponse], error)
	ListBranchWashes(ctx context.Context, branchID uuid.UUID, page, perPage int) (*response.PaginatedResponse[response.WashResponse], error)
	RateWash(ctx context.Context, userID uuid.UUID, req *request.CreateFeedbackRequest) error
}

type redemptionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRedemptionService(repo *repository.Repository, log *zap.Logger) RedemptionService {
	return &redemptionService{
		repo: repo,
		log:  log.With(zap.String("service", "redemption")),
	}
}

func (s *redemptionService) ScanBarcode(ctx context.Context, operatorID uuid.UUID, req *request.ScanBarcodeRequest) (*response.ScanResultResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Scan validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, fmt.Errorf("%w: branch_id is not a valid uuid", ErrValidation)
	}

	branch, err := s.repo.Branch.FindByID(ctx, branchID)
	if err != nil {
		s.log.Error("Failed to find branch", zap.Error(err), zap.String("branch_id", branchID.String()))
		return nil, fmt.Errorf("find branch: %w", err)
	}
	if branch == nil {
		return nil, ErrBranchNotFound
	}

	// Guard and decrement happen in a single statement, so two operators
	// scanning the same barcode at once can never burn more washes than
	// the package holds. A nil result means the guard rejected us; a
	// follow-up read tells the operator why.
	up, err := s.repo.UserPackage.RedeemByBarcode(ctx, req.Barcode)
	if err != nil {
		s.log.Error("Redeem failed", zap.Error(err), zap.String("barcode", req.Barcode))
		return nil, fmt.Errorf("redeem barcode: %w", err)
	}
	if up == nil {
		return nil, s.classifyRejection(ctx, req.Barcode)
	}

	now := time.Now()
	wash := &entity.Wash{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:        up.UserID,
		OperatorID:    operatorID,
		BranchID:      branchID,
		UserPackageID: up.ID,
		Status:        entity.WashStatusCompleted,
	}
	if err := s.repo.Wash.Create(ctx, wash); err != nil {
		s.log.Error("Failed to record wash",
			zap.Error(err),
			zap.String("user_package_id", up.ID.String()))
		return nil, fmt.Errorf("record wash: %w", err)
	}

	s.notifyRateWash(ctx, up.UserID, wash.ID)

	s.log.Info("Barcode redeemed",
		zap.String("user_package_id", up.ID.String()),
		zap.String("branch_id", branchID.String()),
		zap.String("operator_id", operatorID.String()),
		zap.Int("washes_left", up.WashesLeft))

	return s.buildScanResult(ctx, up, wash)
}

func (s *redemptionService) ListWashes(ctx context.Context, userID uuid.UUID, page, perPage int) (*response.PaginatedResponse[response.WashResponse], error) {
	offset := (page - 1) * perPage

	washes, err := s.repo.Wash.FindByUserID(ctx, userID, perPage, offset)
	if err != nil {
		s.log.Error("Failed to list washes", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list washes: %w", err)
	}

	total, err := s.repo.Wash.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count washes", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("count washes: %w", err)
	}

	responses := make([]response.WashResponse, len(washes))
	for i, wash := range washes {
		responses[i] = response.WashToResponse(wash)
	}

	return response.NewPaginatedResponse(responses, page, perPage, total), nil
}

func (s *redemptionService) ListBranchWashes(ctx context.Context, branchID uuid.UUID, page, perPage int) (*response.PaginatedResponse[response.WashResponse], error) {
	branch, err := s.repo.Branch.FindByID(ctx, branchID)
	if err != nil {
		s.log.Error("Failed to find branch", zap.Error(err), zap.String("branch_id", branchID.String()))
		return nil, fmt.Errorf("find branch: %w", err)
	}
	if branch == nil {
		return nil, ErrBranchNotFound
	}

	offset := (page - 1) * perPage

	washes, err := s.repo.Wash.FindByBranchID(ctx, branchID, perPage, offset)
	if err != nil {
		s.log.Error("Failed to list branch washes", zap.Error(err), zap.String("branch_id", branchID.String()))
		return nil, fmt.Errorf("list branch washes: %w", err)
	}

	total, err := s.repo.Wash.CountByBranchID(ctx, branchID)
	if err != nil {
		s.log.Error("Failed to count branch washes", zap.Error(err), zap.String("branch_id", branchID.String()))
		return nil, fmt.Errorf("count branch washes: %w", err)
	}

	responses := make([]response.WashResponse, len(washes))
	for i, wash := range washes {
		responses[i] = response.WashToResponse(wash)
	}

	return response.NewPaginatedResponse(responses, page, perPage, total), nil
}

func (s *redemptionService) RateWash(ctx context.Context, userID uuid.UUID, req *request.CreateFeedbackRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Feedback validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	washID, err := uuid.Parse(req.WashID)
	if err != nil {
		return fmt.Errorf("%w: wash_id is not a valid uuid", ErrValidation)
	}

	wash, err := s.repo.Wash.FindByID(ctx, washID)
	if err != nil {
		s.log.Error("Failed to find wash", zap.Error(err), zap.String("wash_id", washID.String()))
		return fmt.Errorf("find wash: %w", err)
	}
	if wash == nil {
		return ErrWashNotFound
	}
	if wash.UserID != userID {
		return ErrNotOwner
	}

	fb := &entity.Feedback{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  userID,
		WashID:  washID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := s.repo.Feedback.Create(ctx, fb); err != nil {
		s.log.Error("Failed to save feedback", zap.Error(err), zap.String("wash_id", washID.String()))
		return fmt.Errorf("save feedback: %w", err)
	}

	s.log.Info("Wash rated",
		zap.String("wash_id", washID.String()),
		zap.Int("rating", req.Rating))

	return nil
}

// ==================== HELPER METHODS ====================

// classifyRejection reads the package once more so a rejected scan can
// report which rule blocked it rather than a bare "not found".
func (s *redemptionService) classifyRejection(ctx context.Context, barcode string) error {
	up, err := s.repo.UserPackage.FindByBarcode(ctx, barcode)
	if err != nil {
		s.log.Error("Failed to classify rejected scan", zap.Error(err), zap.String("barcode", barcode))
		return fmt.Errorf("inspect barcode: %w", err)
	}
	if up == nil {
		return ErrBarcodeNotFound
	}
	if up.Status == entity.UserPackageStatusExpired || time.Now().After(up.Expiry) {
		return ErrPackageExpired
	}
	if up.Status == entity.UserPackageStatusUsed || up.WashesLeft <= 0 {
		return ErrPackageExhausted
	}
	// The package turned redeemable between the two reads. Have the
	// operator scan again instead of guessing.
	return ErrBarcodeNotFound
}

func (s *redemptionService) buildScanResult(ctx context.Context, up *entity.UserPackage, wash *entity.Wash) (*response.ScanResultResponse, error) {
	user, err := s.repo.User.FindByID(ctx, up.UserID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	car, err := s.repo.Car.FindByID(ctx, up.CarID)
	if err != nil {
		return nil, fmt.Errorf("find car: %w", err)
	}

	var carSize entity.CarSize
	if car != nil {
		carSize = car.Size
	}

	pkg, err := s.repo.Package.FindByID(ctx, up.PackageID)
	if err != nil || pkg == nil {
		for _, fallback := range pricing.FallbackPackages() {
			if fallback.ID == up.PackageID {
				pkg = fallback
				break
			}
		}
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}

	return &response.ScanResultResponse{
		User:       response.UserToProfile(user),
		CarSize:    carSize,
		Package:    response.PackageToResponse(pkg),
		WashesLeft: up.WashesLeft,
		Expiry:     up.Expiry,
		Status:     string(up.Status),
		Wash:       response.WashToResponse(wash),
	}, nil
}

// notifyRateWash is best effort. A failed notification never blocks the
// wash that was already redeemed.
func (s *redemptionService) notifyRateWash(ctx context.Context, userID, washID uuid.UUID) {
	n := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  userID,
		Type:    entity.NotificationTypeRateWash,
		Message: "Your car wash is done. How was it?",
		WashID:  &washID,
	}
	if err := s.repo.Notification.Create(ctx, n); err != nil {
		s.log.Warn("Failed to create rate-wash notification",
			zap.Error(err),
			zap.String("user_id", userID.String()))
	}
}
