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

type CarService interface {
	AddCar(ctx context.Context, userID uuid.UUID, req *request.CreateCarRequest) (*response.CarResponse, error)
	ListCars(ctx context.Context, userID uuid.UUID) ([]response.CarResponse, error)
	DeleteCar(ctx context.Context, userID, carID uuid.UUID) error
}

type carService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCarService(repo *repository.Repository, log *zap.Logger) CarService {
	return &carService{
		repo: repo,
		log:  log.With(zap.String("service", "car")),
	}
}

func (s *carService) AddCar(ctx context.Context, userID uuid.UUID, req *request.CreateCarRequest) (*response.CarResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add car validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	if !entity.ValidCarSize(req.Size) {
		return nil, ErrInvalidCarSize
	}

	now := time.Now()
	car := &entity.Car{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		PlateNumber: req.PlateNumber,
		Model:       req.Model,
		Size:        entity.CarSize(req.Size),
	}

	if err := s.repo.Car.Create(ctx, car); err != nil {
		s.log.Error("Failed to create car",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("create car: %w", err)
	}

	s.log.Info("Car added",
		zap.String("car_id", car.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("size", req.Size))

	resp := response.CarToResponse(car)
	return &resp, nil
}

func (s *carService) ListCars(ctx context.Context, userID uuid.UUID) ([]response.CarResponse, error) {
	cars, err := s.repo.Car.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list cars", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list cars: %w", err)
	}

	responses := make([]response.CarResponse, len(cars))
	for i, car := range cars {
		responses[i] = response.CarToResponse(car)
	}

	return responses, nil
}

func (s *carService) DeleteCar(ctx context.Context, userID, carID uuid.UUID) error {
	car, err := s.repo.Car.FindByID(ctx, carID)
	if err != nil {
		s.log.Error("Failed to find car", zap.Error(err), zap.String("car_id", carID.String()))
		return fmt.Errorf("find car: %w", err)
	}
	if car == nil {
		return ErrCarNotFound
	}

	if car.UserID != userID {
		return ErrNotOwner
	}

	if err := s.repo.Car.Delete(ctx, carID); err != nil {
		s.log.Error("Failed to delete car", zap.Error(err), zap.String("car_id", carID.String()))
		return fmt.Errorf("delete car: %w", err)
	}

	s.log.Info("Car deleted",
		zap.String("car_id", carID.String()),
		zap.String("user_id", userID.String()))

	return nil
}
