package usecase

import (
	"carwash-booking/internal/data/repository"
	"carwash-booking/internal/gateway"
	"carwash-booking/internal/pricing"
	"carwash-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Car          CarService
	Catalog      CatalogService
	Redemption   RedemptionService
	Purchase     PurchaseService
	Notification NotificationService
	Content      ContentService
	Report       ReportService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	priceTable := pricing.DefaultTable()
	gw := gateway.NewClient(config.Gateway, log)

	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Car:          NewCarService(repo, log),
		Catalog:      NewCatalogService(repo, priceTable, log),
		Redemption:   NewRedemptionService(repo, log),
		Purchase:     NewPurchaseService(repo, gw, priceTable, config, log),
		Notification: NewNotificationService(repo, log),
		Content:      NewContentService(repo, log),
		Report:       NewReportService(repo, log),
	}
}
