package repository

import (
	"carwash-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Car          CarRepository
	Package      PackageRepository
	Branch       BranchRepository
	UserPackage  UserPackageRepository
	Wash         WashRepository
	Payment      PaymentRepository
	Notification NotificationRepository
	Feedback     FeedbackRepository
	Content      ContentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Car:          NewCarRepository(db, log),
		Package:      NewPackageRepository(db, log),
		Branch:       NewBranchRepository(db, log),
		UserPackage:  NewUserPackageRepository(db, log),
		Wash:         NewWashRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
		Notification: NewNotificationRepository(db, log),
		Feedback:     NewFeedbackRepository(db, log),
		Content:      NewContentRepository(db, log),
	}
}
