package adaptor

import (
	"errors"
	"net/http"

	"carwash-booking/internal/usecase"
	"carwash-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Car          *CarHandler
	Package      *PackageHandler
	Wash         *WashHandler
	Payment      *PaymentHandler
	Notification *NotificationHandler
	Content      *ContentHandler
	Report       *ReportHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Car:          NewCarHandler(service.Car, log),
		Package:      NewPackageHandler(service.Catalog, service.Purchase, log),
		Wash:         NewWashHandler(service.Redemption, log),
		Payment:      NewPaymentHandler(service.Purchase, config, log),
		Notification: NewNotificationHandler(service.Notification, log),
		Content:      NewContentHandler(service.Content, log),
		Report:       NewReportHandler(service.Report, log),
	}
}

// handleServiceError maps tagged service errors to HTTP responses. Every
// handler shares the same mapping, so a cause always gets the same status.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrInvalidCarSize):
		log.Warn(operation+" failed - bad input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrPackageExpired),
		errors.Is(err, usecase.ErrPackageExhausted):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials",
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrAccountDisabled),
		errors.Is(err, usecase.ErrNotOwner):
		log.Warn(operation+" forbidden",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrEmailOrPhoneTaken):
		log.Warn(operation+" failed - duplicate account",
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrCarNotFound),
		errors.Is(err, usecase.ErrPackageNotFound),
		errors.Is(err, usecase.ErrBranchNotFound),
		errors.Is(err, usecase.ErrPaymentNotFound),
		errors.Is(err, usecase.ErrWashNotFound),
		errors.Is(err, usecase.ErrContentNotFound),
		errors.Is(err, usecase.ErrNotificationNotFound),
		errors.Is(err, usecase.ErrBarcodeNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrGatewayUnavailable):
		log.Error(operation+" failed - gateway unavailable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, "Payment gateway unavailable")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
