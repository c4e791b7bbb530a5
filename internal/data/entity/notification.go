package entity

import (
	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeRateWash NotificationType = "rate_wash"
	NotificationTypePayment  NotificationType = "payment"
	NotificationTypeGeneral  NotificationType = "general"
)

type Notification struct {
	BaseSimple
	UserID    uuid.UUID        `db:"user_id"`
	Type      NotificationType `db:"type"`
	Message   string           `db:"message"`
	IsRead    bool             `db:"is_read"`
	WashID    *uuid.UUID       `db:"wash_id"`
	PaymentID *uuid.UUID       `db:"payment_id"`
}
