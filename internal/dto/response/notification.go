package response

import (
	"time"

	"carwash-booking/internal/data/entity"
)

type NotificationResponse struct {
	ID        string                  `json:"id"`
	Type      entity.NotificationType `json:"type"`
	Message   string                  `json:"message"`
	IsRead    bool                    `json:"is_read"`
	WashID    *string                 `json:"wash_id,omitempty"`
	PaymentID *string                 `json:"payment_id,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

func NotificationToResponse(n *entity.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID.String(),
		Type:      n.Type,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}

	if n.WashID != nil {
		id := n.WashID.String()
		resp.WashID = &id
	}
	if n.PaymentID != nil {
		id := n.PaymentID.String()
		resp.PaymentID = &id
	}

	return resp
}
