package response

import (
	"time"

	"carwash-booking/internal/data/entity"
)

type AuthResponse struct {
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	Token     string          `json:"token,omitempty"`
	ExpiresAt time.Time       `json:"expires_at,omitempty"`
}

type ProfileResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Phone  string          `json:"phone"`
	Role   entity.UserRole `json:"role"`
	IsPaid bool            `json:"is_paid"`
}

func UserToProfile(user *entity.User) ProfileResponse {
	return ProfileResponse{
		ID:     user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
		Phone:  user.Phone,
		Role:   user.Role,
		IsPaid: user.IsPaid,
	}
}
