package dto

import (
	"encoding/json"
	"time"

	"github.com/coinkeeper/backend/internal/domain/entity"
)

// RegisterPushSubscriptionRequest represents the request body for storing a
// Web Push subscription. Subscription may be null to unsubscribe.
type RegisterPushSubscriptionRequest struct {
	Subscription json.RawMessage `json:"subscription"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	HasPush   bool      `json:"has_push"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts a User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		HasPush:   user.PushSubscription != "",
		CreatedAt: user.CreatedAt,
	}
}
