// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a CoinKeeper user. Users are created on first Google
// sign-in, so there is no password material on this entity.
type User struct {
	ID               uuid.UUID
	Name             string
	Email            string
	Avatar           string
	PushSubscription string // Serialized Web Push subscription, empty when not registered
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewUser creates a new User entity from a Google profile.
func NewUser(name, email, avatar string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Avatar:    avatar,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GoogleProfile holds the subset of the Google userinfo payload the
// application cares about.
type GoogleProfile struct {
	ID      string
	Email   string
	Name    string
	Picture string
}
