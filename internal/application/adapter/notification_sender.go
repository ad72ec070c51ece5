// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// Notification is the channel-independent payload of a user notification.
type Notification struct {
	Title string
	Body  string
	Data  map[string]string
}

// NotificationSender defines the interface for delivering a notification to a
// user over one channel (email, web push).
type NotificationSender interface {
	// Send delivers the notification to the given user. Implementations that
	// have no address for the user (for example no push subscription) return
	// nil without sending.
	Send(ctx context.Context, userID uuid.UUID, notification Notification) error
}
