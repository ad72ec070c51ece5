package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/application/adapter"
)

// WebPushSender implements adapter.NotificationSender over the Web Push
// protocol. Users without a stored subscription are skipped.
type WebPushSender struct {
	subscriber      string
	vapidPublicKey  string
	vapidPrivateKey string
	userRepo        adapter.UserRepository
}

// NewWebPushSender creates a new Web Push sender. subscriber is the contact
// address announced to push services, usually a mailto: URL.
func NewWebPushSender(subscriber, vapidPublicKey, vapidPrivateKey string, userRepo adapter.UserRepository) *WebPushSender {
	return &WebPushSender{
		subscriber:      subscriber,
		vapidPublicKey:  vapidPublicKey,
		vapidPrivateKey: vapidPrivateKey,
		userRepo:        userRepo,
	}
}

// Send delivers the notification to the user's registered browser.
func (s *WebPushSender) Send(ctx context.Context, userID uuid.UUID, notification adapter.Notification) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if user.PushSubscription == "" {
		return nil
	}

	var subscription webpush.Subscription
	if err := json.Unmarshal([]byte(user.PushSubscription), &subscription); err != nil {
		return fmt.Errorf("stored push subscription is malformed: %w", err)
	}

	payload, err := json.Marshal(map[string]any{
		"title": notification.Title,
		"body":  notification.Body,
		"data":  notification.Data,
	})
	if err != nil {
		return fmt.Errorf("failed to encode push payload: %w", err)
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, &subscription, &webpush.Options{
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.vapidPublicKey,
		VAPIDPrivateKey: s.vapidPrivateKey,
		TTL:             3600,
	})
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	defer resp.Body.Close()

	// The push service reports a gone endpoint when the browser dropped the
	// subscription; clear it so we stop pushing into the void.
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		user.PushSubscription = ""
		if err := s.userRepo.Save(ctx, user); err != nil {
			slog.Error("Failed to clear expired push subscription", "userID", userID, "error", err)
		}
		return nil
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("push service responded with status %d", resp.StatusCode)
	}
	return nil
}
