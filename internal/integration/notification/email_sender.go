// Package notification delivers user notifications over email and Web Push.
package notification

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"

	"github.com/coinkeeper/backend/internal/application/adapter"
)

// ResendEmailSender implements adapter.NotificationSender over the Resend
// email API.
type ResendEmailSender struct {
	client    *resend.Client
	fromName  string
	fromEmail string
	userRepo  adapter.UserRepository
}

// NewResendEmailSender creates a new Resend-backed sender.
func NewResendEmailSender(apiKey, fromName, fromEmail string, userRepo adapter.UserRepository) *ResendEmailSender {
	return &ResendEmailSender{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		userRepo:  userRepo,
	}
}

// Send delivers the notification to the user's email address.
func (s *ResendEmailSender) Send(ctx context.Context, userID uuid.UUID, notification adapter.Notification) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{user.Email},
		Subject: notification.Title,
		Html:    renderHTML(user.Name, notification),
		Text:    renderText(notification),
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func renderHTML(name string, notification adapter.Notification) string {
	var sb strings.Builder
	sb.WriteString("<p>Hi ")
	sb.WriteString(html.EscapeString(name))
	sb.WriteString(",</p><p>")
	sb.WriteString(html.EscapeString(notification.Body))
	sb.WriteString("</p>")
	if payments := notification.Data["payments"]; payments != "" {
		sb.WriteString("<ul>")
		for _, line := range strings.Split(payments, "\n") {
			sb.WriteString("<li>")
			sb.WriteString(html.EscapeString(line))
			sb.WriteString("</li>")
		}
		sb.WriteString("</ul>")
	}
	return sb.String()
}

func renderText(notification adapter.Notification) string {
	text := notification.Body
	if payments := notification.Data["payments"]; payments != "" {
		text += "\n\n" + payments
	}
	return text
}
