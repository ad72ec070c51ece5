// Package notification contains the payment reminder use case.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
)

// reminderWindowDays is how far ahead upcoming payments are announced.
const reminderWindowDays = 3

// NotifyUpcomingPaymentsInput represents the input for the reminder run.
type NotifyUpcomingPaymentsInput struct {
	Now time.Time
}

// NotifyUpcomingPaymentsOutput reports how many users were notified.
type NotifyUpcomingPaymentsOutput struct {
	NotifiedUsers int
}

// NotifyUpcomingPaymentsUseCase finds every ledger entry due within the next
// three days, groups the entries per user and delivers one summary over each
// channel. Delivery failures are logged per user and do not abort the run.
type NotifyUpcomingPaymentsUseCase struct {
	transactionRepo adapter.TransactionRepository
	emailSender     adapter.NotificationSender
	pushSender      adapter.NotificationSender
}

// NewNotifyUpcomingPaymentsUseCase creates a new use case instance.
func NewNotifyUpcomingPaymentsUseCase(
	transactionRepo adapter.TransactionRepository,
	emailSender adapter.NotificationSender,
	pushSender adapter.NotificationSender,
) *NotifyUpcomingPaymentsUseCase {
	return &NotifyUpcomingPaymentsUseCase{
		transactionRepo: transactionRepo,
		emailSender:     emailSender,
		pushSender:      pushSender,
	}
}

// Execute performs one reminder run.
func (uc *NotifyUpcomingPaymentsUseCase) Execute(ctx context.Context, input NotifyUpcomingPaymentsInput) (*NotifyUpcomingPaymentsOutput, error) {
	if input.Now.IsZero() {
		input.Now = time.Now().UTC()
	}
	windowEnd := input.Now.AddDate(0, 0, reminderWindowDays)

	transactions, err := uc.transactionRepo.FindByDateRange(ctx, input.Now, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming transactions: %w", err)
	}

	byUser := make(map[uuid.UUID][]*entity.Transaction)
	for _, tx := range transactions {
		byUser[tx.UserID] = append(byUser[tx.UserID], tx)
	}

	output := &NotifyUpcomingPaymentsOutput{}

	for userID, userTxs := range byUser {
		notification := buildReminder(userTxs)

		delivered := false
		if err := uc.emailSender.Send(ctx, userID, notification); err != nil {
			slog.Error("Failed to send reminder email", "userID", userID, "error", err)
		} else {
			delivered = true
		}
		if err := uc.pushSender.Send(ctx, userID, notification); err != nil {
			slog.Error("Failed to send reminder push", "userID", userID, "error", err)
		} else {
			delivered = true
		}

		if delivered {
			output.NotifiedUsers++
			slog.Info("Payment reminders sent",
				"userID", userID,
				"transactionCount", len(userTxs),
			)
		}
	}

	return output, nil
}

// buildReminder renders the per-user summary notification.
func buildReminder(transactions []*entity.Transaction) adapter.Notification {
	total := decimal.Zero
	lines := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		total = total.Add(tx.Amount)
		lines = append(lines, fmt.Sprintf("%s: $%s - %s", tx.Name, tx.Amount.StringFixed(2), tx.Date.Format("2006-01-02")))
	}

	plural := ""
	if len(transactions) > 1 {
		plural = "s"
	}

	return adapter.Notification{
		Title: "Upcoming Payments",
		Body: fmt.Sprintf("You have %d payment%s scheduled for the next %d days, totaling $%s.",
			len(transactions), plural, reminderWindowDays, total.StringFixed(2)),
		Data: map[string]string{
			"payments": strings.Join(lines, "\n"),
		},
	}
}
