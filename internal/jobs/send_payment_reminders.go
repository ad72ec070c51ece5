package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coinkeeper/backend/internal/application/usecase/notification"
	"github.com/coinkeeper/backend/internal/infra/retry"
)

// SendPaymentRemindersJobName identifies the reminder job in metrics and
// lock keys.
const SendPaymentRemindersJobName = "SendPaymentReminders"

type paymentNotifier interface {
	Execute(ctx context.Context, input notification.NotifyUpcomingPaymentsInput) (*notification.NotifyUpcomingPaymentsOutput, error)
}

// SendPaymentRemindersJob runs the upcoming-payment reminder use case once,
// wrapped in retry. One run covers all users in a single pass.
type SendPaymentRemindersJob struct {
	notifier  paymentNotifier
	metrics   *MetricsCollector
	retryOpts retry.Options
}

// NewSendPaymentRemindersJob creates a new job instance.
func NewSendPaymentRemindersJob(notifier paymentNotifier, metrics *MetricsCollector, retryOpts retry.Options) *SendPaymentRemindersJob {
	return &SendPaymentRemindersJob{
		notifier:  notifier,
		metrics:   metrics,
		retryOpts: retryOpts,
	}
}

// Execute performs one reminder run.
func (j *SendPaymentRemindersJob) Execute(ctx context.Context) error {
	run := j.metrics.StartRun(SendPaymentRemindersJobName)

	var output *notification.NotifyUpcomingPaymentsOutput
	err := retry.Do(ctx, func(ctx context.Context) error {
		var execErr error
		output, execErr = j.notifier.Execute(ctx, notification.NotifyUpcomingPaymentsInput{Now: time.Now().UTC()})
		return execErr
	}, j.retryOpts)
	if err != nil {
		j.metrics.FinishRun(run, false, err)
		return fmt.Errorf("failed to send payment reminders: %w", err)
	}

	j.metrics.FinishRun(run, true, nil)
	slog.Info("Payment reminder run completed", "notifiedUsers", output.NotifiedUsers)
	return nil
}
