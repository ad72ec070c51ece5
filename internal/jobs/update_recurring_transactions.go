package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/application/usecase/recurring"
	"github.com/coinkeeper/backend/internal/infra/retry"
)

// UpdateRecurringTransactionsJobName identifies the recurring update job in
// metrics and lock keys.
const UpdateRecurringTransactionsJobName = "UpdateRecurringTransactions"

// subscriptionProjector and installmentProjector are the slices of the
// recurring use cases the job needs; they keep the job testable.
type subscriptionProjector interface {
	Execute(ctx context.Context, input recurring.ProjectSubscriptionsInput) (*recurring.ProjectSubscriptionsOutput, error)
}

type installmentProjector interface {
	Execute(ctx context.Context, input recurring.ProjectInstallmentsInput) (*recurring.ProjectInstallmentsOutput, error)
}

// UpdateRecurringTransactionsJob drives both projectors across every known
// user. Users are processed strictly sequentially; a failure for one user is
// logged and does not abort the batch. Only a batch-level failure (user
// enumeration) fails the run.
type UpdateRecurringTransactionsJob struct {
	subscriptions subscriptionProjector
	installments  installmentProjector
	userRepo      adapter.UserRepository
	metrics       *MetricsCollector
	retryOpts     retry.Options
}

// NewUpdateRecurringTransactionsJob creates a new job instance.
func NewUpdateRecurringTransactionsJob(
	subscriptions subscriptionProjector,
	installments installmentProjector,
	userRepo adapter.UserRepository,
	metrics *MetricsCollector,
	retryOpts retry.Options,
) *UpdateRecurringTransactionsJob {
	return &UpdateRecurringTransactionsJob{
		subscriptions: subscriptions,
		installments:  installments,
		userRepo:      userRepo,
		metrics:       metrics,
		retryOpts:     retryOpts,
	}
}

// Execute runs one batch over all users.
func (j *UpdateRecurringTransactionsJob) Execute(ctx context.Context) error {
	run := j.metrics.StartRun(UpdateRecurringTransactionsJobName)

	users, err := j.userRepo.FindAll(ctx)
	if err != nil {
		j.metrics.FinishRun(run, false, err)
		return fmt.Errorf("failed to enumerate users: %w", err)
	}

	slog.Info("Starting recurring transactions update", "totalUsers", len(users))

	now := time.Now().UTC()
	for _, user := range users {
		if err := j.processUser(ctx, user.ID, now); err != nil {
			slog.Error("Failed to process user",
				"userID", user.ID,
				"error", err,
			)
		}
	}

	j.metrics.FinishRun(run, true, nil)

	stats := j.metrics.Stats(UpdateRecurringTransactionsJobName)
	slog.Info("Job statistics",
		"job", UpdateRecurringTransactionsJobName,
		"totalRuns", stats.TotalRuns,
		"successfulRuns", stats.SuccessfulRuns,
		"failedRuns", stats.FailedRuns,
		"averageDuration", stats.AverageDuration.String(),
	)

	return nil
}

// processUser runs the subscription projector and then the installment
// projector for one user, each wrapped in retry. The subscription pass fully
// completes before the installment pass starts.
func (j *UpdateRecurringTransactionsJob) processUser(ctx context.Context, userID uuid.UUID, now time.Time) error {
	slog.Debug("Processing user transactions", "userID", userID)

	if err := retry.Do(ctx, func(ctx context.Context) error {
		_, err := j.subscriptions.Execute(ctx, recurring.ProjectSubscriptionsInput{UserID: userID, Now: now})
		return err
	}, j.retryOpts); err != nil {
		return fmt.Errorf("subscription projection: %w", err)
	}

	if err := retry.Do(ctx, func(ctx context.Context) error {
		_, err := j.installments.Execute(ctx, recurring.ProjectInstallmentsInput{UserID: userID, Now: now})
		return err
	}, j.retryOpts); err != nil {
		return fmt.Errorf("installment projection: %w", err)
	}

	return nil
}
