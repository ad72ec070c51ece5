package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Runnable is a job the scheduler can trigger.
type Runnable interface {
	Execute(ctx context.Context) error
}

type scheduledJob struct {
	name       string
	hour       int
	runOnStart bool
	job        Runnable
}

// Scheduler triggers registered jobs once a day at a fixed UTC hour. Every
// trigger is guarded by the shared run lock, so concurrent deployments never
// run the same job twice at once.
type Scheduler struct {
	lock    *RunLock
	entries []scheduledJob

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates a scheduler with no registered jobs.
func NewScheduler(lock *RunLock) *Scheduler {
	return &Scheduler{lock: lock}
}

// Register adds a job to the schedule. hour is the UTC hour of day (0-23).
// When runOnStart is true the job also runs once immediately after Start.
func (s *Scheduler) Register(name string, hour int, runOnStart bool, job Runnable) {
	s.entries = append(s.entries, scheduledJob{
		name:       name,
		hour:       hour,
		runOnStart: runOnStart,
		job:        job,
	})
}

// Start launches one goroutine per registered job. It returns immediately.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	for _, entry := range s.entries {
		s.wg.Add(1)
		go func(entry scheduledJob) {
			defer s.wg.Done()
			s.runLoop(ctx, entry)
		}(entry)
	}

	slog.Info("Scheduler started", "jobs", len(s.entries))
}

// Stop cancels all job loops and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) runLoop(ctx context.Context, entry scheduledJob) {
	if entry.runOnStart {
		s.runLocked(ctx, entry)
	}

	for {
		wait := time.Until(nextRunAt(time.Now().UTC(), entry.hour))
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.runLocked(ctx, entry)
		}
	}
}

// runLocked runs one job occurrence under the distributed lock. A held lock
// means another instance owns this occurrence, so it is skipped silently.
func (s *Scheduler) runLocked(ctx context.Context, entry scheduledJob) {
	release, acquired, err := s.lock.Acquire(ctx, entry.name)
	if err != nil {
		slog.Error("Failed to acquire job lock", "job", entry.name, "error", err)
		return
	}
	if !acquired {
		slog.Info("Job already running elsewhere, skipping", "job", entry.name)
		return
	}
	defer release()

	slog.Info("Triggering job", "job", entry.name)
	if err := entry.job.Execute(ctx); err != nil {
		slog.Error("Job run failed", "job", entry.name, "error", err)
	}
}

// nextRunAt returns the next occurrence of hour:00 strictly after now.
func nextRunAt(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
