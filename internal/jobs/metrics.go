// Package jobs contains the scheduled background jobs: the recurring
// transaction update, the payment reminders, and their shared scheduling,
// locking and metrics infrastructure.
package jobs

import (
	"log/slog"
	"sync"
	"time"
)

// RunStatus represents the lifecycle of one job run.
type RunStatus string

const (
	RunStatusPending   RunStatus = "PENDING"
	RunStatusRunning   RunStatus = "RUNNING"
	RunStatusSucceeded RunStatus = "SUCCEEDED"
	RunStatusFailed    RunStatus = "FAILED"
)

// RunMetric records a single job run.
type RunMetric struct {
	JobName    string
	Status     RunStatus
	StartedAt  time.Time
	FinishedAt time.Time
	Err        error
}

// Duration returns how long the run took. Zero while the run is in flight.
func (m *RunMetric) Duration() time.Duration {
	if m.FinishedAt.IsZero() {
		return 0
	}
	return m.FinishedAt.Sub(m.StartedAt)
}

// JobStats aggregates all finished runs of one job.
type JobStats struct {
	TotalRuns       int
	SuccessfulRuns  int
	FailedRuns      int
	AverageDuration time.Duration
}

// MetricsCollector accumulates job run metrics for the lifetime of the
// process. It is an explicit dependency of the jobs rather than package
// state, so tests and multiple schedulers get isolated collectors.
type MetricsCollector struct {
	mu   sync.Mutex
	runs []*RunMetric
}

// NewMetricsCollector creates an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{}
}

// StartRun registers the beginning of a job run and returns its metric.
func (c *MetricsCollector) StartRun(jobName string) *RunMetric {
	metric := &RunMetric{
		JobName:   jobName,
		Status:    RunStatusRunning,
		StartedAt: time.Now().UTC(),
	}

	c.mu.Lock()
	c.runs = append(c.runs, metric)
	c.mu.Unlock()

	return metric
}

// FinishRun marks the run as finished and logs its outcome.
func (c *MetricsCollector) FinishRun(metric *RunMetric, success bool, err error) {
	c.mu.Lock()
	metric.FinishedAt = time.Now().UTC()
	metric.Err = err
	if success {
		metric.Status = RunStatusSucceeded
	} else {
		metric.Status = RunStatusFailed
	}
	c.mu.Unlock()

	slog.Info("Job finished",
		"job", metric.JobName,
		"duration", metric.Duration().String(),
		"success", success,
	)
}

// Stats aggregates every finished run of the named job.
func (c *MetricsCollector) Stats(jobName string) JobStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := JobStats{}
	var total time.Duration

	for _, run := range c.runs {
		if run.JobName != jobName || run.FinishedAt.IsZero() {
			continue
		}
		stats.TotalRuns++
		if run.Status == RunStatusSucceeded {
			stats.SuccessfulRuns++
		} else {
			stats.FailedRuns++
		}
		total += run.Duration()
	}

	if stats.TotalRuns > 0 {
		stats.AverageDuration = total / time.Duration(stats.TotalRuns)
	}
	return stats
}

// Reset discards all recorded runs.
func (c *MetricsCollector) Reset() {
	c.mu.Lock()
	c.runs = nil
	c.mu.Unlock()
}
