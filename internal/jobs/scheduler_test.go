package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingJob struct {
	runs atomic.Int32
}

func (j *countingJob) Execute(ctx context.Context) error {
	j.runs.Add(1)
	return nil
}

func TestNextRunAt(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		hour int
		want time.Time
	}{
		{
			name: "later today",
			now:  time.Date(2024, 6, 15, 7, 30, 0, 0, time.UTC),
			hour: 9,
			want: time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "hour already passed rolls to tomorrow",
			now:  time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC),
			hour: 9,
			want: time.Date(2024, 6, 16, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly at the hour rolls to tomorrow",
			now:  time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			hour: 0,
			want: time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "month boundary",
			now:  time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC),
			hour: 0,
			want: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextRunAt(tt.now, tt.hour)
			if !got.Equal(tt.want) {
				t.Errorf("nextRunAt(%s, %d) = %s, want %s", tt.now, tt.hour, got, tt.want)
			}
		})
	}
}

func TestScheduler(t *testing.T) {
	t.Run("runs a runOnStart job immediately", func(t *testing.T) {
		lock, _ := newTestLock(t)
		scheduler := NewScheduler(lock)

		job := &countingJob{}
		scheduler.Register("StartupJob", 0, true, job)

		scheduler.Start(context.Background())
		defer scheduler.Stop()

		deadline := time.After(2 * time.Second)
		for job.runs.Load() == 0 {
			select {
			case <-deadline:
				t.Fatal("job did not run on start")
			case <-time.After(10 * time.Millisecond):
			}
		}
	})

	t.Run("does not run the startup pass while the lock is held", func(t *testing.T) {
		lock, _ := newTestLock(t)

		_, acquired, err := lock.Acquire(context.Background(), "HeldJob")
		if err != nil || !acquired {
			t.Fatalf("expected lock acquire to succeed, got acquired=%v err=%v", acquired, err)
		}

		scheduler := NewScheduler(lock)
		job := &countingJob{}
		scheduler.Register("HeldJob", 0, true, job)

		scheduler.Start(context.Background())
		time.Sleep(100 * time.Millisecond)
		scheduler.Stop()

		if job.runs.Load() != 0 {
			t.Errorf("expected 0 runs while lock is held, got %d", job.runs.Load())
		}
	})

	t.Run("stop waits for loops to exit", func(t *testing.T) {
		lock, _ := newTestLock(t)
		scheduler := NewScheduler(lock)
		scheduler.Register("IdleJob", 0, false, &countingJob{})

		scheduler.Start(context.Background())

		done := make(chan struct{})
		go func() {
			scheduler.Stop()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Stop did not return")
		}
	})
}
