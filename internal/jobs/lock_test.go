package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLock(t *testing.T) (*RunLock, *miniredis.Miniredis) {
	t.Helper()

	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRunLock(client, time.Minute), server
}

func TestRunLock(t *testing.T) {
	ctx := context.Background()

	t.Run("second acquire is rejected while held", func(t *testing.T) {
		lock, _ := newTestLock(t)

		release, acquired, err := lock.Acquire(ctx, "TestJob")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !acquired {
			t.Fatal("expected first acquire to succeed")
		}

		_, again, err := lock.Acquire(ctx, "TestJob")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again {
			t.Error("expected second acquire to be rejected")
		}

		release()

		_, reacquired, err := lock.Acquire(ctx, "TestJob")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reacquired {
			t.Error("expected acquire to succeed after release")
		}
	})

	t.Run("different jobs do not contend", func(t *testing.T) {
		lock, _ := newTestLock(t)

		_, first, err := lock.Acquire(ctx, "JobA")
		if err != nil || !first {
			t.Fatalf("expected JobA acquire to succeed, got acquired=%v err=%v", first, err)
		}

		_, second, err := lock.Acquire(ctx, "JobB")
		if err != nil || !second {
			t.Fatalf("expected JobB acquire to succeed, got acquired=%v err=%v", second, err)
		}
	})

	t.Run("stale release does not free a reacquired lock", func(t *testing.T) {
		lock, server := newTestLock(t)

		staleRelease, acquired, err := lock.Acquire(ctx, "TestJob")
		if err != nil || !acquired {
			t.Fatalf("expected acquire to succeed, got acquired=%v err=%v", acquired, err)
		}

		// The holder's TTL elapses and another instance takes the lock.
		server.FastForward(2 * time.Minute)
		_, acquired, err = lock.Acquire(ctx, "TestJob")
		if err != nil || !acquired {
			t.Fatalf("expected reacquire after expiry, got acquired=%v err=%v", acquired, err)
		}

		staleRelease()

		_, acquired, err = lock.Acquire(ctx, "TestJob")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if acquired {
			t.Error("stale release must not free the new holder's lock")
		}
	})
}
