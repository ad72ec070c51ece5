package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseLockScript deletes the lock only when it is still held by the
// caller's token, so an expired lock reacquired elsewhere is never released
// by a stale holder.
var releaseLockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RunLock serializes job runs across processes with a redis SETNX lock. The
// TTL bounds how long a crashed holder can block the next run.
type RunLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRunLock creates a lock manager backed by the given redis client.
func NewRunLock(client *redis.Client, ttl time.Duration) *RunLock {
	return &RunLock{client: client, ttl: ttl}
}

// Acquire tries to take the lock for the named job. When acquired it returns
// a release function that must be called once the run finishes. When the
// lock is already held elsewhere it returns acquired=false and a nil release.
func (l *RunLock) Acquire(ctx context.Context, jobName string) (release func(), acquired bool, err error) {
	key := fmt.Sprintf("jobs:lock:%s", jobName)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire job lock: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	release = func() {
		// The run's context may already be cancelled; the lock still has
		// to be released.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := releaseLockScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			slog.Error("Failed to release job lock", "job", jobName, "error", err)
		}
	}
	return release, true, nil
}
