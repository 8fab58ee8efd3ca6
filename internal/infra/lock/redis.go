package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a SET NX PX lock keyed by staff id. The value is a random token
// so only the holder can release it.
type Redis struct {
	rdb    *redis.Client
	ttl    time.Duration
	wait   time.Duration
	retry  time.Duration
	prefix string
	logger *slog.Logger
}

func NewRedis(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *Redis {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &Redis{
		rdb:    rdb,
		ttl:    ttl,
		wait:   ttl,
		retry:  25 * time.Millisecond,
		prefix: "booking-lock",
		logger: logger,
	}
}

func (l *Redis) key(staffID uint) string {
	return fmt.Sprintf("%s:staff:%d", l.prefix, staffID)
}

func (l *Redis) WithStaffLock(ctx context.Context, staffID uint, fn func(ctx context.Context) error) error {
	key := l.key(staffID)
	token := uuid.NewString()

	if err := l.acquire(ctx, key, token); err != nil {
		return err
	}
	defer l.release(key, token)

	return fn(ctx)
}

func (l *Redis) acquire(ctx context.Context, key, token string) error {
	waitCtx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	for {
		ok, err := l.rdb.SetNX(waitCtx, key, token, l.ttl).Result()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return ErrBusy
			}
			return fmt.Errorf("acquire %s: %w", key, err)
		}
		if ok {
			return nil
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return ErrBusy
		case <-time.After(l.retry):
		}
	}
}

func (l *Redis) release(key, token string) {
	// The request context may already be canceled; release regardless.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		l.logger.Warn("release booking lock", "key", key, "err", err)
	}
}

var _ domain.StaffLocker = (*Redis)(nil)
