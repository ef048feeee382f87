// Package retry wraps a unit of work with bounded retry on transient
// storage conflicts: MySQL deadlocks and lock-wait timeouts. Business
// errors never retry.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"

	"shopapi/config"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// MySQL server error numbers for retryable conflicts.
const (
	mysqlErrDeadlock    = 1213
	mysqlErrLockTimeout = 1205
)

// Config bounds the retry loop.
type Config struct {
	Enabled       bool
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultConfig retries three times with jittered exponential backoff.
var DefaultConfig = Config{
	Enabled:       true,
	MaxAttempts:   3,
	InitialDelay:  100 * time.Millisecond,
	MaxDelay:      2 * time.Second,
	BackoffFactor: 2.0,
}

// FromAppConfig converts the application retry section.
func FromAppConfig(rc config.RetryConfig) Config {
	return Config{
		Enabled:       rc.Enabled,
		MaxAttempts:   rc.MaxAttempts,
		InitialDelay:  rc.InitialDelay,
		MaxDelay:      rc.MaxDelay,
		BackoffFactor: rc.BackoffFactor,
	}
}

// Backoff computes the delay before the given attempt (1-based), with
// +/-20 percent jitter to spread retry storms.
func Backoff(attempt int, cfg Config) time.Duration {
	if attempt <= 0 {
		return 0
	}
	delay := float64(cfg.InitialDelay) * math.Pow(cfg.BackoffFactor, float64(attempt-1))
	if delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	delay *= 0.8 + rand.Float64()*0.4
	if delay < 0 {
		delay = 0
	}
	return time.Duration(delay)
}

// IsRetryable reports whether err is a transient storage conflict.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDeadlock, mysqlErrLockTimeout:
			return true
		}
	}

	// Drivers other than go-sql-driver surface the same conditions as
	// plain text.
	msg := err.Error()
	if strings.Contains(msg, "deadlock") || strings.Contains(msg, "lock wait timeout") {
		return true
	}

	if errors.Is(err, gorm.ErrInvalidTransaction) {
		return true
	}

	return false
}

// Execute runs fn, retrying on retryable errors up to MaxAttempts.
func Execute(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	if !cfg.Enabled || cfg.MaxAttempts <= 1 {
		return fn(ctx)
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil || !IsRetryable(lastErr) {
			return lastErr
		}

		if attempt < cfg.MaxAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(Backoff(attempt, cfg)):
			}
		}
	}
	return lastErr
}
