package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// GormAdapter routes GORM's logger interface into zap. SQL issued by
// the listing strategies shows up here, which makes the per-strategy
// query counts observable in the logs.
type GormAdapter struct {
	logLevel      gormlogger.LogLevel
	slowThreshold time.Duration
	skipNotFound  bool
}

// NewGormAdapter creates an adapter at the given GORM log level with a
// 200ms slow-query threshold.
func NewGormAdapter(logLevel gormlogger.LogLevel) *GormAdapter {
	return &GormAdapter{
		logLevel:      logLevel,
		slowThreshold: 200 * time.Millisecond,
		skipNotFound:  true,
	}
}

func (l *GormAdapter) LogMode(logLevel gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.logLevel = logLevel
	return &clone
}

func (l *GormAdapter) base() *zap.Logger {
	if log != nil {
		return log
	}
	return zap.NewNop()
}

func (l *GormAdapter) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.logLevel >= gormlogger.Info {
		l.base().Info(fmt.Sprintf(msg, args...))
	}
}

func (l *GormAdapter) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.logLevel >= gormlogger.Warn {
		l.base().Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *GormAdapter) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.logLevel >= gormlogger.Error {
		l.base().Error(fmt.Sprintf(msg, args...))
	}
}

func (l *GormAdapter) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.logLevel <= gormlogger.Silent {
		return
	}

	sql, rows := fc()
	elapsed := time.Since(begin)
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
	}

	switch {
	case err != nil && l.logLevel >= gormlogger.Error:
		if l.skipNotFound && errors.Is(err, gormlogger.ErrRecordNotFound) {
			return
		}
		l.base().Error("database operation failed", append(fields, zap.Error(err))...)
	case l.slowThreshold != 0 && elapsed > l.slowThreshold && l.logLevel >= gormlogger.Warn:
		l.base().Warn("slow SQL query", fields...)
	case l.logLevel >= gormlogger.Info:
		l.base().Info("SQL query executed", fields...)
	}
}
