// Package mysql is the MySQL/GORM persistence adapter. Repositories
// map aggregates through plain persistence objects; GORM association
// features are not used, so aggregate boundaries stay explicit.
package mysql

import (
	"fmt"
	"time"

	"shopapi/config"
	"shopapi/infrastructure/persistence/mysql/po"
	"shopapi/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func parseLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug", "info":
		return gormlogger.Info
	case "warn":
		return gormlogger.Warn
	case "error":
		return gormlogger.Error
	case "silent":
		return gormlogger.Silent
	default:
		return gormlogger.Warn
	}
}

// Connect opens the database and applies pool settings.
func Connect(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.NewGormAdapter(parseLogLevel(cfg.LogLevel)),
		// Surface driver errors as gorm sentinels (ErrDuplicatedKey).
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	} else {
		sqlDB.SetConnMaxLifetime(10 * time.Minute)
	}

	logger.Info("database connected",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database),
		zap.Int("max_open_conns", cfg.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.MaxIdleConns),
	)

	return db, nil
}

// Migrate creates or updates the schema for all persistence objects.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&po.MemberPO{},
		&po.ItemPO{},
		&po.DeliveryPO{},
		&po.OrderPO{},
		&po.OrderItemPO{},
	)
}
