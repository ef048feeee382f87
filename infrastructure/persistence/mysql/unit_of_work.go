package mysql

import (
	"context"
	"fmt"

	"shopapi/domain/shared"
	"shopapi/infrastructure/persistence"
	"shopapi/infrastructure/persistence/retry"

	"gorm.io/gorm"
)

// UnitOfWork implements shared.UnitOfWork on a GORM transaction. The
// transaction is injected into the context so every repository call
// inside fn joins it; transient storage conflicts retry the whole unit
// of work, never a fragment of it.
type UnitOfWork struct {
	db          *gorm.DB
	retryConfig retry.Config
}

// NewUnitOfWork creates a UnitOfWork with default retry behavior.
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db, retryConfig: retry.DefaultConfig}
}

// SetRetryConfig overrides the retry behavior.
func (u *UnitOfWork) SetRetryConfig(cfg retry.Config) {
	u.retryConfig = cfg
}

// Execute runs fn inside one transaction: begin, inject tx into
// context, run, commit on success, roll back on error.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	executeOnce := func(ctx context.Context) error {
		tx := u.db.WithContext(ctx).Begin()
		if tx.Error != nil {
			return fmt.Errorf("failed to begin transaction: %w", tx.Error)
		}

		txCtx := persistence.ContextWithTx(ctx, tx)

		if err := fn(txCtx); err != nil {
			tx.Rollback()
			return err
		}

		if err := tx.Commit().Error; err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		return nil
	}

	return retry.Execute(ctx, u.retryConfig, executeOnce)
}

var _ shared.UnitOfWork = (*UnitOfWork)(nil)
