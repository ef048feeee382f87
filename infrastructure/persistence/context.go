// Package persistence carries cross-cutting persistence plumbing:
// the transaction and request id travel through context so that
// repositories join the ambient unit of work transparently.
package persistence

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TxFromContext retrieves the GORM transaction from context, or nil
// when the caller runs outside a unit of work.
func TxFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return nil
}

// ContextWithTx attaches a GORM transaction to the context.
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}
