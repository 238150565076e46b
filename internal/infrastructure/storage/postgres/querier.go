package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// QuerierAdapter routes plain query calls through the active transaction
// when one is in the context. It backs components that take a querier
// rather than the transaction manager, such as the document numerator.
type QuerierAdapter struct {
	txm *TxManager
}

// NewQuerierAdapter creates a querier bound to the transaction manager.
func NewQuerierAdapter(txm *TxManager) *QuerierAdapter {
	return &QuerierAdapter{txm: txm}
}

func (a *QuerierAdapter) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return a.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...)
}

func (a *QuerierAdapter) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return a.txm.GetQuerier(ctx).Query(ctx, sql, args...)
}
