// Package register_repo provides the PostgreSQL stock balance register.
package register_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"loomstock/internal/core/id"
	"loomstock/internal/core/types"
	"loomstock/internal/domain/ledger"
	"loomstock/internal/infrastructure/storage/postgres"
)

const stockBalanceTable = "reg_stock_balances"

// StockBalanceRepo implements ledger.Repository. Both mutations are single
// statements so concurrent movements on the same key never lose updates.
type StockBalanceRepo struct {
	txm *postgres.TxManager
}

// NewStockBalanceRepo creates a new stock balance repository.
func NewStockBalanceRepo(txm *postgres.TxManager) *StockBalanceRepo {
	return &StockBalanceRepo{txm: txm}
}

// ApplyDelta upserts the balance row, adding delta to the current quantity,
// and returns the new quantity.
func (r *StockBalanceRepo) ApplyDelta(ctx context.Context, key ledger.Key, delta types.Quantity, denorm ledger.Denorm) (types.Quantity, error) {
	sql := `
		INSERT INTO reg_stock_balances (
			id, item_id, item_name, warehouse_id, warehouse_name, qty, uom, last_updated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (item_id, warehouse_id) DO UPDATE SET
			qty = reg_stock_balances.qty + EXCLUDED.qty,
			last_updated = now()
		RETURNING qty
	`

	var qty types.Quantity
	err := r.txm.GetQuerier(ctx).QueryRow(ctx, sql,
		id.New().String(), key.ItemID, denorm.ItemName,
		key.WarehouseID, denorm.WarehouseName, delta, denorm.UOM,
	).Scan(&qty)
	if err != nil {
		return 0, fmt.Errorf("apply delta: %w", err)
	}
	return qty, nil
}

// DecrementIfAvailable subtracts qty only when the current balance covers
// it. The condition lives in the UPDATE itself; no row updated means the
// balance was insufficient or absent.
func (r *StockBalanceRepo) DecrementIfAvailable(ctx context.Context, key ledger.Key, qty types.Quantity) (types.Quantity, bool, error) {
	sql := `
		UPDATE reg_stock_balances SET
			qty = qty - $1,
			last_updated = now()
		WHERE item_id = $2 AND warehouse_id = $3 AND qty >= $1
		RETURNING qty
	`

	var remaining types.Quantity
	err := r.txm.GetQuerier(ctx).QueryRow(ctx, sql, qty, key.ItemID, key.WarehouseID).Scan(&remaining)
	if err == pgx.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("decrement: %w", err)
	}
	return remaining, true, nil
}

// Get returns the balance row, or nil when absent.
func (r *StockBalanceRepo) Get(ctx context.Context, key ledger.Key) (*ledger.Balance, error) {
	q := r.builder().
		Where(squirrel.Eq{"item_id": key.ItemID, "warehouse_id": key.WarehouseID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var balance ledger.Balance
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &balance, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &balance, nil
}

// List returns balances matching the filter, ordered by item then
// warehouse.
func (r *StockBalanceRepo) List(ctx context.Context, filter ledger.Filter) ([]ledger.Balance, error) {
	q := r.builder().OrderBy("item_name", "warehouse_name")
	if filter.ItemID != "" {
		q = q.Where(squirrel.Eq{"item_id": filter.ItemID})
	}
	if filter.WarehouseID != "" {
		q = q.Where(squirrel.Eq{"warehouse_id": filter.WarehouseID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var balances []ledger.Balance
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &balances, sql, args...); err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	return balances, nil
}

func (r *StockBalanceRepo) builder() squirrel.SelectBuilder {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(postgres.ExtractDBColumns[ledger.Balance]()...).
		From(stockBalanceTable)
}
