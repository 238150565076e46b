// Package report_repo provides read-only queries backing the reports
// service.
package report_repo

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"loomstock/internal/domain/reports"
	"loomstock/internal/infrastructure/storage/postgres"
)

// MastersStatsRepo implements reports.MastersStats.
type MastersStatsRepo struct {
	txm *postgres.TxManager
}

// NewMastersStatsRepo creates a new masters statistics repository.
func NewMastersStatsRepo(txm *postgres.TxManager) *MastersStatsRepo {
	return &MastersStatsRepo{txm: txm}
}

// CountActiveItems counts items with Active status.
func (r *MastersStatsRepo) CountActiveItems(ctx context.Context) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM cat_items WHERE status = 'Active'")
}

// CountActiveSuppliers counts suppliers with Active status.
func (r *MastersStatsRepo) CountActiveSuppliers(ctx context.Context) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM cat_suppliers WHERE status = 'Active'")
}

// ListActiveItemLevels returns reorder thresholds for all active items.
func (r *MastersStatsRepo) ListActiveItemLevels(ctx context.Context) ([]reports.ItemLevel, error) {
	var levels []reports.ItemLevel
	err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &levels,
		"SELECT id, reorder_level FROM cat_items WHERE status = 'Active'")
	if err != nil {
		return nil, fmt.Errorf("list item levels: %w", err)
	}
	return levels, nil
}

func (r *MastersStatsRepo) count(ctx context.Context, sql string) (int64, error) {
	var count int64
	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, sql).Scan(&count); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return count, nil
}
