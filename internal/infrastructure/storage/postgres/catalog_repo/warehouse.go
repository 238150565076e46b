package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"loomstock/internal/domain/catalogs/warehouse"
	"loomstock/internal/infrastructure/storage/postgres"
)

const warehouseTable = "cat_warehouses"

// WarehouseRepo implements warehouse.Repository.
type WarehouseRepo struct {
	*BaseRepo[*warehouse.Warehouse]
}

// NewWarehouseRepo creates a new warehouse repository.
func NewWarehouseRepo(txm *postgres.TxManager) *WarehouseRepo {
	return &WarehouseRepo{
		BaseRepo: NewBaseRepo(
			txm,
			warehouseTable,
			"warehouse",
			postgres.ExtractDBColumns[warehouse.Warehouse](),
			[]string{"warehouse_name", "location"},
			"",
			func() *warehouse.Warehouse { return &warehouse.Warehouse{} },
		),
	}
}

// WarehouseName resolves a warehouse id to its display name. Unknown ids
// resolve to an empty name so denormalized document rows never fail on a
// missing master.
func (r *WarehouseRepo) WarehouseName(ctx context.Context, warehouseID string) (string, error) {
	q := r.Builder().
		Select("warehouse_name").
		From(warehouseTable).
		Where(squirrel.Eq{"id": warehouseID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return "", fmt.Errorf("build query: %w", err)
	}

	var name string
	err = r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&name)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("warehouse name: %w", err)
	}
	return name, nil
}
