// Package stocktransfer provides the Stock Transfer document, an
// approval-gated record of moving goods between warehouses. Transfers are
// record-only: the stock balance ledger is not touched.
package stocktransfer

import (
	"context"
	"time"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/id"
	"loomstock/internal/core/types"
	"loomstock/internal/domain/approval"
)

// StockTransfer records a warehouse-to-warehouse movement.
type StockTransfer struct {
	ID                id.ID          `db:"id" json:"id"`
	TransferNo        string         `db:"transfer_no" json:"transfer_no"`
	FromWarehouseID   string         `db:"from_warehouse_id" json:"from_warehouse_id"`
	FromWarehouseName string         `db:"from_warehouse_name" json:"from_warehouse_name"`
	ToWarehouseID     string         `db:"to_warehouse_id" json:"to_warehouse_id"`
	ToWarehouseName   string         `db:"to_warehouse_name" json:"to_warehouse_name"`
	ItemID            string         `db:"item_id" json:"item_id"`
	ItemName          string         `db:"item_name" json:"item_name"`
	Qty               types.Quantity `db:"qty" json:"qty"`
	UOM               string         `db:"uom" json:"uom"`
	CreatedBy         string         `db:"created_by" json:"created_by"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`

	approval.Fields
}

// Validate checks document invariants before persistence.
func (t *StockTransfer) Validate(_ context.Context) error {
	if t.FromWarehouseID == "" || t.ToWarehouseID == "" {
		return apperror.NewValidation("from_warehouse_id and to_warehouse_id are required")
	}
	if t.FromWarehouseID == t.ToWarehouseID {
		return apperror.NewValidation("source and destination warehouses must differ").
			WithDetail("warehouse_id", t.FromWarehouseID)
	}
	if t.ItemID == "" {
		return apperror.NewValidation("item_id is required").WithDetail("field", "item_id")
	}
	if !t.Qty.IsPositive() {
		return apperror.NewValidation("qty must be positive").WithDetail("field", "qty")
	}
	return nil
}
