// Package stockinward provides the Stock Inward document, the only inward
// movement that adds quantity to the stock balance ledger.
package stockinward

import (
	"context"
	"time"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/id"
	"loomstock/internal/core/types"
)

// StockInward moves QC-cleared goods into a warehouse.
type StockInward struct {
	ID            id.ID          `db:"id" json:"id"`
	InwardNo      string         `db:"inward_no" json:"inward_no"`
	QCID          string         `db:"qc_id" json:"qc_id"`
	ItemID        string         `db:"item_id" json:"item_id"`
	ItemName      string         `db:"item_name" json:"item_name"`
	Qty           types.Quantity `db:"qty" json:"qty"`
	UOM           string         `db:"uom" json:"uom"`
	WarehouseID   string         `db:"warehouse_id" json:"warehouse_id"`
	BinLocationID *string        `db:"bin_location_id" json:"bin_location_id,omitempty"`
	BatchNo       *string        `db:"batch_no" json:"batch_no,omitempty"`
	Status        string         `db:"status" json:"status"`
	CreatedBy     string         `db:"created_by" json:"created_by"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
}

// Validate checks document invariants before persistence.
func (si *StockInward) Validate(_ context.Context) error {
	if si.QCID == "" {
		return apperror.NewValidation("qc_id is required").WithDetail("field", "qc_id")
	}
	if si.ItemID == "" {
		return apperror.NewValidation("item_id is required").WithDetail("field", "item_id")
	}
	if si.WarehouseID == "" {
		return apperror.NewValidation("warehouse_id is required").WithDetail("field", "warehouse_id")
	}
	if !si.Qty.IsPositive() {
		return apperror.NewValidation("qty must be positive").WithDetail("field", "qty")
	}
	return nil
}
