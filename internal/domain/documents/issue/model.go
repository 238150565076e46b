// Package issue provides the Issue to Department document, the only outward
// movement that subtracts quantity from the stock balance ledger.
package issue

import (
	"context"
	"time"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/id"
	"loomstock/internal/core/types"
)

// Issue records goods handed to a department.
type Issue struct {
	ID            id.ID          `db:"id" json:"id"`
	IssueNo       string         `db:"issue_no" json:"issue_no"`
	Department    string         `db:"department" json:"department"`
	ItemID        string         `db:"item_id" json:"item_id"`
	ItemName      string         `db:"item_name" json:"item_name"`
	Qty           types.Quantity `db:"qty" json:"qty"`
	UOM           string         `db:"uom" json:"uom"`
	WarehouseID   string         `db:"warehouse_id" json:"warehouse_id"`
	WarehouseName string         `db:"warehouse_name" json:"warehouse_name"`
	IssuedBy      string         `db:"issued_by" json:"issued_by"`
	IssuedAt      time.Time      `db:"issued_at" json:"issued_at"`
	Remarks       *string        `db:"remarks" json:"remarks,omitempty"`
}

// Validate checks document invariants before persistence.
func (i *Issue) Validate(_ context.Context) error {
	if i.Department == "" {
		return apperror.NewValidation("department is required").WithDetail("field", "department")
	}
	if i.ItemID == "" {
		return apperror.NewValidation("item_id is required").WithDetail("field", "item_id")
	}
	if i.WarehouseID == "" {
		return apperror.NewValidation("warehouse_id is required").WithDetail("field", "warehouse_id")
	}
	if !i.Qty.IsPositive() {
		return apperror.NewValidation("qty must be positive").WithDetail("field", "qty")
	}
	return nil
}
