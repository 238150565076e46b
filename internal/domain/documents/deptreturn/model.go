// Package deptreturn provides the Return from Department document. Goods
// returned in Good condition go back onto the stock balance; Damaged and
// other conditions are recorded without a ledger movement.
package deptreturn

import (
	"context"
	"time"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/id"
	"loomstock/internal/core/types"
)

// ConditionGood is the only condition that restocks the returned quantity.
const ConditionGood = "Good"

// Return records goods coming back from a department.
type Return struct {
	ID          id.ID          `db:"id" json:"id"`
	ReturnNo    string         `db:"return_no" json:"return_no"`
	IssueID     *string        `db:"issue_id" json:"issue_id,omitempty"`
	Department  string         `db:"department" json:"department"`
	ItemID      string         `db:"item_id" json:"item_id"`
	ItemName    string         `db:"item_name" json:"item_name"`
	QtyReturned types.Quantity `db:"qty_returned" json:"qty_returned"`
	UOM         string         `db:"uom" json:"uom"`
	WarehouseID string         `db:"warehouse_id" json:"warehouse_id"`
	Condition   string         `db:"condition" json:"condition"`
	ReturnedBy  string         `db:"returned_by" json:"returned_by"`
	ReturnedAt  time.Time      `db:"returned_at" json:"returned_at"`
	Remarks     *string        `db:"remarks" json:"remarks,omitempty"`
}

// Restocks reports whether this return adds quantity back to the ledger.
func (r *Return) Restocks() bool {
	return r.Condition == ConditionGood
}

// Validate checks document invariants before persistence.
func (r *Return) Validate(_ context.Context) error {
	if r.Department == "" {
		return apperror.NewValidation("department is required").WithDetail("field", "department")
	}
	if r.ItemID == "" {
		return apperror.NewValidation("item_id is required").WithDetail("field", "item_id")
	}
	if r.WarehouseID == "" {
		return apperror.NewValidation("warehouse_id is required").WithDetail("field", "warehouse_id")
	}
	if !r.QtyReturned.IsPositive() {
		return apperror.NewValidation("qty_returned must be positive").WithDetail("field", "qty_returned")
	}
	return nil
}
