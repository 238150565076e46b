// Package adjustment provides the Stock Adjustment document, an
// approval-gated correction record. Adjustments are record-only: the stock
// balance ledger is not touched.
package adjustment

import (
	"context"
	"time"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/id"
	"loomstock/internal/core/types"
	"loomstock/internal/domain/approval"
)

// Reason explains why stock is being adjusted.
type Reason string

const (
	ReasonDamaged        Reason = "Damaged"
	ReasonExpired        Reason = "Expired"
	ReasonFound          Reason = "Found"
	ReasonLost           Reason = "Lost"
	ReasonReconciliation Reason = "Reconciliation"
)

func (r Reason) Valid() bool {
	switch r {
	case ReasonDamaged, ReasonExpired, ReasonFound, ReasonLost, ReasonReconciliation:
		return true
	}
	return false
}

// Adjustment records a signed stock correction awaiting approval.
type Adjustment struct {
	ID            id.ID          `db:"id" json:"id"`
	AdjustmentNo  string         `db:"adjustment_no" json:"adjustment_no"`
	ItemID        string         `db:"item_id" json:"item_id"`
	ItemName      string         `db:"item_name" json:"item_name"`
	WarehouseID   string         `db:"warehouse_id" json:"warehouse_id"`
	AdjustmentQty types.Quantity `db:"adjustment_qty" json:"adjustment_qty"`
	UOM           string         `db:"uom" json:"uom"`
	Reason        Reason         `db:"reason" json:"reason"`
	CreatedBy     string         `db:"created_by" json:"created_by"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	Remarks       *string        `db:"remarks" json:"remarks,omitempty"`

	approval.Fields
}

// Validate checks document invariants before persistence.
func (a *Adjustment) Validate(_ context.Context) error {
	if a.ItemID == "" {
		return apperror.NewValidation("item_id is required").WithDetail("field", "item_id")
	}
	if a.WarehouseID == "" {
		return apperror.NewValidation("warehouse_id is required").WithDetail("field", "warehouse_id")
	}
	if a.AdjustmentQty.IsZero() {
		return apperror.NewValidation("adjustment_qty must not be zero").WithDetail("field", "adjustment_qty")
	}
	if !a.Reason.Valid() {
		return apperror.NewValidation("invalid adjustment reason").
			WithDetail("field", "reason").
			WithDetail("value", string(a.Reason))
	}
	return nil
}
