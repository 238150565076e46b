// Package grn provides the Goods Receipt Note document. A GRN records goods
// arriving against a purchase order and waits for quality inspection before
// stock can be moved inward.
package grn

import (
	"context"
	"time"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/id"
	"loomstock/internal/core/types"
)

// GRN statuses. Pending QC is the creation state; quality checks move the
// document to QC Passed or QC Failed.
const (
	StatusPendingQC = "Pending QC"
	StatusQCPassed  = "QC Passed"
	StatusQCFailed  = "QC Failed"
)

// GRN is a goods receipt note for one item line.
type GRN struct {
	ID               id.ID          `db:"id" json:"id"`
	GRNNo            string         `db:"grn_no" json:"grn_no"`
	POID             string         `db:"po_id" json:"po_id"`
	PONo             string         `db:"po_no" json:"po_no"`
	SupplierID       string         `db:"supplier_id" json:"supplier_id"`
	SupplierName     string         `db:"supplier_name" json:"supplier_name"`
	ItemID           string         `db:"item_id" json:"item_id"`
	ItemName         string         `db:"item_name" json:"item_name"`
	Qty              types.Quantity `db:"qty" json:"qty"`
	UOM              string         `db:"uom" json:"uom"`
	WarehouseID      string         `db:"warehouse_id" json:"warehouse_id"`
	InvoiceNo        *string        `db:"invoice_no" json:"invoice_no,omitempty"`
	InvoiceDate      *time.Time     `db:"invoice_date" json:"invoice_date,omitempty"`
	TransportDetails *string        `db:"transport_details" json:"transport_details,omitempty"`
	Status           string         `db:"status" json:"status"`
	ReceivedBy       string         `db:"received_by" json:"received_by"`
	ReceivedAt       time.Time      `db:"received_at" json:"received_at"`
}

// Validate checks document invariants before persistence.
func (g *GRN) Validate(_ context.Context) error {
	if g.POID == "" {
		return apperror.NewValidation("po_id is required").WithDetail("field", "po_id")
	}
	if g.ItemID == "" {
		return apperror.NewValidation("item_id is required").WithDetail("field", "item_id")
	}
	if g.WarehouseID == "" {
		return apperror.NewValidation("warehouse_id is required").WithDetail("field", "warehouse_id")
	}
	if !g.Qty.IsPositive() {
		return apperror.NewValidation("qty must be positive").WithDetail("field", "qty")
	}
	return nil
}
