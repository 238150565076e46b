// Package purchaseorder provides the Purchase Order document with line
// items, tax totals and the approval lifecycle.
package purchaseorder

import (
	"context"
	"time"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/id"
	"loomstock/internal/core/types"
	"loomstock/internal/domain/approval"
)

// Item is one purchase order line. Lines are stored as a JSONB document
// alongside the order, not as a separate table.
type Item struct {
	ItemID    string         `json:"item_id"`
	ItemName  string         `json:"item_name"`
	Qty       types.Quantity `json:"qty"`
	UOM       string         `json:"uom"`
	Rate      types.Money    `json:"rate"`
	Amount    types.Money    `json:"amount"`
	TaxRate   types.Money    `json:"tax_rate"`
	TaxAmount types.Money    `json:"tax_amount"`
	Total     types.Money    `json:"total"`
}

// PurchaseOrder is an order placed with a supplier.
type PurchaseOrder struct {
	ID           id.ID       `db:"id" json:"id"`
	PONo         string      `db:"po_no" json:"po_no"`
	IndentID     *string     `db:"indent_id" json:"indent_id,omitempty"`
	SupplierID   string      `db:"supplier_id" json:"supplier_id"`
	SupplierName string      `db:"supplier_name" json:"supplier_name"`
	Items        []Item      `db:"items" json:"items"`
	Subtotal     types.Money `db:"subtotal" json:"subtotal"`
	TaxAmount    types.Money `db:"tax_amount" json:"tax_amount"`
	TotalAmount  types.Money `db:"total_amount" json:"total_amount"`
	Terms        *string     `db:"terms" json:"terms,omitempty"`
	CreatedBy    string      `db:"created_by" json:"created_by"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
	Remarks      *string     `db:"remarks" json:"remarks,omitempty"`

	approval.Fields
}

// ComputeTotals derives line amounts and order totals from qty, rate and
// tax rate. Called before validation so clients may send lines with only
// the pricing inputs filled in.
func (po *PurchaseOrder) ComputeTotals() {
	subtotal := types.ZeroMoney()
	taxTotal := types.ZeroMoney()
	for i := range po.Items {
		line := &po.Items[i]
		if line.Amount.IsZero() {
			line.Amount = line.Rate.Mul(types.NewMoney(line.Qty.Float64()))
		}
		if line.TaxAmount.IsZero() && !line.TaxRate.IsZero() {
			line.TaxAmount = line.Amount.Mul(line.TaxRate).Div(types.NewMoney(100))
		}
		if line.Total.IsZero() {
			line.Total = line.Amount.Add(line.TaxAmount)
		}
		subtotal = subtotal.Add(line.Amount)
		taxTotal = taxTotal.Add(line.TaxAmount)
	}
	if po.Subtotal.IsZero() {
		po.Subtotal = subtotal
	}
	if po.TaxAmount.IsZero() {
		po.TaxAmount = taxTotal
	}
	if po.TotalAmount.IsZero() {
		po.TotalAmount = po.Subtotal.Add(po.TaxAmount)
	}
}

// Validate checks document invariants before persistence.
func (po *PurchaseOrder) Validate(_ context.Context) error {
	if po.SupplierID == "" {
		return apperror.NewValidation("supplier_id is required").WithDetail("field", "supplier_id")
	}
	if len(po.Items) == 0 {
		return apperror.NewValidation("purchase order requires at least one item")
	}
	for idx, line := range po.Items {
		if line.ItemID == "" {
			return apperror.NewValidation("item_id is required on all lines").
				WithDetail("line", idx)
		}
		if !line.Qty.IsPositive() {
			return apperror.NewValidation("line qty must be positive").
				WithDetail("line", idx).
				WithDetail("item_id", line.ItemID)
		}
		if line.Rate.IsNegative() {
			return apperror.NewValidation("line rate must not be negative").
				WithDetail("line", idx)
		}
	}
	if po.TotalAmount.IsNegative() {
		return apperror.NewValidation("total_amount must not be negative")
	}
	return nil
}
