// Package purchaseindent provides the Purchase Indent document, a
// department's request for materials that precedes a purchase order.
package purchaseindent

import (
	"context"
	"time"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/id"
	"loomstock/internal/core/types"
	"loomstock/internal/domain/approval"
)

// Item is one requested material line, stored as JSONB with the indent.
type Item struct {
	ItemID       string         `json:"item_id"`
	ItemName     string         `json:"item_name"`
	RequiredQty  types.Quantity `json:"required_qty"`
	UOM          string         `json:"uom"`
	RequiredDate time.Time      `json:"required_date"`
	Remarks      *string        `json:"remarks,omitempty"`
}

// Indent is a material request raised by a department.
type Indent struct {
	ID          id.ID     `db:"id" json:"id"`
	IndentNo    string    `db:"indent_no" json:"indent_no"`
	Department  string    `db:"department" json:"department"`
	RequestedBy string    `db:"requested_by" json:"requested_by"`
	Items       []Item    `db:"items" json:"items"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	Remarks     *string   `db:"remarks" json:"remarks,omitempty"`

	approval.Fields
}

// Validate checks document invariants before persistence.
func (in *Indent) Validate(_ context.Context) error {
	if in.Department == "" {
		return apperror.NewValidation("department is required").WithDetail("field", "department")
	}
	if len(in.Items) == 0 {
		return apperror.NewValidation("indent requires at least one item")
	}
	for idx, line := range in.Items {
		if line.ItemID == "" {
			return apperror.NewValidation("item_id is required on all lines").
				WithDetail("line", idx)
		}
		if !line.RequiredQty.IsPositive() {
			return apperror.NewValidation("required_qty must be positive").
				WithDetail("line", idx).
				WithDetail("item_id", line.ItemID)
		}
	}
	return nil
}
