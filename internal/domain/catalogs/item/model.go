// Package item provides the Item master, the central record every stock
// movement and purchase line refers to.
package item

import (
	"context"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/entity"
	"loomstock/internal/core/types"
)

// Item represents a stocked or purchased material.
type Item struct {
	entity.Base

	ItemCode            string         `db:"item_code" json:"item_code"`
	ItemName            string         `db:"item_name" json:"item_name"`
	CategoryID          string         `db:"category_id" json:"category_id"`
	UOM                 string         `db:"uom" json:"uom"`
	HSN                 *string        `db:"hsn" json:"hsn,omitempty"`
	PreferredSupplierID *string        `db:"preferred_supplier_id" json:"preferred_supplier_id,omitempty"`
	ReorderLevel        types.Quantity `db:"reorder_level" json:"reorder_level"`
	MinStock            types.Quantity `db:"min_stock" json:"min_stock"`
	MaxStock            types.Quantity `db:"max_stock" json:"max_stock"`
	StockAccount        *string        `db:"stock_account" json:"stock_account,omitempty"`
	ExpenseAccount      *string        `db:"expense_account" json:"expense_account,omitempty"`
	Barcode             *string        `db:"barcode" json:"barcode,omitempty"`
	Remarks             *string        `db:"remarks" json:"remarks,omitempty"`
	Status              string         `db:"status" json:"status"`
}

// Validate implements entity.Validatable.
func (i *Item) Validate(_ context.Context) error {
	if i.ItemCode == "" {
		return apperror.NewValidation("item_code is required").WithDetail("field", "item_code")
	}
	if i.ItemName == "" {
		return apperror.NewValidation("item_name is required").WithDetail("field", "item_name")
	}
	if i.CategoryID == "" {
		return apperror.NewValidation("category_id is required").WithDetail("field", "category_id")
	}
	if i.UOM == "" {
		return apperror.NewValidation("uom is required").WithDetail("field", "uom")
	}
	if i.ReorderLevel.IsNegative() || i.MinStock.IsNegative() || i.MaxStock.IsNegative() {
		return apperror.NewValidation("stock levels must not be negative")
	}
	if i.MaxStock.IsPositive() && i.MinStock > i.MaxStock {
		return apperror.NewValidation("min_stock must not exceed max_stock").
			WithDetail("min_stock", i.MinStock.String()).
			WithDetail("max_stock", i.MaxStock.String())
	}
	return nil
}
