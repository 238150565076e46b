// Package category provides the Item Category master. Categories group
// items by inventory type and carry defaults applied to new items.
package category

import (
	"context"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/entity"
)

// InventoryType classifies what kind of stock a category holds.
type InventoryType string

const (
	InventoryRaw        InventoryType = "RAW"
	InventoryConsumable InventoryType = "CONSUMABLE"
	InventoryFG         InventoryType = "FG"
)

func (t InventoryType) Valid() bool {
	switch t {
	case InventoryRaw, InventoryConsumable, InventoryFG:
		return true
	}
	return false
}

// Category represents an item category.
type Category struct {
	entity.Base

	Code           string        `db:"code" json:"code"`
	Name           string        `db:"name" json:"name"`
	ParentCategory *string       `db:"parent_category" json:"parent_category,omitempty"`
	InventoryType  InventoryType `db:"inventory_type" json:"inventory_type"`
	DefaultUOM     string        `db:"default_uom" json:"default_uom"`
	DefaultHSN     *string       `db:"default_hsn" json:"default_hsn,omitempty"`
	StockAccount   *string       `db:"stock_account" json:"stock_account,omitempty"`
	ExpenseAccount *string       `db:"expense_account" json:"expense_account,omitempty"`
	IncomeAccount  *string       `db:"income_account" json:"income_account,omitempty"`
	AllowPurchase  bool          `db:"allow_purchase" json:"allow_purchase"`
	AllowIssue     bool          `db:"allow_issue" json:"allow_issue"`
	Status         string        `db:"status" json:"status"`
}

// Validate implements entity.Validatable.
func (c *Category) Validate(_ context.Context) error {
	if c.Code == "" {
		return apperror.NewValidation("code is required").WithDetail("field", "code")
	}
	if c.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if !c.InventoryType.Valid() {
		return apperror.NewValidation("invalid inventory type").
			WithDetail("field", "inventory_type").
			WithDetail("value", string(c.InventoryType))
	}
	if c.DefaultUOM == "" {
		return apperror.NewValidation("default_uom is required").WithDetail("field", "default_uom")
	}
	return nil
}
