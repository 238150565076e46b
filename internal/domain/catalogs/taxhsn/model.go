// Package taxhsn provides the Tax/HSN master with GST rate splits.
package taxhsn

import (
	"context"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/entity"
	"loomstock/internal/core/types"
)

// TaxHSN represents an HSN code with its tax rates in percent.
type TaxHSN struct {
	entity.Base

	HSNCode     string      `db:"hsn_code" json:"hsn_code"`
	Description string      `db:"description" json:"description"`
	CGSTRate    types.Money `db:"cgst_rate" json:"cgst_rate"`
	SGSTRate    types.Money `db:"sgst_rate" json:"sgst_rate"`
	IGSTRate    types.Money `db:"igst_rate" json:"igst_rate"`
	Status      string      `db:"status" json:"status"`
}

// Validate implements entity.Validatable.
func (t *TaxHSN) Validate(_ context.Context) error {
	if t.HSNCode == "" {
		return apperror.NewValidation("hsn_code is required").WithDetail("field", "hsn_code")
	}
	if t.Description == "" {
		return apperror.NewValidation("description is required").WithDetail("field", "description")
	}
	for _, rate := range []types.Money{t.CGSTRate, t.SGSTRate, t.IGSTRate} {
		if rate.IsNegative() {
			return apperror.NewValidation("tax rates must not be negative")
		}
	}
	return nil
}
