// Package uom provides the Unit of Measure master.
package uom

import (
	"context"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/entity"
)

// UOM represents a unit of measure with optional conversion factors to
// other units (keyed by target unit name).
type UOM struct {
	entity.Base

	UOMName          string             `db:"uom_name" json:"uom_name"`
	UOMType          string             `db:"uom_type" json:"uom_type"`
	DecimalPrecision int                `db:"decimal_precision" json:"decimal_precision"`
	Conversions      map[string]float64 `db:"conversions" json:"conversions,omitempty"`
	Status           string             `db:"status" json:"status"`
}

// Validate implements entity.Validatable.
func (u *UOM) Validate(_ context.Context) error {
	if u.UOMName == "" {
		return apperror.NewValidation("uom_name is required").WithDetail("field", "uom_name")
	}
	if u.UOMType == "" {
		return apperror.NewValidation("uom_type is required").WithDetail("field", "uom_type")
	}
	if u.DecimalPrecision < 0 || u.DecimalPrecision > 4 {
		return apperror.NewValidation("decimal_precision must be between 0 and 4").
			WithDetail("field", "decimal_precision")
	}
	for target, factor := range u.Conversions {
		if factor <= 0 {
			return apperror.NewValidation("conversion factor must be positive").
				WithDetail("target_uom", target)
		}
	}
	return nil
}
