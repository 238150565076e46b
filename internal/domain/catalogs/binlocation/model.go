// Package binlocation provides the BIN Location master, storage bins
// inside a warehouse.
package binlocation

import (
	"context"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/entity"
)

// BinLocation represents a bin inside a warehouse.
type BinLocation struct {
	entity.Base

	BinCode     string  `db:"bin_code" json:"bin_code"`
	BinName     string  `db:"bin_name" json:"bin_name"`
	WarehouseID string  `db:"warehouse_id" json:"warehouse_id"`
	Aisle       *string `db:"aisle" json:"aisle,omitempty"`
	Rack        *string `db:"rack" json:"rack,omitempty"`
	Level       *string `db:"level" json:"level,omitempty"`
	Status      string  `db:"status" json:"status"`
}

// Validate implements entity.Validatable.
func (b *BinLocation) Validate(_ context.Context) error {
	if b.BinCode == "" {
		return apperror.NewValidation("bin_code is required").WithDetail("field", "bin_code")
	}
	if b.BinName == "" {
		return apperror.NewValidation("bin_name is required").WithDetail("field", "bin_name")
	}
	if b.WarehouseID == "" {
		return apperror.NewValidation("warehouse_id is required").WithDetail("field", "warehouse_id")
	}
	return nil
}
