// Package warehouse provides the Warehouse master. Warehouses are the
// physical locations stock balances are tracked against.
package warehouse

import (
	"context"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/entity"
)

// Warehouse represents a storage location for goods.
type Warehouse struct {
	entity.Base

	WarehouseName     string   `db:"warehouse_name" json:"warehouse_name"`
	WarehouseType     string   `db:"warehouse_type" json:"warehouse_type"`
	Location          *string  `db:"location" json:"location,omitempty"`
	Capacity          *float64 `db:"capacity" json:"capacity,omitempty"`
	ParentWarehouseID *string  `db:"parent_warehouse_id" json:"parent_warehouse_id,omitempty"`
	Status            string   `db:"status" json:"status"`
}

// Validate implements entity.Validatable.
func (w *Warehouse) Validate(_ context.Context) error {
	if w.WarehouseName == "" {
		return apperror.NewValidation("warehouse_name is required").WithDetail("field", "warehouse_name")
	}
	if w.WarehouseType == "" {
		return apperror.NewValidation("warehouse_type is required").WithDetail("field", "warehouse_type")
	}
	if w.Capacity != nil && *w.Capacity < 0 {
		return apperror.NewValidation("capacity must not be negative").WithDetail("field", "capacity")
	}
	return nil
}
