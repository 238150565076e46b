// Package ledger maintains the per-item, per-warehouse stock balance and is
// the only path through which document services may change quantities.
package ledger

import (
	"context"
	"time"

	"loomstock/internal/core/types"
)

// Balance is the current quantity for one (item, warehouse) pair.
// At most one row exists per pair; rows are created lazily on first inward
// movement and never deleted.
type Balance struct {
	ID            string         `db:"id" json:"id"`
	ItemID        string         `db:"item_id" json:"item_id"`
	ItemName      string         `db:"item_name" json:"item_name"`
	WarehouseID   string         `db:"warehouse_id" json:"warehouse_id"`
	WarehouseName string         `db:"warehouse_name" json:"warehouse_name"`
	Qty           types.Quantity `db:"qty" json:"qty"`
	UOM           string         `db:"uom" json:"uom"`
	LastUpdated   time.Time      `db:"last_updated" json:"last_updated"`
}

// Key identifies one balance row.
type Key struct {
	ItemID      string
	WarehouseID string
}

// Denorm carries the names stored alongside ids on first insert.
// No referential integrity is enforced here; callers look the names up.
type Denorm struct {
	ItemName      string
	WarehouseName string
	UOM           string
}

// Filter restricts balance listings.
type Filter struct {
	ItemID      string
	WarehouseID string
}

// Repository defines the atomic balance operations.
//
// ApplyDelta and DecrementIfAvailable must be single atomic statements
// (upsert-increment / conditional update), never read-then-write: concurrent
// mutations on the same key must not lose updates.
type Repository interface {
	// ApplyDelta upserts the balance row, adding delta to the current
	// quantity (creating the row with qty = delta when absent), and
	// returns the new quantity.
	ApplyDelta(ctx context.Context, key Key, delta types.Quantity, denorm Denorm) (types.Quantity, error)

	// DecrementIfAvailable subtracts qty only when the current balance is
	// at least qty. Returns the new quantity and whether the decrement
	// was applied.
	DecrementIfAvailable(ctx context.Context, key Key, qty types.Quantity) (types.Quantity, bool, error)

	// Get returns the balance row, or nil when absent.
	Get(ctx context.Context, key Key) (*Balance, error)

	// List returns balances matching the filter.
	List(ctx context.Context, filter Filter) ([]Balance, error)
}
