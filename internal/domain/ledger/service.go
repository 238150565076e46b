package ledger

import (
	"context"
	"fmt"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/types"
	"loomstock/pkg/logger"
)

// Service provides business operations on the stock balance ledger.
type Service struct {
	repo Repository
}

// NewService creates a ledger service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ApplyDelta records a signed quantity movement against a balance.
// Negative deltas are accepted without flooring; only Issue performs an
// availability check (see Issue).
func (s *Service) ApplyDelta(ctx context.Context, key Key, delta types.Quantity, denorm Denorm) (types.Quantity, error) {
	if key.ItemID == "" || key.WarehouseID == "" {
		return 0, apperror.NewValidation("item_id and warehouse_id are required")
	}

	newQty, err := s.repo.ApplyDelta(ctx, key, delta, denorm)
	if err != nil {
		return 0, fmt.Errorf("apply delta: %w", err)
	}

	logger.Info(ctx, "stock balance updated",
		"item_id", key.ItemID,
		"warehouse_id", key.WarehouseID,
		"delta", delta.Float64(),
		"new_qty", newQty.Float64(),
	)
	return newQty, nil
}

// Issue atomically decrements the balance, failing with an
// insufficient-stock error when the available quantity is below qty.
// The balance is left untouched on failure.
func (s *Service) Issue(ctx context.Context, key Key, qty types.Quantity) (types.Quantity, error) {
	if !qty.IsPositive() {
		return 0, apperror.NewValidation("issue quantity must be positive")
	}

	newQty, applied, err := s.repo.DecrementIfAvailable(ctx, key, qty)
	if err != nil {
		return 0, fmt.Errorf("decrement balance: %w", err)
	}
	if !applied {
		available, err := s.GetBalance(ctx, key.ItemID, key.WarehouseID)
		if err != nil {
			available = 0
		}
		return 0, apperror.NewInsufficientStock(key.ItemID, qty.Float64(), available.Float64())
	}

	logger.Info(ctx, "stock issued",
		"item_id", key.ItemID,
		"warehouse_id", key.WarehouseID,
		"qty", qty.Float64(),
		"new_qty", newQty.Float64(),
	)
	return newQty, nil
}

// GetBalance returns the current quantity for a pair; absence means zero.
func (s *Service) GetBalance(ctx context.Context, itemID, warehouseID string) (types.Quantity, error) {
	b, err := s.repo.Get(ctx, Key{ItemID: itemID, WarehouseID: warehouseID})
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	if b == nil {
		return 0, nil
	}
	return b.Qty, nil
}

// List returns balance rows for the stock-balance endpoint and reports.
func (s *Service) List(ctx context.Context, filter Filter) ([]Balance, error) {
	return s.repo.List(ctx, filter)
}
