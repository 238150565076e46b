// Package reports provides read-only reporting across documents and the
// stock balance ledger, plus the dashboard summary.
package reports

import (
	"context"
	"fmt"
	"time"

	"loomstock/internal/core/types"
	"loomstock/internal/domain/documents/issue"
	"loomstock/internal/domain/documents/purchaseorder"
	"loomstock/internal/domain/ledger"
)

// DashboardStats is the landing page summary.
type DashboardStats struct {
	TotalItems       int64 `json:"total_items"`
	TotalSuppliers   int64 `json:"total_suppliers"`
	LowStockAlerts   int64 `json:"low_stock_alerts"`
	PendingPOs       int64 `json:"pending_pos"`
	PendingApprovals int64 `json:"pending_approvals"`
}

// ItemLevel pairs an item with its reorder threshold.
type ItemLevel struct {
	ItemID       string         `db:"id"`
	ReorderLevel types.Quantity `db:"reorder_level"`
}

// MastersStats supplies the master-data counts behind the dashboard.
type MastersStats interface {
	CountActiveItems(ctx context.Context) (int64, error)
	CountActiveSuppliers(ctx context.Context) (int64, error)
	ListActiveItemLevels(ctx context.Context) ([]ItemLevel, error)
}

// BalanceLister is the slice of the ledger service reports need.
type BalanceLister interface {
	List(ctx context.Context, filter ledger.Filter) ([]ledger.Balance, error)
}

// IssueLister lists issue documents for the issue register.
type IssueLister interface {
	ListBetween(ctx context.Context, from, to *time.Time) ([]*issue.Issue, error)
}

// POLister answers pending purchase order questions.
type POLister interface {
	ListAwaitingAction(ctx context.Context) ([]*purchaseorder.PurchaseOrder, error)
	CountPending(ctx context.Context) (int64, error)
}

// Service assembles reports from the domain services.
type Service struct {
	masters  MastersStats
	balances BalanceLister
	issues   IssueLister
	pos      POLister
}

// NewService creates a reports service.
func NewService(masters MastersStats, balances BalanceLister, issues IssueLister, pos POLister) *Service {
	return &Service{masters: masters, balances: balances, issues: issues, pos: pos}
}

// StockLedger returns balance rows, optionally narrowed to one item or
// warehouse.
func (s *Service) StockLedger(ctx context.Context, itemID, warehouseID string) ([]ledger.Balance, error) {
	return s.balances.List(ctx, ledger.Filter{ItemID: itemID, WarehouseID: warehouseID})
}

// IssueRegister returns issue documents within an optional date range.
func (s *Service) IssueRegister(ctx context.Context, from, to *time.Time) ([]*issue.Issue, error) {
	return s.issues.ListBetween(ctx, from, to)
}

// PendingPOs returns purchase orders still awaiting action (Pending or
// Draft).
func (s *Service) PendingPOs(ctx context.Context) ([]*purchaseorder.PurchaseOrder, error) {
	return s.pos.ListAwaitingAction(ctx)
}

// Dashboard computes the summary counters. An item is a low stock alert
// when its total quantity across warehouses is at or below its reorder
// level, including items with no stock at all.
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalItems, err = s.masters.CountActiveItems(ctx); err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}
	if stats.TotalSuppliers, err = s.masters.CountActiveSuppliers(ctx); err != nil {
		return nil, fmt.Errorf("count suppliers: %w", err)
	}
	if stats.PendingPOs, err = s.pos.CountPending(ctx); err != nil {
		return nil, fmt.Errorf("count pending pos: %w", err)
	}
	stats.PendingApprovals = stats.PendingPOs

	lowStock, err := s.countLowStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockAlerts = lowStock

	return stats, nil
}

func (s *Service) countLowStock(ctx context.Context) (int64, error) {
	levels, err := s.masters.ListActiveItemLevels(ctx)
	if err != nil {
		return 0, fmt.Errorf("list item levels: %w", err)
	}

	balances, err := s.balances.List(ctx, ledger.Filter{})
	if err != nil {
		return 0, fmt.Errorf("list balances: %w", err)
	}
	totals := make(map[string]types.Quantity, len(balances))
	for _, b := range balances {
		totals[b.ItemID] += b.Qty
	}

	var count int64
	for _, lvl := range levels {
		if totals[lvl.ItemID] <= lvl.ReorderLevel {
			count++
		}
	}
	return count, nil
}
