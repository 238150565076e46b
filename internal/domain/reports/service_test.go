package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomstock/internal/core/types"
	"loomstock/internal/domain/documents/issue"
	"loomstock/internal/domain/documents/purchaseorder"
	"loomstock/internal/domain/ledger"
)

type fakeMasters struct {
	items     int64
	suppliers int64
	levels    []ItemLevel
}

func (f fakeMasters) CountActiveItems(context.Context) (int64, error)     { return f.items, nil }
func (f fakeMasters) CountActiveSuppliers(context.Context) (int64, error) { return f.suppliers, nil }
func (f fakeMasters) ListActiveItemLevels(context.Context) ([]ItemLevel, error) {
	return f.levels, nil
}

type fakeBalances []ledger.Balance

func (f fakeBalances) List(_ context.Context, filter ledger.Filter) ([]ledger.Balance, error) {
	var out []ledger.Balance
	for _, b := range f {
		if filter.ItemID != "" && b.ItemID != filter.ItemID {
			continue
		}
		if filter.WarehouseID != "" && b.WarehouseID != filter.WarehouseID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type fakeIssues []*issue.Issue

func (f fakeIssues) ListBetween(context.Context, *time.Time, *time.Time) ([]*issue.Issue, error) {
	return f, nil
}

type fakePOs struct {
	awaiting []*purchaseorder.PurchaseOrder
	pending  int64
}

func (f fakePOs) ListAwaitingAction(context.Context) ([]*purchaseorder.PurchaseOrder, error) {
	return f.awaiting, nil
}
func (f fakePOs) CountPending(context.Context) (int64, error) { return f.pending, nil }

func qty(v float64) types.Quantity { return types.NewQuantityFromFloat64(v) }

func TestDashboard_LowStockCountsAcrossWarehouses(t *testing.T) {
	masters := fakeMasters{
		items:     3,
		suppliers: 2,
		levels: []ItemLevel{
			{ItemID: "item-ok", ReorderLevel: qty(10)},
			{ItemID: "item-low", ReorderLevel: qty(50)},
			{ItemID: "item-zero", ReorderLevel: qty(5)},
		},
	}
	balances := fakeBalances{
		// item-ok: 30 total across two warehouses, above reorder level 10.
		{ItemID: "item-ok", WarehouseID: "wh-1", Qty: qty(20)},
		{ItemID: "item-ok", WarehouseID: "wh-2", Qty: qty(10)},
		// item-low: 40 total, at or below reorder level 50.
		{ItemID: "item-low", WarehouseID: "wh-1", Qty: qty(40)},
		// item-zero has no balance row at all.
	}
	svc := NewService(masters, balances, fakeIssues{}, fakePOs{pending: 4})

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalItems)
	assert.Equal(t, int64(2), stats.TotalSuppliers)
	assert.Equal(t, int64(2), stats.LowStockAlerts)
	assert.Equal(t, int64(4), stats.PendingPOs)
	assert.Equal(t, int64(4), stats.PendingApprovals)
}

func TestStockLedger_Filters(t *testing.T) {
	balances := fakeBalances{
		{ItemID: "item-1", WarehouseID: "wh-1", Qty: qty(5)},
		{ItemID: "item-1", WarehouseID: "wh-2", Qty: qty(7)},
		{ItemID: "item-2", WarehouseID: "wh-1", Qty: qty(9)},
	}
	svc := NewService(fakeMasters{}, balances, fakeIssues{}, fakePOs{})
	ctx := context.Background()

	all, err := svc.StockLedger(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byItem, err := svc.StockLedger(ctx, "item-1", "")
	require.NoError(t, err)
	assert.Len(t, byItem, 2)

	byBoth, err := svc.StockLedger(ctx, "item-1", "wh-2")
	require.NoError(t, err)
	require.Len(t, byBoth, 1)
	assert.Equal(t, 7.0, byBoth[0].Qty.Float64())
}
