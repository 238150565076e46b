package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/types"
)

// memRepo mimics the atomic upsert / conditional-decrement semantics in memory.
type memRepo struct {
	mu       sync.Mutex
	balances map[Key]*Balance
}

func newMemRepo() *memRepo {
	return &memRepo{balances: make(map[Key]*Balance)}
}

func (r *memRepo) ApplyDelta(_ context.Context, key Key, delta types.Quantity, denorm Denorm) (types.Quantity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.balances[key]
	if !ok {
		b = &Balance{
			ItemID:        key.ItemID,
			ItemName:      denorm.ItemName,
			WarehouseID:   key.WarehouseID,
			WarehouseName: denorm.WarehouseName,
			UOM:           denorm.UOM,
		}
		r.balances[key] = b
	}
	b.Qty += delta
	b.LastUpdated = time.Now()
	return b.Qty, nil
}

func (r *memRepo) DecrementIfAvailable(_ context.Context, key Key, qty types.Quantity) (types.Quantity, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.balances[key]
	if !ok || b.Qty < qty {
		return 0, false, nil
	}
	b.Qty -= qty
	b.LastUpdated = time.Now()
	return b.Qty, true, nil
}

func (r *memRepo) Get(_ context.Context, key Key) (*Balance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.balances[key]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *memRepo) List(_ context.Context, filter Filter) ([]Balance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Balance
	for _, b := range r.balances {
		if filter.ItemID != "" && b.ItemID != filter.ItemID {
			continue
		}
		if filter.WarehouseID != "" && b.WarehouseID != filter.WarehouseID {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func TestService_ApplyDelta_CreatesBalance(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()
	key := Key{ItemID: "item-1", WarehouseID: "wh-1"}

	qty, err := svc.ApplyDelta(ctx, key, types.NewQuantityFromFloat64(100), Denorm{ItemName: "Cotton Yarn", WarehouseName: "Main Store", UOM: "KG"})
	require.NoError(t, err)
	assert.Equal(t, 100.0, qty.Float64())
}

func TestService_ApplyDelta_Accumulates(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()
	key := Key{ItemID: "item-1", WarehouseID: "wh-1"}

	_, err := svc.ApplyDelta(ctx, key, types.NewQuantityFromFloat64(100), Denorm{})
	require.NoError(t, err)
	qty, err := svc.ApplyDelta(ctx, key, types.NewQuantityFromFloat64(25.5), Denorm{})
	require.NoError(t, err)
	assert.Equal(t, 125.5, qty.Float64())
}

func TestService_ApplyDelta_SeparateWarehouses(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	_, err := svc.ApplyDelta(ctx, Key{ItemID: "item-1", WarehouseID: "wh-1"}, types.NewQuantityFromFloat64(10), Denorm{})
	require.NoError(t, err)
	_, err = svc.ApplyDelta(ctx, Key{ItemID: "item-1", WarehouseID: "wh-2"}, types.NewQuantityFromFloat64(40), Denorm{})
	require.NoError(t, err)

	b1, err := svc.GetBalance(ctx, "item-1", "wh-1")
	require.NoError(t, err)
	b2, err := svc.GetBalance(ctx, "item-1", "wh-2")
	require.NoError(t, err)
	assert.Equal(t, 10.0, b1.Float64())
	assert.Equal(t, 40.0, b2.Float64())
}

func TestService_ApplyDelta_MissingKey(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.ApplyDelta(context.Background(), Key{ItemID: "item-1"}, types.NewQuantityFromFloat64(1), Denorm{})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestService_Issue_DecrementsBalance(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()
	key := Key{ItemID: "item-1", WarehouseID: "wh-1"}

	_, err := svc.ApplyDelta(ctx, key, types.NewQuantityFromFloat64(100), Denorm{})
	require.NoError(t, err)

	qty, err := svc.Issue(ctx, key, types.NewQuantityFromFloat64(30))
	require.NoError(t, err)
	assert.Equal(t, 70.0, qty.Float64())
}

func TestService_Issue_ExactBalanceToZero(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()
	key := Key{ItemID: "item-1", WarehouseID: "wh-1"}

	_, err := svc.ApplyDelta(ctx, key, types.NewQuantityFromFloat64(50), Denorm{})
	require.NoError(t, err)

	qty, err := svc.Issue(ctx, key, types.NewQuantityFromFloat64(50))
	require.NoError(t, err)
	assert.Equal(t, 0.0, qty.Float64())
}

func TestService_Issue_InsufficientStock(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()
	key := Key{ItemID: "item-1", WarehouseID: "wh-1"}

	_, err := svc.ApplyDelta(ctx, key, types.NewQuantityFromFloat64(10), Denorm{})
	require.NoError(t, err)

	_, err = svc.Issue(ctx, key, types.NewQuantityFromFloat64(11))
	require.Error(t, err)
	assert.True(t, apperror.IsInsufficientStock(err))

	// Balance untouched after the failed issue.
	qty, err := svc.GetBalance(ctx, "item-1", "wh-1")
	require.NoError(t, err)
	assert.Equal(t, 10.0, qty.Float64())
}

func TestService_Issue_NoBalanceRow(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.Issue(context.Background(), Key{ItemID: "ghost", WarehouseID: "wh-1"}, types.NewQuantityFromFloat64(1))
	require.Error(t, err)
	assert.True(t, apperror.IsInsufficientStock(err))
}

func TestService_Issue_NonPositiveQty(t *testing.T) {
	svc := NewService(newMemRepo())

	for _, qty := range []float64{0, -5} {
		_, err := svc.Issue(context.Background(), Key{ItemID: "item-1", WarehouseID: "wh-1"}, types.NewQuantityFromFloat64(qty))
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	}
}

func TestService_GetBalance_AbsentIsZero(t *testing.T) {
	svc := NewService(newMemRepo())

	qty, err := svc.GetBalance(context.Background(), "nope", "wh-1")
	require.NoError(t, err)
	assert.True(t, qty.IsZero())
}

func TestService_ConcurrentDeltas(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()
	key := Key{ItemID: "item-1", WarehouseID: "wh-1"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ApplyDelta(ctx, key, types.NewQuantityFromFloat64(2), Denorm{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	qty, err := svc.GetBalance(ctx, "item-1", "wh-1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, qty.Float64())
}
