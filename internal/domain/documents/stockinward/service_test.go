package stockinward

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/id"
	"loomstock/internal/core/types"
	"loomstock/internal/domain/ledger"
)

type noopTxManager struct{}

func (noopTxManager) RunInTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type seqNumerator struct{ n int }

func (g *seqNumerator) Next(_ context.Context, seriesType string) (string, error) {
	g.n++
	return fmt.Sprintf("INW%04d", g.n), nil
}

type fakeRepo struct {
	docs map[id.ID]*StockInward
}

func (r *fakeRepo) Create(_ context.Context, doc *StockInward) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, docID id.ID) (*StockInward, error) {
	doc, ok := r.docs[docID]
	if !ok {
		return nil, apperror.NewNotFound("stock inward", docID.String())
	}
	return doc, nil
}

func (r *fakeRepo) List(_ context.Context) ([]*StockInward, error) {
	var out []*StockInward
	for _, doc := range r.docs {
		out = append(out, doc)
	}
	return out, nil
}

type fakeLedger struct {
	deltas  map[ledger.Key]types.Quantity
	denorms map[ledger.Key]ledger.Denorm
}

func (l *fakeLedger) ApplyDelta(_ context.Context, key ledger.Key, delta types.Quantity, denorm ledger.Denorm) (types.Quantity, error) {
	l.deltas[key] += delta
	l.denorms[key] = denorm
	return l.deltas[key], nil
}

type fixedWarehouses map[string]string

func (w fixedWarehouses) WarehouseName(_ context.Context, warehouseID string) (string, error) {
	name, ok := w[warehouseID]
	if !ok {
		return "", apperror.NewNotFound("warehouse", warehouseID)
	}
	return name, nil
}

func newTestService() (*Service, *fakeRepo, *fakeLedger) {
	repo := &fakeRepo{docs: make(map[id.ID]*StockInward)}
	ldg := &fakeLedger{deltas: make(map[ledger.Key]types.Quantity), denorms: make(map[ledger.Key]ledger.Denorm)}
	warehouses := fixedWarehouses{"wh-1": "Main Store"}
	return NewService(repo, ldg, warehouses, &seqNumerator{}, noopTxManager{}), repo, ldg
}

func validInward() *StockInward {
	return &StockInward{
		QCID:        "qc-1",
		ItemID:      "item-1",
		ItemName:    "Cotton Yarn",
		Qty:         types.NewQuantityFromFloat64(80),
		UOM:         "KG",
		WarehouseID: "wh-1",
		CreatedBy:   "store-user",
	}
}

func TestCreate_AddsToBalance(t *testing.T) {
	svc, repo, ldg := newTestService()

	doc := validInward()
	require.NoError(t, svc.Create(context.Background(), doc))

	key := ledger.Key{ItemID: "item-1", WarehouseID: "wh-1"}
	assert.Equal(t, 80.0, ldg.deltas[key].Float64())
	assert.Equal(t, "Main Store", ldg.denorms[key].WarehouseName)
	assert.Equal(t, "Cotton Yarn", ldg.denorms[key].ItemName)

	assert.Equal(t, "INW0001", doc.InwardNo)
	assert.Equal(t, "Completed", doc.Status)
	assert.Len(t, repo.docs, 1)
}

func TestCreate_UnknownWarehouse_EmptyDenormName(t *testing.T) {
	svc, _, ldg := newTestService()

	doc := validInward()
	doc.WarehouseID = "wh-ghost"
	require.NoError(t, svc.Create(context.Background(), doc))

	key := ledger.Key{ItemID: "item-1", WarehouseID: "wh-ghost"}
	assert.Equal(t, "", ldg.denorms[key].WarehouseName)
	assert.Equal(t, 80.0, ldg.deltas[key].Float64())
}

func TestCreate_MissingQC(t *testing.T) {
	svc, _, _ := newTestService()

	doc := validInward()
	doc.QCID = ""

	err := svc.Create(context.Background(), doc)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}
