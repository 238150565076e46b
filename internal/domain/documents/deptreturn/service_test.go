package deptreturn

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
	return fmt.Sprintf("%s%04d", seriesType, g.n), nil
}

type fakeRepo struct {
	docs map[id.ID]*Return
}

func (r *fakeRepo) Create(_ context.Context, doc *Return) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, docID id.ID) (*Return, error) {
	doc, ok := r.docs[docID]
	if !ok {
		return nil, apperror.NewNotFound("return", docID.String())
	}
	return doc, nil
}

func (r *fakeRepo) List(_ context.Context) ([]*Return, error) {
	var out []*Return
	for _, doc := range r.docs {
		out = append(out, doc)
	}
	return out, nil
}

type fakeLedger struct {
	deltas map[ledger.Key]types.Quantity
}

func (l *fakeLedger) ApplyDelta(_ context.Context, key ledger.Key, delta types.Quantity, _ ledger.Denorm) (types.Quantity, error) {
	l.deltas[key] += delta
	return l.deltas[key], nil
}

func newTestService() (*Service, *fakeRepo, *fakeLedger) {
	repo := &fakeRepo{docs: make(map[id.ID]*Return)}
	ldg := &fakeLedger{deltas: make(map[ledger.Key]types.Quantity)}
	return NewService(repo, ldg, &seqNumerator{}, noopTxManager{}), repo, ldg
}

func validReturn(condition string) *Return {
	return &Return{
		Department:  "Weaving",
		ItemID:      "item-1",
		ItemName:    "Cotton Yarn",
		QtyReturned: types.NewQuantityFromFloat64(15),
		UOM:         "KG",
		WarehouseID: "wh-1",
		Condition:   condition,
		ReturnedBy:  "store-user",
	}
}

func TestCreate_GoodCondition_Restocks(t *testing.T) {
	svc, repo, ldg := newTestService()

	doc := validReturn(ConditionGood)
	require.NoError(t, svc.Create(context.Background(), doc))

	key := ledger.Key{ItemID: "item-1", WarehouseID: "wh-1"}
	assert.Equal(t, 15.0, ldg.deltas[key].Float64())
	assert.Equal(t, "RETURN0001", doc.ReturnNo)
	assert.Len(t, repo.docs, 1)
}

func TestCreate_DamagedCondition_NoLedgerMovement(t *testing.T) {
	svc, repo, ldg := newTestService()

	doc := validReturn("Damaged")
	require.NoError(t, svc.Create(context.Background(), doc))

	assert.Empty(t, ldg.deltas)
	assert.Len(t, repo.docs, 1)
}

func TestCreate_DefaultConditionIsGood(t *testing.T) {
	svc, _, ldg := newTestService()

	doc := validReturn("")
	require.NoError(t, svc.Create(context.Background(), doc))

	assert.Equal(t, ConditionGood, doc.Condition)
	key := ledger.Key{ItemID: "item-1", WarehouseID: "wh-1"}
	assert.Equal(t, 15.0, ldg.deltas[key].Float64())
}

func TestCreate_NonPositiveQty(t *testing.T) {
	svc, _, _ := newTestService()

	doc := validReturn(ConditionGood)
	doc.QtyReturned = 0

	err := svc.Create(context.Background(), doc)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}
