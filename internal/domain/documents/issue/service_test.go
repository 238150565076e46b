package issue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/id"
	"loomstock/internal/core/types"
	"loomstock/internal/domain/ledger"
)

// txRecorder mimics transactional rollback: when fn fails, creations inside
// the callback are discarded.
type txRecorder struct {
	repo *fakeRepo
}

func (t txRecorder) RunInTransaction(ctx context.Context, fn func(context.Context) error) error {
	snapshot := make(map[id.ID]*Issue, len(t.repo.docs))
	for k, v := range t.repo.docs {
		snapshot[k] = v
	}
	if err := fn(ctx); err != nil {
		t.repo.docs = snapshot
		return err
	}
	return nil
}

type seqNumerator struct{ n int }

func (g *seqNumerator) Next(_ context.Context, seriesType string) (string, error) {
	g.n++
	return fmt.Sprintf("%s%04d", seriesType, g.n), nil
}

type fakeRepo struct {
	docs map[id.ID]*Issue
}

func (r *fakeRepo) Create(_ context.Context, doc *Issue) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, docID id.ID) (*Issue, error) {
	doc, ok := r.docs[docID]
	if !ok {
		return nil, apperror.NewNotFound("issue", docID.String())
	}
	return doc, nil
}

func (r *fakeRepo) List(_ context.Context) ([]*Issue, error) {
	var out []*Issue
	for _, doc := range r.docs {
		out = append(out, doc)
	}
	return out, nil
}

func (r *fakeRepo) ListBetween(_ context.Context, from, to *time.Time) ([]*Issue, error) {
	var out []*Issue
	for _, doc := range r.docs {
		if from != nil && doc.IssuedAt.Before(*from) {
			continue
		}
		if to != nil && !doc.IssuedAt.Before(*to) {
			continue
		}
		out = append(out, doc)
	}
	return out, nil
}

type fakeLedger struct {
	balances map[ledger.Key]types.Quantity
}

func (l *fakeLedger) Issue(_ context.Context, key ledger.Key, qty types.Quantity) (types.Quantity, error) {
	bal := l.balances[key]
	if bal < qty {
		return 0, apperror.NewInsufficientStock(key.ItemID, qty.Float64(), bal.Float64())
	}
	l.balances[key] = bal - qty
	return l.balances[key], nil
}

func newTestService(initial map[ledger.Key]types.Quantity) (*Service, *fakeRepo, *fakeLedger) {
	repo := &fakeRepo{docs: make(map[id.ID]*Issue)}
	ldg := &fakeLedger{balances: initial}
	svc := NewService(repo, ldg, &seqNumerator{}, txRecorder{repo: repo})
	return svc, repo, ldg
}

func validIssue(qty float64) *Issue {
	return &Issue{
		Department:  "Weaving",
		ItemID:      "item-1",
		ItemName:    "Cotton Yarn",
		Qty:         types.NewQuantityFromFloat64(qty),
		UOM:         "KG",
		WarehouseID: "wh-1",
		IssuedBy:    "store-user",
	}
}

func TestCreate_DecrementsBalance(t *testing.T) {
	key := ledger.Key{ItemID: "item-1", WarehouseID: "wh-1"}
	svc, repo, ldg := newTestService(map[ledger.Key]types.Quantity{
		key: types.NewQuantityFromFloat64(100),
	})

	doc := validIssue(30)
	require.NoError(t, svc.Create(context.Background(), doc))

	assert.Equal(t, 70.0, ldg.balances[key].Float64())
	assert.Equal(t, "ISSUE0001", doc.IssueNo)
	assert.Len(t, repo.docs, 1)
}

func TestCreate_InsufficientStock(t *testing.T) {
	key := ledger.Key{ItemID: "item-1", WarehouseID: "wh-1"}
	svc, repo, ldg := newTestService(map[ledger.Key]types.Quantity{
		key: types.NewQuantityFromFloat64(10),
	})

	err := svc.Create(context.Background(), validIssue(25))
	require.Error(t, err)
	assert.True(t, apperror.IsInsufficientStock(err))

	// Nothing persisted, balance unchanged.
	assert.Empty(t, repo.docs)
	assert.Equal(t, 10.0, ldg.balances[key].Float64())
}

func TestCreate_NoBalanceRow(t *testing.T) {
	svc, repo, _ := newTestService(map[ledger.Key]types.Quantity{})

	err := svc.Create(context.Background(), validIssue(1))
	require.Error(t, err)
	assert.True(t, apperror.IsInsufficientStock(err))
	assert.Empty(t, repo.docs)
}

func TestCreate_ValidationBeforeLedger(t *testing.T) {
	svc, _, _ := newTestService(map[ledger.Key]types.Quantity{})

	doc := validIssue(5)
	doc.Department = ""

	err := svc.Create(context.Background(), doc)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestListBetween(t *testing.T) {
	key := ledger.Key{ItemID: "item-1", WarehouseID: "wh-1"}
	svc, _, _ := newTestService(map[ledger.Key]types.Quantity{
		key: types.NewQuantityFromFloat64(100),
	})
	ctx := context.Background()

	early := validIssue(1)
	early.IssuedAt = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	late := validIssue(1)
	late.IssuedAt = time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.Create(ctx, early))
	require.NoError(t, svc.Create(ctx, late))

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	got, err := svc.ListBetween(ctx, &from, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, late.IssueNo, got[0].IssueNo)
}
