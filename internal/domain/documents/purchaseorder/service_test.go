package purchaseorder

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomstock/internal/core/apperror"
	corecontext "loomstock/internal/core/context"
	"loomstock/internal/core/id"
	"loomstock/internal/core/types"
	"loomstock/internal/domain/approval"
)

type noopTxManager struct{}

func (noopTxManager) RunInTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type seqNumerator struct{ n int }

func (g *seqNumerator) Next(_ context.Context, seriesType string) (string, error) {
	g.n++
	return fmt.Sprintf("PUR%04d", g.n), nil
}

type fakeRepo struct {
	docs map[id.ID]*PurchaseOrder
}

func (r *fakeRepo) Create(_ context.Context, doc *PurchaseOrder) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, docID id.ID) (*PurchaseOrder, error) {
	doc, ok := r.docs[docID]
	if !ok {
		return nil, apperror.NewNotFound("purchase order", docID.String())
	}
	cp := *doc
	return &cp, nil
}

func (r *fakeRepo) List(_ context.Context, filter ListFilter) ([]*PurchaseOrder, error) {
	var out []*PurchaseOrder
	for _, doc := range r.docs {
		if len(filter.Statuses) > 0 {
			match := false
			for _, st := range filter.Statuses {
				if doc.Status == st {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		if filter.SupplierID != "" && doc.SupplierID != filter.SupplierID {
			continue
		}
		out = append(out, doc)
	}
	return out, nil
}

func (r *fakeRepo) UpdateApproval(_ context.Context, docID id.ID, fields approval.Fields, remarks *string) error {
	doc, ok := r.docs[docID]
	if !ok {
		return apperror.NewNotFound("purchase order", docID.String())
	}
	doc.Fields = fields
	if remarks != nil {
		doc.Remarks = remarks
	}
	return nil
}

func (r *fakeRepo) CountByStatus(_ context.Context, status approval.Status) (int64, error) {
	var n int64
	for _, doc := range r.docs {
		if doc.Status == status {
			n++
		}
	}
	return n, nil
}

type thresholdFlows struct {
	threshold float64
}

func (f thresholdFlows) RequiredApprovers(_ context.Context, _ string, vars map[string]any) ([]approval.Approver, error) {
	if total, ok := vars["total_amount"].(float64); ok && total > f.threshold {
		return []approval.Approver{{UserID: "approver-1", Level: 1}}, nil
	}
	return nil, nil
}

func userCtx(userID string) context.Context {
	return corecontext.WithUser(context.Background(), &corecontext.UserContext{UserID: userID, Role: "Purchase"})
}

func validPO(total float64) *PurchaseOrder {
	return &PurchaseOrder{
		SupplierID:   "sup-1",
		SupplierName: "Acme Textiles",
		Items: []Item{{
			ItemID:   "item-1",
			ItemName: "Cotton Yarn",
			Qty:      types.NewQuantityFromFloat64(10),
			UOM:      "KG",
			Rate:     types.NewMoney(total / 10),
		}},
		CreatedBy: "buyer-1",
	}
}

func TestCreate_ComputesTotals(t *testing.T) {
	repo := &fakeRepo{docs: make(map[id.ID]*PurchaseOrder)}
	svc := NewService(repo, nil, &seqNumerator{}, noopTxManager{})

	doc := validPO(5000)
	require.NoError(t, svc.Create(context.Background(), doc))

	assert.Equal(t, "PUR0001", doc.PONo)
	assert.True(t, doc.Subtotal.Equal(types.NewMoney(5000)))
	assert.True(t, doc.TotalAmount.Equal(types.NewMoney(5000)))
	assert.Equal(t, approval.StatusDraft, doc.Status)
}

func TestCreate_TaxTotals(t *testing.T) {
	repo := &fakeRepo{docs: make(map[id.ID]*PurchaseOrder)}
	svc := NewService(repo, nil, &seqNumerator{}, noopTxManager{})

	doc := validPO(1000)
	doc.Items[0].TaxRate = types.NewMoney(18)
	require.NoError(t, svc.Create(context.Background(), doc))

	assert.True(t, doc.TaxAmount.Equal(types.NewMoney(180)), "tax: %s", doc.TaxAmount)
	assert.True(t, doc.TotalAmount.Equal(types.NewMoney(1180)), "total: %s", doc.TotalAmount)
}

func TestCreate_FlowMatch_StartsPending(t *testing.T) {
	repo := &fakeRepo{docs: make(map[id.ID]*PurchaseOrder)}
	svc := NewService(repo, thresholdFlows{threshold: 100000}, &seqNumerator{}, noopTxManager{})
	ctx := context.Background()

	small := validPO(5000)
	require.NoError(t, svc.Create(ctx, small))
	assert.Equal(t, approval.StatusDraft, small.Status)

	big := validPO(250000)
	require.NoError(t, svc.Create(ctx, big))
	assert.Equal(t, approval.StatusPending, big.Status)
}

func TestCreate_NoItems(t *testing.T) {
	repo := &fakeRepo{docs: make(map[id.ID]*PurchaseOrder)}
	svc := NewService(repo, nil, &seqNumerator{}, noopTxManager{})

	doc := validPO(100)
	doc.Items = nil

	err := svc.Create(context.Background(), doc)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestApprove_FromPending(t *testing.T) {
	repo := &fakeRepo{docs: make(map[id.ID]*PurchaseOrder)}
	svc := NewService(repo, nil, &seqNumerator{}, noopTxManager{})
	ctx := userCtx("approver-1")

	doc := validPO(1000)
	doc.Status = approval.StatusPending
	require.NoError(t, svc.Create(ctx, doc))

	require.NoError(t, svc.Approve(ctx, doc.ID, nil))

	stored := repo.docs[doc.ID]
	assert.Equal(t, approval.StatusApproved, stored.Status)
	require.NotNil(t, stored.ApprovedBy)
	assert.Equal(t, "approver-1", *stored.ApprovedBy)
	assert.NotNil(t, stored.ApprovedAt)
}

func TestApprove_AlreadyApproved(t *testing.T) {
	repo := &fakeRepo{docs: make(map[id.ID]*PurchaseOrder)}
	svc := NewService(repo, nil, &seqNumerator{}, noopTxManager{})
	ctx := userCtx("approver-1")

	doc := validPO(1000)
	doc.Status = approval.StatusPending
	require.NoError(t, svc.Create(ctx, doc))
	require.NoError(t, svc.Approve(ctx, doc.ID, nil))

	err := svc.Approve(ctx, doc.ID, nil)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidTransition, appErr.Code)
}

func TestReject_RecordsRemarks(t *testing.T) {
	repo := &fakeRepo{docs: make(map[id.ID]*PurchaseOrder)}
	svc := NewService(repo, nil, &seqNumerator{}, noopTxManager{})
	ctx := userCtx("approver-2")

	doc := validPO(1000)
	doc.Status = approval.StatusPending
	require.NoError(t, svc.Create(ctx, doc))

	remarks := "price too high"
	require.NoError(t, svc.Reject(ctx, doc.ID, &remarks))

	stored := repo.docs[doc.ID]
	assert.Equal(t, approval.StatusRejected, stored.Status)
	require.NotNil(t, stored.Remarks)
	assert.Equal(t, "price too high", *stored.Remarks)
}

func TestSubmit_DraftToPending(t *testing.T) {
	repo := &fakeRepo{docs: make(map[id.ID]*PurchaseOrder)}
	svc := NewService(repo, nil, &seqNumerator{}, noopTxManager{})
	ctx := context.Background()

	doc := validPO(1000)
	require.NoError(t, svc.Create(ctx, doc))
	require.Equal(t, approval.StatusDraft, doc.Status)

	require.NoError(t, svc.Submit(ctx, doc.ID))
	assert.Equal(t, approval.StatusPending, repo.docs[doc.ID].Status)

	// Submitting again is a conflict.
	err := svc.Submit(ctx, doc.ID)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidTransition, appErr.Code)
}

func TestListAwaitingAction(t *testing.T) {
	repo := &fakeRepo{docs: make(map[id.ID]*PurchaseOrder)}
	svc := NewService(repo, nil, &seqNumerator{}, noopTxManager{})
	ctx := userCtx("approver-1")

	draft := validPO(100)
	require.NoError(t, svc.Create(ctx, draft))

	pending := validPO(200)
	pending.Status = approval.StatusPending
	require.NoError(t, svc.Create(ctx, pending))

	approved := validPO(300)
	approved.Status = approval.StatusPending
	require.NoError(t, svc.Create(ctx, approved))
	require.NoError(t, svc.Approve(ctx, approved.ID, nil))

	got, err := svc.ListAwaitingAction(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	n, err := svc.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
