package qualitycheck

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomstock/internal/core/apperror"
	"loomstock/internal/core/id"
	"loomstock/internal/core/types"
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
	docs map[id.ID]*QualityCheck
}

func (r *fakeRepo) Create(_ context.Context, doc *QualityCheck) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, docID id.ID) (*QualityCheck, error) {
	doc, ok := r.docs[docID]
	if !ok {
		return nil, apperror.NewNotFound("quality check", docID.String())
	}
	return doc, nil
}

func (r *fakeRepo) List(_ context.Context) ([]*QualityCheck, error) {
	var out []*QualityCheck
	for _, doc := range r.docs {
		out = append(out, doc)
	}
	return out, nil
}

type fakeGRNs struct {
	statuses map[id.ID]string
}

func (g *fakeGRNs) SetStatus(_ context.Context, grnID id.ID, status string) error {
	g.statuses[grnID] = status
	return nil
}

func newTestService() (*Service, *fakeRepo, *fakeGRNs) {
	repo := &fakeRepo{docs: make(map[id.ID]*QualityCheck)}
	grns := &fakeGRNs{statuses: make(map[id.ID]string)}
	return NewService(repo, grns, &seqNumerator{}, noopTxManager{}), repo, grns
}

func validQC(grnID id.ID, status Status) *QualityCheck {
	return &QualityCheck{
		GRNID:       grnID.String(),
		GRNNo:       "GRN0001",
		POID:        "po-1",
		ItemID:      "item-1",
		ItemName:    "Cotton Yarn",
		QtyReceived: types.NewQuantityFromFloat64(100),
		QtyAccepted: types.NewQuantityFromFloat64(100),
		QCStatus:    status,
		InspectedBy: "qc-user",
	}
}

func TestCreate_Accepted_MarksGRNPassed(t *testing.T) {
	svc, _, grns := newTestService()
	grnID := id.New()

	qc := validQC(grnID, StatusAccepted)
	require.NoError(t, svc.Create(context.Background(), qc))

	assert.Equal(t, "QC Passed", grns.statuses[grnID])
	assert.Equal(t, "QC0001", qc.QCNo)
	assert.False(t, qc.InspectedAt.IsZero())
}

func TestCreate_Rejected_MarksGRNFailed(t *testing.T) {
	svc, _, grns := newTestService()
	grnID := id.New()

	qc := validQC(grnID, StatusRejected)
	qc.QtyAccepted = 0
	qc.QtyRejected = types.NewQuantityFromFloat64(100)
	require.NoError(t, svc.Create(context.Background(), qc))

	assert.Equal(t, "QC Failed", grns.statuses[grnID])
}

func TestCreate_Partial_LeavesGRNUntouched(t *testing.T) {
	svc, _, grns := newTestService()
	grnID := id.New()

	qc := validQC(grnID, StatusPartial)
	qc.QtyAccepted = types.NewQuantityFromFloat64(60)
	qc.QtyRejected = types.NewQuantityFromFloat64(40)
	require.NoError(t, svc.Create(context.Background(), qc))

	_, touched := grns.statuses[grnID]
	assert.False(t, touched)
}

func TestCreate_OverReceived(t *testing.T) {
	svc, _, _ := newTestService()

	qc := validQC(id.New(), StatusPartial)
	qc.QtyAccepted = types.NewQuantityFromFloat64(80)
	qc.QtyRejected = types.NewQuantityFromFloat64(30)

	err := svc.Create(context.Background(), qc)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestCreate_InvalidStatus(t *testing.T) {
	svc, _, _ := newTestService()

	qc := validQC(id.New(), Status("Whatever"))
	err := svc.Create(context.Background(), qc)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestCreate_KeepsProvidedNumber(t *testing.T) {
	svc, _, _ := newTestService()

	qc := validQC(id.New(), StatusAccepted)
	qc.QCNo = "QC9999"
	require.NoError(t, svc.Create(context.Background(), qc))
	assert.Equal(t, "QC9999", qc.QCNo)
}
