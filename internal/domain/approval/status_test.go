package approval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomstock/internal/core/apperror"
)

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusDraft, InitialStatus(DocTypePurchaseIndent))
	assert.Equal(t, StatusDraft, InitialStatus(DocTypePurchaseOrder))
	assert.Equal(t, StatusPending, InitialStatus(DocTypeStockTransfer))
	assert.Equal(t, StatusPending, InitialStatus(DocTypeStockAdjustment))
	assert.Equal(t, StatusDraft, InitialStatus("SomethingElse"))
}

func TestApprove_FromPending(t *testing.T) {
	f := Fields{Status: StatusPending}
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	require.NoError(t, f.Approve(DocTypePurchaseOrder, "user-1", now))

	assert.Equal(t, StatusApproved, f.Status)
	require.NotNil(t, f.ApprovedBy)
	assert.Equal(t, "user-1", *f.ApprovedBy)
	require.NotNil(t, f.ApprovedAt)
	assert.Equal(t, now, *f.ApprovedAt)
}

func TestReject_FromPending(t *testing.T) {
	f := Fields{Status: StatusPending}

	require.NoError(t, f.Reject(DocTypeStockTransfer, "user-2", time.Now()))
	assert.Equal(t, StatusRejected, f.Status)
}

func TestApprove_TerminalStatesRejected(t *testing.T) {
	for _, from := range []Status{StatusDraft, StatusApproved, StatusRejected} {
		f := Fields{Status: from}
		err := f.Approve(DocTypePurchaseOrder, "user-1", time.Now())

		require.Error(t, err, "from %s", from)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeInvalidTransition, appErr.Code)
		assert.Equal(t, from, f.Status, "status must be unchanged on failed transition")
		assert.Nil(t, f.ApprovedBy)
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusDraft.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
}
