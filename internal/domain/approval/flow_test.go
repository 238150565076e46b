package approval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlow_Matches_EmptyCondition(t *testing.T) {
	f := &Flow{Condition: ""}
	matched, err := f.Matches(nil)
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestFlow_Matches_AmountThreshold(t *testing.T) {
	f := &Flow{Condition: "total_amount > 100000.0"}

	matched, err := f.Matches(map[string]any{"total_amount": 250000.0})
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = f.Matches(map[string]any{"total_amount": 5000.0})
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestFlow_Matches_MissingVarsDefault(t *testing.T) {
	// A PO carries no reason; the condition must still evaluate.
	f := &Flow{Condition: `reason == "Lost" || total_amount > 0.0`}
	matched, err := f.Matches(map[string]any{"total_amount": 10.0})
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestFlow_Validate(t *testing.T) {
	flow := &Flow{
		FlowName:     "High value POs",
		DocumentType: DocTypePurchaseOrder,
		Approvers:    []Approver{{UserID: "u1", Level: 1}},
		Condition:    "total_amount > 100000.0",
	}
	require.NoError(t, flow.Validate(context.Background()))

	flow.Condition = "total_amount >" // malformed
	assert.Error(t, flow.Validate(context.Background()))

	flow.Condition = ""
	flow.Approvers = nil
	assert.Error(t, flow.Validate(context.Background()))
}
