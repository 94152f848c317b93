package registry

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleScenario = json.RawMessage(`{"scenario_name":"정상환급_테스트","biz_type":"individual_biz","refund_result":{"total_refund":1000000}}`)

func TestAssignThenGet(t *testing.T) {
	reg := New(NewMemoryStore())
	ctx := context.Background()

	assigned, err := reg.Assign(ctx, "ern-001", sampleScenario)
	require.NoError(t, err)
	assert.NotEmpty(t, assigned.AssignmentID)
	assert.False(t, assigned.AssignedAt.IsZero())

	got, err := reg.Get(ctx, "ern-001")
	require.NoError(t, err)
	assert.Equal(t, assigned.AssignmentID, got.AssignmentID)
	assert.JSONEq(t, string(sampleScenario), string(got.Scenario))
}

func TestAssign_OverwritesPrior(t *testing.T) {
	reg := New(NewMemoryStore())
	ctx := context.Background()

	first, err := reg.Assign(ctx, "ern-001", sampleScenario)
	require.NoError(t, err)

	replacement := json.RawMessage(`{"scenario_name":"에러_세션만료","biz_type":"individual_biz","error":{"error_type":"세션만료","error_message":"세션이 만료되었습니다."}}`)
	second, err := reg.Assign(ctx, "ern-001", replacement)
	require.NoError(t, err)
	assert.NotEqual(t, first.AssignmentID, second.AssignmentID)

	got, err := reg.Get(ctx, "ern-001")
	require.NoError(t, err)
	assert.JSONEq(t, string(replacement), string(got.Scenario))
}

func TestUnassign_AbsentIsNoError(t *testing.T) {
	reg := New(NewMemoryStore())
	ctx := context.Background()

	assert.NoError(t, reg.Unassign(ctx, "never-assigned"))
}

func TestUnassignRemovesAssignment(t *testing.T) {
	reg := New(NewMemoryStore())
	ctx := context.Background()

	_, err := reg.Assign(ctx, "ern-001", sampleScenario)
	require.NoError(t, err)
	require.NoError(t, reg.Unassign(ctx, "ern-001"))

	_, err = reg.Get(ctx, "ern-001")
	assert.ErrorIs(t, err, ErrNotAssigned)
}

func TestGet_NotAssigned(t *testing.T) {
	reg := New(NewMemoryStore())

	_, err := reg.Get(context.Background(), "ern-404")
	assert.ErrorIs(t, err, ErrNotAssigned)
}

func TestInputChecks(t *testing.T) {
	reg := New(NewMemoryStore())
	ctx := context.Background()

	_, err := reg.Assign(ctx, "", sampleScenario)
	assert.Error(t, err)

	_, err = reg.Assign(ctx, "ern-001", nil)
	assert.Error(t, err)

	assert.Error(t, reg.Unassign(ctx, ""))

	_, err = reg.Get(ctx, "")
	assert.Error(t, err)
}

func TestMemoryStore_CopiesOnReadAndWrite(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a := &Assignment{UserERN: "ern-001", AssignmentID: "id-1", Scenario: sampleScenario}
	require.NoError(t, store.Put(ctx, a))
	a.AssignmentID = "mutated"

	got, err := store.Get(ctx, "ern-001")
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.AssignmentID)
	assert.Equal(t, 1, store.Count())
}

func TestMemoryStore_ScenarioBytesNotShared(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	doc := json.RawMessage(`{"scenario_name":"원본"}`)
	require.NoError(t, store.Put(ctx, &Assignment{UserERN: "ern-001", Scenario: doc}))

	// Mutating the caller's slice after Put must not reach the store.
	doc[0] = 'X'

	got, err := store.Get(ctx, "ern-001")
	require.NoError(t, err)
	assert.JSONEq(t, `{"scenario_name":"원본"}`, string(got.Scenario))

	// Nor may mutating a returned slice corrupt the stored value.
	got.Scenario[0] = 'X'
	again, err := store.Get(ctx, "ern-001")
	require.NoError(t, err)
	assert.JSONEq(t, `{"scenario_name":"원본"}`, string(again.Scenario))
}
