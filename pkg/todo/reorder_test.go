package todo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/dayboard/pkg/types"
)

// columnTitles lists the pending column contents in display order.
func columnTitles(t *testing.T, svc *Service, day types.Date) []string {
	t.Helper()
	listed, err := svc.List(types.ListToday(day))
	require.NoError(t, err)
	titles := make([]string, len(listed))
	for i, item := range listed {
		titles[i] = item.Title
	}
	return titles
}

func TestReorderSwapsNeighbors(t *testing.T) {
	svc := newTestService(t)
	day := testDay()

	// Adding A then B displays [B, A].
	a := mustAdd(t, svc, AddParams{Title: "A", ScheduledFor: &day})
	mustAdd(t, svc, AddParams{Title: "B", ScheduledFor: &day})
	require.Equal(t, []string{"B", "A"}, columnTitles(t, svc, day))

	// Moving A up swaps it with B and rewrites indices densely.
	require.NoError(t, svc.Reorder(a.ID, types.ReorderUp))
	assert.Equal(t, []string{"A", "B"}, columnTitles(t, svc, day))

	listed, err := svc.List(types.ListToday(day))
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, int64(0), listed[0].OrderIndex)
	assert.Equal(t, int64(1), listed[1].OrderIndex)
}

func TestReorderBoundaryIsNoOp(t *testing.T) {
	svc := newTestService(t)
	day := testDay()

	a := mustAdd(t, svc, AddParams{Title: "A", ScheduledFor: &day})
	b := mustAdd(t, svc, AddParams{Title: "B", ScheduledFor: &day})

	// B is already at the top, A at the bottom.
	require.NoError(t, svc.Reorder(b.ID, types.ReorderUp))
	require.NoError(t, svc.Reorder(a.ID, types.ReorderDown))
	assert.Equal(t, []string{"B", "A"}, columnTitles(t, svc, day))

	// The no-op does not rewrite indices either.
	got, err := svc.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), got.OrderIndex)
}

func TestReorderSingleTodo(t *testing.T) {
	svc := newTestService(t)
	day := testDay()

	only := mustAdd(t, svc, AddParams{Title: "Only", ScheduledFor: &day})
	require.NoError(t, svc.Reorder(only.ID, types.ReorderUp))
	require.NoError(t, svc.Reorder(only.ID, types.ReorderDown))
}

func TestReorderThreeDeep(t *testing.T) {
	svc := newTestService(t)
	day := testDay()

	mustAdd(t, svc, AddParams{Title: "A", ScheduledFor: &day})
	mustAdd(t, svc, AddParams{Title: "B", ScheduledFor: &day})
	c := mustAdd(t, svc, AddParams{Title: "C", ScheduledFor: &day})
	require.Equal(t, []string{"C", "B", "A"}, columnTitles(t, svc, day))

	require.NoError(t, svc.Reorder(c.ID, types.ReorderDown))
	assert.Equal(t, []string{"B", "C", "A"}, columnTitles(t, svc, day))

	require.NoError(t, svc.Reorder(c.ID, types.ReorderDown))
	assert.Equal(t, []string{"B", "A", "C"}, columnTitles(t, svc, day))
}

func TestReorderStaysWithinStatusPartition(t *testing.T) {
	svc := newTestService(t)
	day := testDay()

	pending := mustAdd(t, svc, AddParams{Title: "Pending", ScheduledFor: &day})
	done := mustAdd(t, svc, AddParams{Title: "Done", ScheduledFor: &day})
	_, err := svc.MarkDone(done.ID, day)
	require.NoError(t, err)

	// The done todo is alone in its partition; reordering it cannot
	// disturb the pending one.
	require.NoError(t, svc.Reorder(done.ID, types.ReorderUp))

	got, err := svc.Get(pending.ID)
	require.NoError(t, err)
	assert.Equal(t, pending.OrderIndex, got.OrderIndex)
}

func TestReorderNotFound(t *testing.T) {
	svc := newTestService(t)

	var notFound *types.NotFoundError
	err := svc.Reorder(uuid.New(), types.ReorderUp)
	assert.ErrorAs(t, err, &notFound)
}
