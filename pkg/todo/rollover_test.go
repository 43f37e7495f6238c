package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRolloverMovesOverdue(t *testing.T) {
	svc := newTestService(t)
	today := testDay()
	yesterday := today.AddDays(-1)

	// Added second-to-last but listed first in yesterday's column.
	first := mustAdd(t, svc, AddParams{Title: "First", ScheduledFor: &yesterday})
	second := mustAdd(t, svc, AddParams{Title: "Second", ScheduledFor: &yesterday})
	resident := mustAdd(t, svc, AddParams{Title: "Resident", ScheduledFor: &today})

	moved, err := svc.RolloverTo(today)
	require.NoError(t, err)
	assert.Equal(t, 2, moved)

	// Relative order within the migrated group is preserved, and the
	// group lands below today's residents.
	assert.Equal(t, []string{"Resident", "Second", "First"}, columnTitles(t, svc, today))

	got, err := svc.Get(first.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ScheduledFor)
	assert.True(t, got.ScheduledFor.Equal(today))
	assert.Greater(t, got.OrderIndex, resident.OrderIndex)

	gotSecond, err := svc.Get(second.ID)
	require.NoError(t, err)
	assert.Less(t, gotSecond.OrderIndex, got.OrderIndex)
}

func TestRolloverIdempotent(t *testing.T) {
	svc := newTestService(t)
	today := testDay()
	yesterday := today.AddDays(-1)

	mustAdd(t, svc, AddParams{Title: "Overdue", ScheduledFor: &yesterday})

	moved, err := svc.RolloverTo(today)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	moved, err = svc.RolloverTo(today)
	require.NoError(t, err)
	assert.Equal(t, 0, moved)
}

func TestRolloverSkipsDoneAndBacklog(t *testing.T) {
	svc := newTestService(t)
	today := testDay()
	yesterday := today.AddDays(-1)

	doneYesterday := mustAdd(t, svc, AddParams{Title: "Done", ScheduledFor: &yesterday})
	_, err := svc.MarkDone(doneYesterday.ID, yesterday)
	require.NoError(t, err)
	backlogged := mustAdd(t, svc, AddParams{Title: "Backlog"})

	moved, err := svc.RolloverTo(today)
	require.NoError(t, err)
	assert.Equal(t, 0, moved)

	got, err := svc.Get(doneYesterday.ID)
	require.NoError(t, err)
	assert.True(t, got.ScheduledFor.Equal(yesterday))

	got, err = svc.Get(backlogged.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ScheduledFor)
}

func TestRolloverEmptyBoard(t *testing.T) {
	svc := newTestService(t)

	moved, err := svc.RolloverTo(testDay())
	require.NoError(t, err)
	assert.Equal(t, 0, moved)
}

func TestRolloverGathersMultipleDays(t *testing.T) {
	svc := newTestService(t)
	today := testDay()

	lastWeek := today.AddDays(-7)
	yesterday := today.AddDays(-1)

	old := mustAdd(t, svc, AddParams{Title: "Old", ScheduledFor: &lastWeek})
	recent := mustAdd(t, svc, AddParams{Title: "Recent", ScheduledFor: &yesterday})

	moved, err := svc.RolloverTo(today)
	require.NoError(t, err)
	assert.Equal(t, 2, moved)

	gotOld, err := svc.Get(old.ID)
	require.NoError(t, err)
	gotRecent, err := svc.Get(recent.ID)
	require.NoError(t, err)
	assert.True(t, gotOld.ScheduledFor.Equal(today))
	assert.True(t, gotRecent.ScheduledFor.Equal(today))
}
