// End-to-end workflow tests: a week of daily planning against one data
// directory, including restarts.
package integration

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/dayboard/pkg/todo"
	"github.com/mesh-intelligence/dayboard/pkg/types"
)

func TestDailyWorkflow(t *testing.T) {
	env := NewTestEnv(t)
	today := types.NewDate(2026, 8, 24)
	tomorrow := today.AddDays(1)

	// Morning: plan the day.
	email := env.MustAdd(todo.AddParams{Title: "Answer email", ScheduledFor: &today})
	report := env.MustAdd(todo.AddParams{Title: "Write report", ScheduledFor: &today})
	env.MustAdd(todo.AddParams{Title: "Read paper"}) // backlog

	listed, err := env.Service.List(types.ListToday(today))
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("today has %d todos, want 2", len(listed))
	}
	// Last added shows first.
	if listed[0].ID != report.ID || listed[1].ID != email.ID {
		t.Errorf("today order = [%s %s], want report before email", listed[0].Title, listed[1].Title)
	}

	// During the day: finish the email, the report slips.
	if _, err := env.Service.MarkDone(email.ID, today); err != nil {
		t.Fatalf("MarkDone failed: %v", err)
	}

	// Next morning: roll over.
	moved, err := env.Service.RolloverTo(tomorrow)
	if err != nil {
		t.Fatalf("RolloverTo failed: %v", err)
	}
	if moved != 1 {
		t.Errorf("rolled over %d todos, want 1 (the report)", moved)
	}

	got, err := env.Service.Get(report.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ScheduledFor == nil || !got.ScheduledFor.Equal(tomorrow) {
		t.Errorf("report scheduled_for = %v, want %v", got.ScheduledFor, tomorrow)
	}

	// The completed email stays on yesterday's board.
	got, err = env.Service.Get(email.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ScheduledFor == nil || !got.ScheduledFor.Equal(today) {
		t.Errorf("email scheduled_for = %v, want %v", got.ScheduledFor, today)
	}
}

func TestEpicWorkflow(t *testing.T) {
	env := NewTestEnv(t)
	today := types.NewDate(2026, 8, 24)

	epic := env.MustAdd(todo.AddParams{Title: "Launch website", Project: "acme"})
	design := env.MustAdd(todo.AddParams{Title: "Design landing page", EpicID: epic.ID, ScheduledFor: &today})
	deploy := env.MustAdd(todo.AddParams{Title: "Set up hosting", EpicID: epic.ID})

	if design.Project != "acme" || deploy.Project != "acme" {
		t.Errorf("children projects = %q/%q, want inherited %q", design.Project, deploy.Project, "acme")
	}

	// The epic cannot be deleted while children reference it.
	var hasChildren *types.HasChildrenError
	if err := env.Service.Delete(epic.ID); !errors.As(err, &hasChildren) {
		t.Fatalf("expected HasChildrenError, got %v", err)
	}
	if hasChildren.Count != 2 {
		t.Errorf("children count = %d, want 2", hasChildren.Count)
	}

	// Finish and detach the children, then the epic goes away.
	if _, err := env.Service.MarkDone(design.ID, today); err != nil {
		t.Fatalf("MarkDone failed: %v", err)
	}
	stats, err := env.Service.EpicStats(epic.ID)
	if err != nil {
		t.Fatalf("EpicStats failed: %v", err)
	}
	if stats.Completed != 1 || stats.Remaining != 1 {
		t.Errorf("stats = %+v, want 1 completed, 1 remaining", stats)
	}

	for _, child := range []uuid.UUID{design.ID, deploy.ID} {
		if _, err := env.Service.UpdateEpicID(child, uuid.Nil); err != nil {
			t.Fatalf("UpdateEpicID failed: %v", err)
		}
	}
	if err := env.Service.Delete(epic.ID); err != nil {
		t.Fatalf("Delete after unlinking failed: %v", err)
	}
}

func TestStateSurvivesRestart(t *testing.T) {
	env := NewTestEnv(t)
	today := types.NewDate(2026, 8, 24)

	kept := env.MustAdd(todo.AddParams{Title: "Persistent", ScheduledFor: &today, Notes: "must survive"})
	done := env.MustAdd(todo.AddParams{Title: "Finished", ScheduledFor: &today})
	if _, err := env.Service.MarkDone(done.ID, today); err != nil {
		t.Fatalf("MarkDone failed: %v", err)
	}

	env.Restart()

	got, err := env.Service.Get(kept.ID)
	if err != nil {
		t.Fatalf("Get after restart failed: %v", err)
	}
	if got.Notes != "must survive" {
		t.Errorf("notes = %q after restart", got.Notes)
	}

	listed, err := env.Service.List(types.ListOptions{Scope: types.ScopeDay(today), IncludeDone: true})
	if err != nil {
		t.Fatalf("List after restart failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("board has %d todos after restart, want 2", len(listed))
	}
	if listed[0].ID != kept.ID || listed[1].ID != done.ID {
		t.Errorf("display order changed after restart: [%s %s]", listed[0].Title, listed[1].Title)
	}
}

func TestReorderWorkflow(t *testing.T) {
	env := NewTestEnv(t)
	today := types.NewDate(2026, 8, 24)

	first := env.MustAdd(todo.AddParams{Title: "First", ScheduledFor: &today})
	env.MustAdd(todo.AddParams{Title: "Second", ScheduledFor: &today})
	env.MustAdd(todo.AddParams{Title: "Third", ScheduledFor: &today})

	// Promote the oldest item to the top, one step at a time.
	for i := 0; i < 2; i++ {
		if err := env.Service.Reorder(first.ID, types.ReorderUp); err != nil {
			t.Fatalf("Reorder failed: %v", err)
		}
	}

	listed, err := env.Service.List(types.ListToday(today))
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if listed[0].ID != first.ID {
		t.Errorf("top of column = %s, want First", listed[0].Title)
	}

	// Reordering survives a restart because the dense indices persist.
	env.Restart()
	listed, err = env.Service.List(types.ListToday(today))
	if err != nil {
		t.Fatalf("List after restart failed: %v", err)
	}
	if listed[0].ID != first.ID {
		t.Errorf("top of column after restart = %s, want First", listed[0].Title)
	}
}
