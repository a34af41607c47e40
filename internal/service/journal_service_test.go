package service

import (
	"context"
	"errors"
	"testing"

	"focusflow/internal/cortex"
	"focusflow/internal/model"
	"focusflow/internal/repository"
)

type stubParser struct {
	drafts []cortex.TaskDraft
	err    error
}

func (s *stubParser) ParseJournal(context.Context, string) ([]cortex.TaskDraft, error) {
	return s.drafts, s.err
}

func newJournalService(t *testing.T, primary, fallback JournalParser) (*JournalService, *TaskService) {
	t.Helper()
	tasks := NewTaskService(repository.NewTaskRepository(newTestDB(t)))
	return NewJournalService(tasks, primary, fallback), tasks
}

func TestCapture_BlankEntry(t *testing.T) {
	svc, _ := newJournalService(t, nil, cortex.NewFallback(nil))

	tasks, _, err := svc.Capture(context.Background(), "   \n ")
	if err != nil {
		t.Fatalf("Capture() err = %v, want nil", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("Capture() returned %d tasks, want 0", len(tasks))
	}
}

func TestCapture_PrimaryParser(t *testing.T) {
	primary := &stubParser{drafts: []cortex.TaskDraft{
		{Title: "Prepare slides", Description: "for the review", EstimatedDuration: 60, Subtasks: []string{"outline", "draft"}},
	}}
	svc, tasks := newJournalService(t, primary, cortex.NewFallback(nil))
	ctx := context.Background()

	saved, source, err := svc.Capture(ctx, "I need to prepare slides for the review.")
	if err != nil {
		t.Fatalf("Capture() err = %v, want nil", err)
	}
	if source != SourceCortex {
		t.Fatalf("source = %q, want %q", source, SourceCortex)
	}
	if len(saved) != 1 || saved[0].Status != model.StatusPending {
		t.Fatalf("Capture() saved = %+v, want one pending task", saved)
	}
	if saved[0].PriorityScore != 50.0 {
		t.Fatalf("PriorityScore = %g, want default 50", saved[0].PriorityScore)
	}

	list, err := tasks.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks() err = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("ListTasks() len = %d, want 1 persisted task", len(list))
	}
}

func TestCapture_FallsBackOnPrimaryError(t *testing.T) {
	primary := &stubParser{err: errors.New("cortex unreachable")}
	svc, _ := newJournalService(t, primary, cortex.NewFallback(nil))

	journal := "I need to prepare slides for my presentation. I should also review the quarterly report numbers."
	saved, source, err := svc.Capture(context.Background(), journal)
	if err != nil {
		t.Fatalf("Capture() err = %v, want silent fallback", err)
	}
	if source != SourceFallback {
		t.Fatalf("source = %q, want %q", source, SourceFallback)
	}
	if len(saved) == 0 {
		t.Fatal("Capture() saved no tasks via fallback")
	}
}

func TestCapture_ClampsOutOfRangeDrafts(t *testing.T) {
	primary := &stubParser{drafts: []cortex.TaskDraft{
		{Title: "Tiny", Description: "d", EstimatedDuration: 10},
		{Title: "Huge", Description: "d", EstimatedDuration: 500, PriorityScore: 140},
	}}
	svc, _ := newJournalService(t, primary, cortex.NewFallback(nil))

	saved, _, err := svc.Capture(context.Background(), "journal text long enough")
	if err != nil {
		t.Fatalf("Capture() err = %v, want clamped drafts to save", err)
	}
	if saved[0].EstimatedDuration != MinTaskDuration {
		t.Fatalf("duration = %d, want clamped to %d", saved[0].EstimatedDuration, MinTaskDuration)
	}
	if saved[1].EstimatedDuration != MaxTaskDuration || saved[1].PriorityScore != MaxPriority {
		t.Fatalf("clamping failed: %+v", saved[1])
	}
}
