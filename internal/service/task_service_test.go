package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"focusflow/internal/model"
	"focusflow/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB() err = %v, want nil", err)
	}
	return db
}

func newTaskService(t *testing.T) *TaskService {
	t.Helper()
	return NewTaskService(repository.NewTaskRepository(newTestDB(t)))
}

func validInput() TaskInput {
	return TaskInput{
		Title:             "Test Task",
		Description:       "desc",
		EstimatedDuration: 60,
		PriorityScore:     75.0,
		Subtasks:          []string{"outline", "draft"},
	}
}

func TestCreateTask_EchoesInput(t *testing.T) {
	svc := newTaskService(t)

	task, err := svc.CreateTask(context.Background(), validInput())
	if err != nil {
		t.Fatalf("CreateTask() err = %v, want nil", err)
	}

	if task.ID == "" {
		t.Fatal("CreateTask() returned empty id")
	}
	if task.Title != "Test Task" || task.EstimatedDuration != 60 || task.PriorityScore != 75.0 {
		t.Fatalf("CreateTask() returned %+v, want echoed input", task)
	}
	if task.Status != model.StatusPending {
		t.Fatalf("status = %q, want %q", task.Status, model.StatusPending)
	}
	if task.CreatedAt.IsZero() {
		t.Fatal("CreatedAt not set by store")
	}
}

func TestCreateTask_Validation(t *testing.T) {
	svc := newTaskService(t)

	tests := []struct {
		name   string
		mutate func(*TaskInput)
	}{
		{"empty title", func(in *TaskInput) { in.Title = "  " }},
		{"duration too short", func(in *TaskInput) { in.EstimatedDuration = 29 }},
		{"duration too long", func(in *TaskInput) { in.EstimatedDuration = 121 }},
		{"priority below range", func(in *TaskInput) { in.PriorityScore = -0.1 }},
		{"priority above range", func(in *TaskInput) { in.PriorityScore = 100.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := svc.CreateTask(context.Background(), input)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("CreateTask() err = %v, want *ValidationError", err)
			}
		})
	}
}

func TestCreateTask_BoundaryValues(t *testing.T) {
	svc := newTaskService(t)

	for _, duration := range []int{30, 120} {
		input := validInput()
		input.EstimatedDuration = duration
		if _, err := svc.CreateTask(context.Background(), input); err != nil {
			t.Fatalf("CreateTask(duration=%d) err = %v, want nil", duration, err)
		}
	}
	for _, priority := range []float64{0.0, 100.0} {
		input := validInput()
		input.PriorityScore = priority
		if _, err := svc.CreateTask(context.Background(), input); err != nil {
			t.Fatalf("CreateTask(priority=%g) err = %v, want nil", priority, err)
		}
	}
}

func TestListTasks_CountMatchesSaves(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	const n = 4
	ids := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		task, err := svc.CreateTask(ctx, validInput())
		if err != nil {
			t.Fatalf("CreateTask() err = %v", err)
		}
		ids[task.ID] = true
	}

	list, err := svc.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks() err = %v, want nil", err)
	}
	if len(list) != n {
		t.Fatalf("ListTasks() len = %d, want %d", len(list), n)
	}
	for _, task := range list {
		if !ids[task.ID] {
			t.Fatalf("ListTasks() returned unknown id %q", task.ID)
		}
	}
}

func TestUpdateStatus(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, validInput())
	if err != nil {
		t.Fatalf("CreateTask() err = %v", err)
	}

	// Statuses are a flat set: pending -> completed directly is legal.
	updated, err := svc.UpdateStatus(ctx, task.ID, model.StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus() err = %v, want nil", err)
	}
	if updated.Status != model.StatusCompleted {
		t.Fatalf("status = %q, want %q", updated.Status, model.StatusCompleted)
	}

	list, err := svc.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks() err = %v", err)
	}
	if len(list) != 1 || list[0].Status != model.StatusCompleted {
		t.Fatalf("ListTasks() = %+v, want one completed task", list)
	}
}

func TestUpdateStatus_Errors(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	if _, err := svc.UpdateStatus(ctx, "unknown-id", model.StatusInProgress); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("UpdateStatus(unknown) err = %v, want ErrTaskNotFound", err)
	}

	if _, err := svc.UpdateStatus(ctx, "  ", model.StatusInProgress); !errors.Is(err, ErrEmptyTaskID) {
		t.Fatalf("UpdateStatus(blank) err = %v, want ErrEmptyTaskID", err)
	}

	task, err := svc.CreateTask(ctx, validInput())
	if err != nil {
		t.Fatalf("CreateTask() err = %v", err)
	}
	var validationErr *ValidationError
	if _, err := svc.UpdateStatus(ctx, task.ID, model.Status("archived")); !errors.As(err, &validationErr) {
		t.Fatalf("UpdateStatus(bad status) err = %v, want *ValidationError", err)
	}
}
