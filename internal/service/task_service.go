package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"focusflow/internal/model"
	"focusflow/internal/repository"
)

// Duration and priority bounds for tasks.
const (
	MinTaskDuration = 30
	MaxTaskDuration = 120
	MinPriority     = 0.0
	MaxPriority     = 100.0
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title             string
	Description       string
	EstimatedDuration int
	PriorityScore     float64
	Subtasks          []string
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo *repository.TaskRepository
}

func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTask validates the input, assigns an id and persists the task.
// New tasks always start as pending; creation time is set by the store.
func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (*model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, validationErrorf("title", "must not be empty")
	}
	if input.EstimatedDuration < MinTaskDuration || input.EstimatedDuration > MaxTaskDuration {
		return nil, validationErrorf("estimated_duration", "must be between %d and %d minutes, got %d",
			MinTaskDuration, MaxTaskDuration, input.EstimatedDuration)
	}
	if input.PriorityScore < MinPriority || input.PriorityScore > MaxPriority {
		return nil, validationErrorf("priority_score", "must be between %.0f and %.0f, got %g",
			MinPriority, MaxPriority, input.PriorityScore)
	}

	task := model.Task{
		ID:                uuid.NewString(),
		Title:             title,
		Description:       input.Description,
		EstimatedDuration: input.EstimatedDuration,
		Subtasks:          input.Subtasks,
		Status:            model.StatusPending,
		PriorityScore:     input.PriorityScore,
	}

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks returns all tasks in creation order. An empty store yields
// an empty slice, not an error.
func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.taskRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, taskID string) (*model.Task, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, ErrEmptyTaskID
	}
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateStatus moves a task to the given status. Statuses are a flat set,
// so any valid target is accepted regardless of the current value.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID string, status model.Status) (*model.Task, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, ErrEmptyTaskID
	}
	if !status.Valid() {
		return nil, validationErrorf("status", "must be one of %v, got %q", model.Statuses(), status)
	}

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.UpdateStatus(ctx, task, status); err != nil {
		return nil, err
	}
	return task, nil
}
