package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"focusflow/internal/model"
)

// TaskRepository handles persistence for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// ListAll returns every task in creation order.
func (r *TaskRepository) ListAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, taskID string) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("id = ?", taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateStatus overwrites the status field of an already-loaded task.
func (r *TaskRepository) UpdateStatus(ctx context.Context, task *model.Task, status model.Status) error {
	task.Status = status
	if err := r.db.WithContext(ctx).Model(task).Update("status", status).Error; err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	return nil
}
