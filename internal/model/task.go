package model

import "time"

// Status is the lifecycle state of a task. The values form a flat set,
// not an ordered state machine: a task may move between any pair.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Statuses lists all accepted status values, for error messages.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// Task represents a single unit of work parsed from a journal entry
// or created directly.
type Task struct {
	ID                string    `gorm:"primaryKey;size:36" json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	EstimatedDuration int       `json:"estimated_duration"`
	Subtasks          []string  `gorm:"serializer:json" json:"subtasks"`
	Status            Status    `gorm:"index;default:pending" json:"status"`
	PriorityScore     float64   `json:"priority_score"`
	CreatedAt         time.Time `json:"created_at"`
}
