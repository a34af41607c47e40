package model

import "time"

// WorkSession records one focused interval of work against a task.
// TaskID is a weak reference: the store accepts sessions whose task
// no longer exists (or never did), and readers must treat a missing
// task as detached rather than an error.
type WorkSession struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	TaskID          string    `gorm:"index" json:"task_id"`
	StartTime       time.Time `gorm:"index" json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Completed       bool      `json:"completed"`
}
