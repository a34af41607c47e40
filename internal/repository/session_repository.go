package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"focusflow/internal/model"
)

// SessionAggregate is the raw daily rollup scanned from a single query.
type SessionAggregate struct {
	TotalSessions     int
	TotalMinutes      int
	CompletedSessions int
	UniqueTasks       int
}

// SessionRepository handles persistence for work sessions.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create persists a session unconditionally. The task reference is weak:
// no check is made that session.TaskID exists.
func (r *SessionRepository) Create(ctx context.Context, session *model.WorkSession) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("create work session: %w", err)
	}
	return nil
}

// ListByDay returns sessions whose start time falls on the given day,
// ordered by start time.
func (r *SessionRepository) ListByDay(ctx context.Context, day time.Time) ([]model.WorkSession, error) {
	from, to := dayBounds(day)
	var sessions []model.WorkSession
	if err := r.db.WithContext(ctx).
		Where("start_time >= ? AND start_time < ?", from, to).
		Order("start_time ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// AggregateByDay computes session counts for the given day in one query.
// An empty day yields a zero aggregate, not an error.
func (r *SessionRepository) AggregateByDay(ctx context.Context, day time.Time) (SessionAggregate, error) {
	from, to := dayBounds(day)
	var agg SessionAggregate
	err := r.db.WithContext(ctx).Model(&model.WorkSession{}).
		Select("COUNT(*) AS total_sessions, " +
			"COALESCE(SUM(duration_minutes), 0) AS total_minutes, " +
			"COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0) AS completed_sessions, " +
			"COUNT(DISTINCT task_id) AS unique_tasks").
		Where("start_time >= ? AND start_time < ?", from, to).
		Scan(&agg).Error
	if err != nil {
		return SessionAggregate{}, fmt.Errorf("aggregate sessions: %w", err)
	}
	return agg, nil
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	year, month, d := day.Date()
	from := time.Date(year, month, d, 0, 0, 0, 0, day.Location())
	return from, from.AddDate(0, 0, 1)
}
