package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"focusflow/internal/model"
	"focusflow/internal/repository"
)

// Duration bounds for work sessions.
const (
	MinSessionDuration = 5
	MaxSessionDuration = 120
)

// Statistics summarizes one day of work sessions. CompletionRate is a
// fraction in [0, 1] and is 0 when the day has no sessions.
type Statistics struct {
	TotalSessions  int     `json:"total_sessions"`
	TotalMinutes   int     `json:"total_minutes"`
	CompletionRate float64 `json:"completion_rate"`
	UniqueTasks    int     `json:"unique_tasks"`
}

// SessionService records work sessions and computes daily statistics.
type SessionService struct {
	sessionRepo *repository.SessionRepository
}

func NewSessionService(sessionRepo *repository.SessionRepository) *SessionService {
	return &SessionService{sessionRepo: sessionRepo}
}

// RecordSession persists a work session. The task reference is not
// checked: sessions against unknown task ids are stored as-is and show
// up as detached in summaries.
func (s *SessionService) RecordSession(ctx context.Context, taskID string, startTime time.Time, durationMinutes int, completed bool) (*model.WorkSession, error) {
	if durationMinutes < MinSessionDuration || durationMinutes > MaxSessionDuration {
		return nil, validationErrorf("duration_minutes", "must be between %d and %d minutes, got %d",
			MinSessionDuration, MaxSessionDuration, durationMinutes)
	}
	if startTime.IsZero() {
		startTime = time.Now()
	}

	session := model.WorkSession{
		ID:              uuid.NewString(),
		TaskID:          taskID,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
		Completed:       completed,
	}

	if err := s.sessionRepo.Create(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Statistics returns the rollup for the day containing date. A zero date
// means today. A day without sessions yields all zeros, not an error.
func (s *SessionService) Statistics(ctx context.Context, date time.Time) (Statistics, error) {
	if date.IsZero() {
		date = time.Now()
	}

	agg, err := s.sessionRepo.AggregateByDay(ctx, date)
	if err != nil {
		return Statistics{}, err
	}

	stats := Statistics{
		TotalSessions: agg.TotalSessions,
		TotalMinutes:  agg.TotalMinutes,
		UniqueTasks:   agg.UniqueTasks,
	}
	if agg.TotalSessions > 0 {
		stats.CompletionRate = float64(agg.CompletedSessions) / float64(agg.TotalSessions)
	}
	return stats, nil
}
