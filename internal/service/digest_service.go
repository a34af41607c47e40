package service

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"focusflow/internal/model"
	"focusflow/internal/repository"
)

// DigestService builds the end-of-day summary: today's session
// statistics plus the tasks still waiting for attention.
type DigestService struct {
	taskRepo    *repository.TaskRepository
	sessionRepo *repository.SessionRepository
	sessions    *SessionService
}

func NewDigestService(taskRepo *repository.TaskRepository, sessionRepo *repository.SessionRepository, sessions *SessionService) *DigestService {
	return &DigestService{taskRepo: taskRepo, sessionRepo: sessionRepo, sessions: sessions}
}

// Daily renders the digest for the day containing now as a Telegram-safe
// HTML message.
func (s *DigestService) Daily(ctx context.Context, now time.Time) (string, error) {
	stats, err := s.sessions.Statistics(ctx, now)
	if err != nil {
		return "", err
	}

	tasks, err := s.taskRepo.ListAll(ctx)
	if err != nil {
		return "", err
	}
	titles := make(map[string]string, len(tasks))
	var open []model.Task
	for _, task := range tasks {
		titles[task.ID] = task.Title
		if task.Status != model.StatusCompleted {
			open = append(open, task)
		}
	}

	sort.SliceStable(open, func(i, j int) bool {
		return open[i].PriorityScore > open[j].PriorityScore
	})

	sessions, err := s.sessionRepo.ListByDay(ctx, now)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString("<b>Focus Flow daily digest</b>\n")
	builder.WriteString(fmt.Sprintf("%s\n\n", now.Format("02.01.2006")))

	builder.WriteString("<b>Today</b>\n")
	builder.WriteString(fmt.Sprintf("Sessions: %d\n", stats.TotalSessions))
	builder.WriteString(fmt.Sprintf("Focus time: %d min\n", stats.TotalMinutes))
	builder.WriteString(fmt.Sprintf("Completion rate: %.0f%%\n", stats.CompletionRate*100))
	builder.WriteString(fmt.Sprintf("Tasks touched: %d\n", stats.UniqueTasks))

	builder.WriteString("\n<b>Sessions</b>\n")
	if len(sessions) == 0 {
		builder.WriteString("- no sessions recorded\n")
	} else {
		for _, session := range sessions {
			builder.WriteString(formatSession(session, titles))
		}
	}

	builder.WriteString("\n<b>Still open</b>\n")
	if len(open) == 0 {
		builder.WriteString("- nothing pending\n")
	} else {
		for _, task := range open {
			builder.WriteString(formatOpenTask(task))
		}
	}

	return strings.TrimSpace(builder.String()), nil
}

func formatSession(session model.WorkSession, titles map[string]string) string {
	// Sessions keep a weak task reference; a vanished task renders as
	// detached instead of failing the digest.
	title, ok := titles[session.TaskID]
	if !ok || strings.TrimSpace(title) == "" {
		title = "(detached)"
	} else {
		title = html.EscapeString(strings.TrimSpace(title))
	}

	mark := "○"
	if session.Completed {
		mark = "●"
	}
	return fmt.Sprintf("%s %s — %d min (%s)\n",
		mark, title, session.DurationMinutes, session.StartTime.Format("15:04"))
}

func formatOpenTask(task model.Task) string {
	icon := "•"
	if task.Status == model.StatusInProgress {
		icon = "▶"
	}
	return fmt.Sprintf("%s %s (priority %.0f, ~%d min)\n",
		icon, html.EscapeString(strings.TrimSpace(task.Title)), task.PriorityScore, task.EstimatedDuration)
}
