package service

import (
	"context"
	"log"
	"strings"

	"focusflow/internal/cortex"
	"focusflow/internal/model"
)

// AI sources reported alongside journal-capture results.
const (
	SourceCortex   = "cortex"
	SourceFallback = "fallback"
)

// JournalParser turns free text into task drafts.
type JournalParser interface {
	ParseJournal(ctx context.Context, journalText string) ([]cortex.TaskDraft, error)
}

// JournalService captures journal entries: it parses them into drafts,
// clamps the drafts into valid ranges and saves each one as a pending
// task. When the primary parser fails the fallback takes over silently,
// mirroring how the app degrades when Cortex is unreachable.
type JournalService struct {
	tasks    *TaskService
	primary  JournalParser
	fallback JournalParser
}

// NewJournalService builds a journal service. primary may be nil, in
// which case every entry goes through the fallback parser.
func NewJournalService(tasks *TaskService, primary, fallback JournalParser) *JournalService {
	return &JournalService{tasks: tasks, primary: primary, fallback: fallback}
}

// Capture parses the entry and persists the resulting tasks. It returns
// the saved tasks and which parser produced them. A blank entry yields
// no tasks and no error.
func (s *JournalService) Capture(ctx context.Context, journalText string) ([]model.Task, string, error) {
	if strings.TrimSpace(journalText) == "" {
		return []model.Task{}, SourceFallback, nil
	}

	drafts, source, err := s.parse(ctx, journalText)
	if err != nil {
		return nil, source, &ExternalServiceError{Service: "journal parser", Err: err}
	}

	saved := make([]model.Task, 0, len(drafts))
	for _, draft := range drafts {
		task, err := s.tasks.CreateTask(ctx, clampDraft(draft))
		if err != nil {
			return nil, source, err
		}
		saved = append(saved, *task)
	}
	return saved, source, nil
}

func (s *JournalService) parse(ctx context.Context, journalText string) ([]cortex.TaskDraft, string, error) {
	if s.primary != nil {
		drafts, err := s.primary.ParseJournal(ctx, journalText)
		if err == nil {
			return drafts, SourceCortex, nil
		}
		log.Printf("journal parse via cortex failed, using fallback: %v", err)
	}

	drafts, err := s.fallback.ParseJournal(ctx, journalText)
	if err != nil {
		return nil, SourceFallback, err
	}
	return drafts, SourceFallback, nil
}

// clampDraft forces AI output into the ranges SaveTask enforces. Models
// are prompted to stay in range but are not trusted to.
func clampDraft(draft cortex.TaskDraft) TaskInput {
	input := TaskInput{
		Title:             draft.Title,
		Description:       draft.Description,
		EstimatedDuration: draft.EstimatedDuration,
		PriorityScore:     draft.PriorityScore,
		Subtasks:          draft.Subtasks,
	}
	if input.EstimatedDuration < MinTaskDuration {
		input.EstimatedDuration = MinTaskDuration
	}
	if input.EstimatedDuration > MaxTaskDuration {
		input.EstimatedDuration = MaxTaskDuration
	}
	if input.PriorityScore == 0 {
		input.PriorityScore = 50.0
	}
	if input.PriorityScore < MinPriority {
		input.PriorityScore = MinPriority
	}
	if input.PriorityScore > MaxPriority {
		input.PriorityScore = MaxPriority
	}
	return input
}
