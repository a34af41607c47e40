package service

import (
	"context"
	"log"

	"focusflow/internal/cortex"
)

// Coach produces a motivational message for a session event.
type Coach interface {
	CoachMessage(ctx context.Context, kind cortex.MessageKind, taskName string, durationMinutes int) (string, error)
}

// Notifier delivers a message to an out-of-band channel. Implementations
// must tolerate being called concurrently with other operations.
type Notifier interface {
	Send(text string) error
}

// CoachService generates coaching messages for session events and, when
// a notifier is configured, pushes them to the user's channel.
type CoachService struct {
	primary  Coach
	fallback Coach
	notifier Notifier
}

// NewCoachService builds a coach service. primary and notifier may be
// nil; the fallback must not be.
func NewCoachService(primary, fallback Coach, notifier Notifier) *CoachService {
	return &CoachService{primary: primary, fallback: fallback, notifier: notifier}
}

// Message returns a coaching message for the given event. Unknown kinds
// are rejected; AI failures degrade to the offline templates rather than
// surfacing an error, matching how the coach behaves in the UI.
func (s *CoachService) Message(ctx context.Context, kind cortex.MessageKind, taskName string, durationMinutes int) (string, error) {
	if !kind.Valid() {
		return "", validationErrorf("kind", "must be one of %v, got %q", cortex.Kinds(), kind)
	}

	msg, err := s.generate(ctx, kind, taskName, durationMinutes)
	if err != nil {
		return "", &ExternalServiceError{Service: "coach", Err: err}
	}

	if s.notifier != nil {
		// Delivery is best effort; the caller still gets the message.
		if err := s.notifier.Send(msg); err != nil {
			log.Printf("coach message delivery failed: %v", err)
		}
	}
	return msg, nil
}

func (s *CoachService) generate(ctx context.Context, kind cortex.MessageKind, taskName string, durationMinutes int) (string, error) {
	if s.primary != nil {
		msg, err := s.primary.CoachMessage(ctx, kind, taskName, durationMinutes)
		if err == nil && msg != "" {
			return msg, nil
		}
		if err != nil {
			log.Printf("coach message via cortex failed, using fallback: %v", err)
		}
	}
	return s.fallback.CoachMessage(ctx, kind, taskName, durationMinutes)
}
