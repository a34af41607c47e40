package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"focusflow/internal/cortex"
)

type stubCoach struct {
	msg string
	err error
}

func (s *stubCoach) CoachMessage(context.Context, cortex.MessageKind, string, int) (string, error) {
	return s.msg, s.err
}

type recordingNotifier struct {
	sent []string
	err  error
}

func (n *recordingNotifier) Send(text string) error {
	n.sent = append(n.sent, text)
	return n.err
}

func TestCoachMessage_InvalidKind(t *testing.T) {
	svc := NewCoachService(nil, cortex.NewFallback(nil), nil)

	_, err := svc.Message(context.Background(), cortex.MessageKind("nap_time"), "task", 60)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Message() err = %v, want *ValidationError", err)
	}
}

func TestCoachMessage_FallsBackOnPrimaryError(t *testing.T) {
	primary := &stubCoach{err: errors.New("cortex unreachable")}
	svc := NewCoachService(primary, cortex.NewFallback(nil), nil)

	msg, err := svc.Message(context.Background(), cortex.KindSessionStart, "Write Report", 60)
	if err != nil {
		t.Fatalf("Message() err = %v, want fallback message", err)
	}
	if msg == "" {
		t.Fatal("Message() returned empty message")
	}
}

func TestCoachMessage_ContextSubstitution(t *testing.T) {
	svc := NewCoachService(nil, cortex.NewFallback(nil), nil)

	msg, err := svc.Message(context.Background(), cortex.KindCompletion, "Write Report", 60)
	if err != nil {
		t.Fatalf("Message() err = %v", err)
	}
	if !strings.Contains(msg, "Write Report") {
		t.Fatalf("Message() = %q, want task name substituted", msg)
	}
}

func TestCoachMessage_NotifiesAndSurvivesDeliveryFailure(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("chat unavailable")}
	svc := NewCoachService(&stubCoach{msg: "go go go"}, cortex.NewFallback(nil), notifier)

	msg, err := svc.Message(context.Background(), cortex.KindHalfway, "task", 30)
	if err != nil {
		t.Fatalf("Message() err = %v, delivery failure must not surface", err)
	}
	if msg != "go go go" {
		t.Fatalf("Message() = %q, want primary message", msg)
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != "go go go" {
		t.Fatalf("notifier.sent = %v, want the message delivered once", notifier.sent)
	}
}
