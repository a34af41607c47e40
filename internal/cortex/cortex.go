// Package cortex talks to the Snowflake Cortex completion API to turn
// free-text journal entries into structured task drafts and to produce
// short coaching messages for focus-session events. An offline fallback
// with the same surface covers deployments without Cortex access.
package cortex

// TaskDraft is one task candidate produced by journal parsing. Drafts
// are unvalidated: callers clamp durations and priorities before saving.
type TaskDraft struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	EstimatedDuration int      `json:"estimated_duration"`
	Subtasks          []string `json:"subtasks"`
	PriorityScore     float64  `json:"priority_score"`
}

// MessageKind identifies the focus-session event a coaching message is for.
type MessageKind string

const (
	KindSessionStart MessageKind = "session_start"
	KindHalfway      MessageKind = "halfway"
	KindBreak        MessageKind = "break"
	KindCompletion   MessageKind = "completion"
)

// Valid reports whether k is a known message kind.
func (k MessageKind) Valid() bool {
	switch k {
	case KindSessionStart, KindHalfway, KindBreak, KindCompletion:
		return true
	}
	return false
}

// Kinds lists all accepted message kinds, for error messages.
func Kinds() []MessageKind {
	return []MessageKind{KindSessionStart, KindHalfway, KindBreak, KindCompletion}
}
