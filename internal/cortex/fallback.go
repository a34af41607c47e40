package cortex

import (
	"context"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	sentenceSplit = regexp.MustCompile(`[.!?\n]+`)
	leadingPhrase = regexp.MustCompile(`(?i)^(I need to|I have to|I must|I should|I will|I want to|I am going to|I plan to)\s+`)
)

var durationOptions = []int{30, 45, 60, 75, 90, 120}

var subtaskTemplates = []string{
	"Research and gather necessary information",
	"Create initial draft or outline",
	"Review and refine the content",
	"Get stakeholder feedback",
	"Make final revisions and improvements",
	"Prepare supporting documentation",
	"Schedule follow-up meeting if needed",
	"Document findings and results",
	"Organize and structure materials",
	"Test and validate the approach",
}

var coachTemplates = map[MessageKind][]string{
	KindSessionStart: {
		"Let's crush this {duration}-minute session on {task}! You've got this!",
		"Ready to focus on {task}? Let's make these {duration} minutes count!",
		"Time to dive deep into {task}. Stay focused for {duration} minutes!",
		"Focus mode activated! {duration} minutes of pure productivity on {task}.",
		"You've dedicated {duration} minutes to {task}. Let's make them matter!",
	},
	KindHalfway: {
		"You're halfway there! Keep that momentum going!",
		"Great progress on {task}! You've got this!",
		"50% complete! Stay focused and finish strong!",
		"Halfway done with {task}! Maintain that focus!",
		"Strong work! Stay in the zone for the second half!",
	},
	KindBreak: {
		"Time for a break! Stand up, stretch, and recharge. You've earned it!",
		"Break time! Grab some water and give your eyes a rest.",
		"Excellent session! Take a walk and let your mind wander.",
		"Time to recharge! Take a short walk or do some light stretching.",
		"Session complete! Take time to breathe and reset.",
	},
	KindCompletion: {
		"Excellent work! You've successfully completed {task}!",
		"Task completed! Another win in the books!",
		"Mission accomplished! {task} is checked off your list!",
		"Well done! {task} is complete! You're making great progress!",
		"Outstanding work on {task}! You stayed focused and delivered!",
	},
}

// Fallback produces task drafts and coaching messages without any
// external dependency. It mirrors the Client surface so callers can
// swap it in when Cortex is unreachable or not configured.
type Fallback struct {
	rng *rand.Rand
}

// NewFallback creates a fallback AI seeded from the given source. A nil
// rng uses the shared package source.
func NewFallback(rng *rand.Rand) *Fallback {
	return &Fallback{rng: rng}
}

func (f *Fallback) intn(n int) int {
	if f.rng != nil {
		return f.rng.Intn(n)
	}
	return rand.Intn(n)
}

func (f *Fallback) float64() float64 {
	if f.rng != nil {
		return f.rng.Float64()
	}
	return rand.Float64()
}

// ParseJournal splits the entry into sentences and promotes up to five
// of them into task drafts with plausible durations and subtasks.
func (f *Fallback) ParseJournal(_ context.Context, journalText string) ([]TaskDraft, error) {
	var sentences []string
	for _, s := range sentenceSplit.Split(journalText, -1) {
		s = strings.TrimSpace(s)
		if len(s) > 10 {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return nil, nil
	}

	numTasks := 3 + f.intn(3)
	if numTasks > len(sentences) {
		numTasks = len(sentences)
	}

	drafts := make([]TaskDraft, 0, numTasks)
	for _, sentence := range sentences[:numTasks] {
		drafts = append(drafts, f.draftFromSentence(sentence))
	}
	return drafts, nil
}

func (f *Fallback) draftFromSentence(sentence string) TaskDraft {
	words := strings.Fields(sentence)
	titleLen := 5 + f.intn(3)
	if titleLen > len(words) {
		titleLen = len(words)
	}

	title := strings.Join(words[:titleLen], " ")
	title = leadingPhrase.ReplaceAllString(title, "")
	title = capitalize(title)
	if len(words) > titleLen && !strings.HasSuffix(title, "...") {
		title += "..."
	}

	duration := durationOptions[f.intn(len(durationOptions))]

	numSubtasks := 2 + f.intn(3)
	subtasks := f.sampleSubtasks(numSubtasks)

	// Longer tasks get a mild priority bump, capped at the band's top.
	base := 40 + f.float64()*40
	bump := float64(duration-30) / 90 * 10
	priority := math.Min(80, base+bump)
	priority = math.Round(priority*10) / 10

	return TaskDraft{
		Title:             title,
		Description:       sentence,
		EstimatedDuration: duration,
		Subtasks:          subtasks,
		PriorityScore:     priority,
	}
}

func (f *Fallback) sampleSubtasks(n int) []string {
	pool := make([]string, len(subtaskTemplates))
	copy(pool, subtaskTemplates)
	for i := len(pool) - 1; i > 0; i-- {
		j := f.intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

// CoachMessage picks a template for the event and substitutes context.
func (f *Fallback) CoachMessage(_ context.Context, kind MessageKind, taskName string, durationMinutes int) (string, error) {
	if taskName == "" {
		taskName = "this task"
	}
	if durationMinutes <= 0 {
		durationMinutes = 90
	}

	templates, ok := coachTemplates[kind]
	if !ok {
		return "Keep up the great work!", nil
	}

	msg := templates[f.intn(len(templates))]
	msg = strings.ReplaceAll(msg, "{task}", taskName)
	msg = strings.ReplaceAll(msg, "{duration}", strconv.Itoa(durationMinutes))
	return msg, nil
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
