package server

import (
	"encoding/json"
	"net/http"

	"focusflow/internal/cortex"
	"focusflow/internal/model"
	"focusflow/internal/service"
)

// JournalController handles journal capture and coach messages.
type JournalController struct {
	journal *service.JournalService
	coach   *service.CoachService
}

func NewJournalController(journal *service.JournalService, coach *service.CoachService) *JournalController {
	return &JournalController{journal: journal, coach: coach}
}

type captureJournalRequest struct {
	Text string `json:"text"`
}

type captureJournalResponse struct {
	Source string       `json:"source"`
	Tasks  []model.Task `json:"tasks"`
}

type coachRequest struct {
	Kind            string `json:"kind"`
	Task            string `json:"task"`
	DurationMinutes int    `json:"duration_minutes"`
}

type coachResponse struct {
	Message string `json:"message"`
}

// CaptureJournal handles POST /journal.
func (c *JournalController) CaptureJournal(w http.ResponseWriter, r *http.Request) {
	var req captureJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	tasks, source, err := c.journal.Capture(r.Context(), req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, captureJournalResponse{Source: source, Tasks: tasks})
}

// CoachMessage handles POST /coach.
func (c *JournalController) CoachMessage(w http.ResponseWriter, r *http.Request) {
	var req coachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	msg, err := c.coach.Message(r.Context(), cortex.MessageKind(req.Kind), req.Task, req.DurationMinutes)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coachResponse{Message: msg})
}
