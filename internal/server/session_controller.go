package server

import (
	"encoding/json"
	"net/http"
	"time"

	"focusflow/internal/service"
)

// SessionController handles HTTP requests for work sessions and
// statistics.
type SessionController struct {
	sessions *service.SessionService
}

func NewSessionController(sessions *service.SessionService) *SessionController {
	return &SessionController{sessions: sessions}
}

type createSessionRequest struct {
	TaskID          string    `json:"task_id"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Completed       bool      `json:"completed"`
}

// CreateSession handles POST /sessions.
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	session, err := c.sessions.RecordSession(r.Context(), req.TaskID, req.StartTime, req.DurationMinutes, req.Completed)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

// GetStatistics handles GET /statistics?date=YYYY-MM-DD. A missing date
// means today.
func (c *SessionController) GetStatistics(w http.ResponseWriter, r *http.Request) {
	var date time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
			return
		}
		date = parsed
	}

	stats, err := c.sessions.Statistics(r.Context(), date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
