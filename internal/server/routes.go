// Package server exposes the Focus Flow HTTP API.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter sets up all routes for the application.
func NewRouter(tasks *TaskController, sessions *SessionController, journal *JournalController) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/tasks", tasks.CreateTask).Methods(http.MethodPost)
	router.HandleFunc("/tasks", tasks.ListTasks).Methods(http.MethodGet)
	router.HandleFunc("/tasks/{taskID}", tasks.GetTask).Methods(http.MethodGet)
	router.HandleFunc("/tasks/{taskID}/status", tasks.UpdateStatus).Methods(http.MethodPatch)

	router.HandleFunc("/sessions", sessions.CreateSession).Methods(http.MethodPost)
	router.HandleFunc("/statistics", sessions.GetStatistics).Methods(http.MethodGet)

	router.HandleFunc("/journal", journal.CaptureJournal).Methods(http.MethodPost)
	router.HandleFunc("/coach", journal.CoachMessage).Methods(http.MethodPost)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	return router
}
