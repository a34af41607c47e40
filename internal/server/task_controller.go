package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"focusflow/internal/model"
	"focusflow/internal/service"
)

// TaskController handles HTTP requests for tasks.
type TaskController struct {
	tasks *service.TaskService
}

func NewTaskController(tasks *service.TaskService) *TaskController {
	return &TaskController{tasks: tasks}
}

type createTaskRequest struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	EstimatedDuration int      `json:"estimated_duration"`
	PriorityScore     float64  `json:"priority_score"`
	Subtasks          []string `json:"subtasks"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// CreateTask handles POST /tasks.
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	task, err := c.tasks.CreateTask(r.Context(), service.TaskInput{
		Title:             req.Title,
		Description:       req.Description,
		EstimatedDuration: req.EstimatedDuration,
		PriorityScore:     req.PriorityScore,
		Subtasks:          req.Subtasks,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// ListTasks handles GET /tasks.
func (c *TaskController) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := c.tasks.ListTasks(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// GetTask handles GET /tasks/{taskID}.
func (c *TaskController) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["taskID"]
	task, err := c.tasks.GetTask(r.Context(), taskID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// UpdateStatus handles PATCH /tasks/{taskID}/status.
func (c *TaskController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["taskID"]

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	task, err := c.tasks.UpdateStatus(r.Context(), taskID, model.Status(req.Status))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}
