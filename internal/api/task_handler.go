// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskdesk/internal/api/shared"
	"github.com/phrazzld/taskdesk/internal/domain"
	"github.com/phrazzld/taskdesk/internal/platform/logger"
	"github.com/phrazzld/taskdesk/internal/service"
	"github.com/phrazzld/taskdesk/internal/store"
)

// TaskResponse represents the response data for a task
type TaskResponse struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     *string    `json:"description,omitempty"`
	Importance      int        `json:"importance"`
	Urgency         int        `json:"urgency"`
	DueDate         *string    `json:"due_date,omitempty"`
	DueTime         *string    `json:"due_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Status          string     `json:"status"`
	TaskType        string     `json:"task_type"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// taskToResponse transforms a domain task into its API representation.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:              task.ID,
		Title:           task.Title,
		Description:     task.Description,
		Importance:      task.Importance,
		Urgency:         task.Urgency,
		DueDate:         task.DueDate,
		DueTime:         task.DueTime,
		DurationMinutes: task.DurationMinutes,
		Status:          string(task.Status),
		TaskType:        string(task.TaskType),
		CompletedAt:     task.CompletedAt,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
	}
}

// tasksToResponse transforms a slice of domain tasks, always yielding a
// non-nil slice so empty results serialize as [].
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, taskToResponse(task))
	}
	return responses
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title           string  `json:"title"            validate:"required,max=500"`
	Description     *string `json:"description"      validate:"omitempty,max=5000"`
	Importance      *int    `json:"importance"       validate:"omitempty,min=1,max=5"`
	Urgency         *int    `json:"urgency"          validate:"omitempty,min=1,max=5"`
	DueDate         *string `json:"due_date"         validate:"omitempty,datetime=2006-01-02"`
	DueTime         *string `json:"due_time"         validate:"omitempty,datetime=15:04"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=1,max=1440"`
}

// UpdateTaskRequest represents the request body for updating a task.
// Absent fields are left untouched.
type UpdateTaskRequest struct {
	Title           *string `json:"title"            validate:"omitempty,min=1,max=500"`
	Description     *string `json:"description"      validate:"omitempty,max=5000"`
	Importance      *int    `json:"importance"       validate:"omitempty,min=1,max=5"`
	Urgency         *int    `json:"urgency"          validate:"omitempty,min=1,max=5"`
	DueDate         *string `json:"due_date"         validate:"omitempty,datetime=2006-01-02"`
	DueTime         *string `json:"due_time"         validate:"omitempty,datetime=15:04"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=1,max=1440"`
	Status          *string `json:"status"           validate:"omitempty,oneof=pending in_progress completed"`
	TaskType        *string `json:"task_type"        validate:"omitempty,oneof=calendar checklist"`
}

// TaskHandler handles task CRUD HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /tasks requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("validation error", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), service.CreateTaskParams{
		Title:           req.Title,
		Description:     req.Description,
		Importance:      req.Importance,
		Urgency:         req.Urgency,
		DueDate:         req.DueDate,
		DueTime:         req.DueTime,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task created", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks handles GET /tasks requests.
// Supported query parameters: status, date_filter, sort_by.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var status *domain.TaskStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.TaskStatus(raw)
		if !s.IsValid() {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid status")
			return
		}
		status = &s
	}

	dateFilter := r.URL.Query().Get("date_filter")
	switch dateFilter {
	case "", "today", "tomorrow", "week", "month":
	default:
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid date_filter")
		return
	}

	sortBy := store.TaskSortDueDate
	if raw := r.URL.Query().Get("sort_by"); raw != "" {
		sortBy = store.TaskSort(raw)
	}

	tasks, err := h.taskService.ListTasks(r.Context(), status, dateFilter, sortBy)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("tasks listed", slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskIDFromPath(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PUT /tasks/{id} requests
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.taskIDFromPath(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("validation error", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	updates := service.TaskUpdate{
		Title:           req.Title,
		Description:     req.Description,
		Importance:      req.Importance,
		Urgency:         req.Urgency,
		DueDate:         req.DueDate,
		DueTime:         req.DueTime,
		DurationMinutes: req.DurationMinutes,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		updates.Status = &status
	}
	if req.TaskType != nil {
		taskType := domain.TaskType(*req.TaskType)
		updates.TaskType = &taskType
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, updates)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task updated", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// CompleteTask handles PATCH /tasks/{id}/complete requests
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskIDFromPath(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.CompleteTask(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTaskResponse represents the response body for a successful delete
type DeleteTaskResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteTask handles DELETE /tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.taskIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task deleted", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteTaskResponse{
		Success: true,
		Message: "Task deleted",
	})
}

// taskIDFromPath parses the {id} URL parameter, responding with 400 on
// malformed input.
func (h *TaskHandler) taskIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		log := logger.FromContextOrDefault(r.Context(), h.logger)
		log.Warn("invalid task ID in URL path", slog.String("task_id", raw))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return 0, false
	}
	return id, true
}
