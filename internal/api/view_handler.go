package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/taskdesk/internal/api/shared"
	"github.com/phrazzld/taskdesk/internal/domain"
	"github.com/phrazzld/taskdesk/internal/platform/logger"
	"github.com/phrazzld/taskdesk/internal/service"
)

// maxCalendarRangeDays bounds the calendar query window.
const maxCalendarRangeDays = 365

// PriorityMatrixResponse groups task responses by Eisenhower quadrant
type PriorityMatrixResponse struct {
	UrgentImportant       []TaskResponse `json:"urgent_important"`
	NotUrgentImportant    []TaskResponse `json:"not_urgent_important"`
	UrgentNotImportant    []TaskResponse `json:"urgent_not_important"`
	NotUrgentNotImportant []TaskResponse `json:"not_urgent_not_important"`
}

// ViewHandler handles the derived read views: calendar and priority matrix
type ViewHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewViewHandler creates a new ViewHandler
func NewViewHandler(taskService service.TaskService, logger *slog.Logger) *ViewHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ViewHandler")
	}

	return &ViewHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "view_handler")),
	}
}

// GetCalendar handles GET /calendar requests.
// Both start_date and end_date are required ISO dates; the range must run
// forward and span at most a year.
func (h *ViewHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "start_date and end_date are required")
		return
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid start_date format")
		return
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid end_date format")
		return
	}

	if end.Before(start) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "end_date must not precede start_date")
		return
	}
	if end.Sub(start) > maxCalendarRangeDays*24*time.Hour {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Date range must not exceed 365 days")
		return
	}

	view, err := h.taskService.CalendarView(r.Context(), startDate, endDate)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := make(map[string][]TaskResponse, len(view))
	for date, tasks := range view {
		response[date] = tasksToResponse(tasks)
	}

	log.Debug("calendar view served",
		slog.String("start_date", startDate),
		slog.String("end_date", endDate),
		slog.Int("days", len(response)))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetPriorityMatrix handles GET /priority-matrix requests.
// Completed tasks are excluded unless include_completed=true.
func (h *ViewHandler) GetPriorityMatrix(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	includeCompleted := r.URL.Query().Get("include_completed") == "true"

	matrix, err := h.taskService.PriorityMatrix(r.Context(), includeCompleted)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("priority matrix served", slog.Bool("include_completed", includeCompleted))
	shared.RespondWithJSON(w, r, http.StatusOK, matrixToResponse(matrix))
}

func matrixToResponse(matrix *domain.PriorityMatrix) PriorityMatrixResponse {
	return PriorityMatrixResponse{
		UrgentImportant:       tasksToResponse(matrix.UrgentImportant),
		NotUrgentImportant:    tasksToResponse(matrix.NotUrgentImportant),
		UrgentNotImportant:    tasksToResponse(matrix.UrgentNotImportant),
		NotUrgentNotImportant: tasksToResponse(matrix.NotUrgentNotImportant),
	}
}
