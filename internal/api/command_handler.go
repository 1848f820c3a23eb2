package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskdesk/internal/api/shared"
	"github.com/phrazzld/taskdesk/internal/platform/logger"
	"github.com/phrazzld/taskdesk/internal/service"
)

// CommandRequest represents the request body for a natural-language command
type CommandRequest struct {
	Text string `json:"text"`
}

// CommandResponse represents the outcome of an executed command
type CommandResponse struct {
	Success bool           `json:"success"`
	Action  string         `json:"action"`
	Message string         `json:"message"`
	Task    *TaskResponse  `json:"task,omitempty"`
	Tasks   []TaskResponse `json:"tasks,omitempty"`
}

// CommandHandler handles natural-language command HTTP requests
type CommandHandler struct {
	commandService service.CommandService
	logger         *slog.Logger
}

// NewCommandHandler creates a new CommandHandler
func NewCommandHandler(commandService service.CommandService, logger *slog.Logger) *CommandHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CommandHandler")
	}

	return &CommandHandler{
		commandService: commandService,
		logger:         logger.With(slog.String("component", "command_handler")),
	}
}

// ExecuteCommand handles POST /command requests.
// Unrecognized or unactionable commands are a 200 with success=false; only
// malformed requests and infrastructure failures produce error status codes.
func (h *CommandHandler) ExecuteCommand(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CommandRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := h.commandService.Execute(r.Context(), req.Text)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := CommandResponse{
		Success: result.Success,
		Action:  result.Action,
		Message: result.Message,
	}
	if result.Task != nil {
		task := taskToResponse(result.Task)
		response.Task = &task
	}
	if result.Tasks != nil {
		response.Tasks = tasksToResponse(result.Tasks)
	}

	log.Debug("command executed",
		slog.String("action", result.Action),
		slog.Bool("success", result.Success))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
