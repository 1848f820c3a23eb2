package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/taskdesk/internal/domain"
	"github.com/phrazzld/taskdesk/internal/nlp"
	"github.com/phrazzld/taskdesk/internal/store"
)

// Actions reported in command results.
const (
	ActionTaskCreated    = "task_created"
	ActionTasksListed    = "tasks_listed"
	ActionTaskCompleted  = "task_completed"
	ActionTaskDeleted    = "task_deleted"
	ActionUnknownCommand = "unknown_command"
	ActionError          = "error"
)

// CommandResult is the outcome of interpreting and executing one
// natural-language command.
type CommandResult struct {
	Success bool           `json:"success"`
	Action  string         `json:"action"`
	Message string         `json:"message"`
	Task    *domain.Task   `json:"task,omitempty"`
	Tasks   []*domain.Task `json:"tasks,omitempty"`
}

// CommandService interprets natural-language commands and executes them
// against the task service.
type CommandService interface {
	// Execute parses the command text, dispatches on the detected intent and
	// returns the outcome. Failures to act (empty title, task not found,
	// unrecognized command) are reported in the result, not as errors;
	// errors are reserved for infrastructure failures.
	Execute(ctx context.Context, text string) (*CommandResult, error)
}

// commandServiceImpl implements the CommandService interface
type commandServiceImpl struct {
	parser      *nlp.Parser
	taskService TaskService
	logger      *slog.Logger
}

// NewCommandService creates a new CommandService.
// It returns an error if the parser or task service is nil.
func NewCommandService(
	parser *nlp.Parser,
	taskService TaskService,
	logger *slog.Logger,
) (CommandService, error) {
	if parser == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "parser cannot be nil",
		}
	}
	if taskService == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskService cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &commandServiceImpl{
		parser:      parser,
		taskService: taskService,
		logger:      logger.With("component", "command_service"),
	}, nil
}

// Execute implements CommandService.Execute
func (s *commandServiceImpl) Execute(ctx context.Context, text string) (*CommandResult, error) {
	if strings.TrimSpace(text) == "" {
		return &CommandResult{
			Success: false,
			Action:  ActionError,
			Message: "Command cannot be empty",
		}, nil
	}

	parsed := s.parser.Parse(text)
	s.logger.Debug("command parsed",
		slog.String("intent", string(parsed.Intent)))

	switch parsed.Intent {
	case nlp.IntentAddTask:
		return s.addTask(ctx, parsed)
	case nlp.IntentListTasks:
		return s.listTasks(ctx, parsed)
	case nlp.IntentCompleteTask:
		return s.completeTask(ctx, parsed)
	case nlp.IntentDeleteTask:
		return s.deleteTask(ctx, parsed)
	default:
		return &CommandResult{
			Success: false,
			Action:  ActionUnknownCommand,
			Message: parsed.Message,
		}, nil
	}
}

func (s *commandServiceImpl) addTask(
	ctx context.Context,
	parsed nlp.ParsedCommand,
) (*CommandResult, error) {
	if parsed.Entities.Title == "" {
		return &CommandResult{
			Success: false,
			Action:  ActionError,
			Message: "Could not extract task title",
		}, nil
	}

	params := CreateTaskParams{
		Title:      parsed.Entities.Title,
		Importance: parsed.Entities.Importance,
		DueDate:    parsed.Entities.DueDate,
		DueTime:    parsed.Entities.DueTime,
	}

	task, err := s.taskService.CreateTask(ctx, params)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Task '%s' added", task.Title)
	if task.DueDate != nil {
		message += fmt.Sprintf(" for %s", *task.DueDate)
		if task.DueTime != nil {
			message += fmt.Sprintf(" at %s", *task.DueTime)
		}
	}

	return &CommandResult{
		Success: true,
		Action:  ActionTaskCreated,
		Message: message,
		Task:    task,
	}, nil
}

func (s *commandServiceImpl) listTasks(
	ctx context.Context,
	parsed nlp.ParsedCommand,
) (*CommandResult, error) {
	sortBy := store.TaskSortDueDate
	switch parsed.Entities.SortBy {
	case "urgency":
		sortBy = store.TaskSortUrgency
	case "importance":
		sortBy = store.TaskSortImportance
	}

	pending := domain.TaskStatusPending
	tasks, err := s.taskService.ListTasks(ctx, &pending, parsed.Entities.DateFilter, sortBy)
	if err != nil {
		return nil, err
	}

	// Priority filters are narrowed in memory on top of the date window.
	if parsed.Entities.UrgencyFilter == "high" {
		tasks = filterByMinPriority(tasks, func(t *domain.Task) int { return t.Urgency })
	}
	if parsed.Entities.ImportanceFilter == "high" {
		tasks = filterByMinPriority(tasks, func(t *domain.Task) int { return t.Importance })
	}

	message := fmt.Sprintf("Found %d task", len(tasks))
	if len(tasks) != 1 {
		message += "s"
	}
	if parsed.Entities.DateFilter != "" {
		message += fmt.Sprintf(" for %s", parsed.Entities.DateFilter)
	}

	return &CommandResult{
		Success: true,
		Action:  ActionTasksListed,
		Message: message,
		Tasks:   tasks,
	}, nil
}

func (s *commandServiceImpl) completeTask(
	ctx context.Context,
	parsed nlp.ParsedCommand,
) (*CommandResult, error) {
	task, err := s.resolveTask(ctx, parsed.Entities)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return &CommandResult{
				Success: false,
				Action:  ActionError,
				Message: "Could not find task to complete",
			}, nil
		}
		return nil, err
	}

	completed, err := s.taskService.CompleteTask(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	return &CommandResult{
		Success: true,
		Action:  ActionTaskCompleted,
		Message: fmt.Sprintf("Task '%s' marked as complete", completed.Title),
		Task:    completed,
	}, nil
}

func (s *commandServiceImpl) deleteTask(
	ctx context.Context,
	parsed nlp.ParsedCommand,
) (*CommandResult, error) {
	task, err := s.resolveTask(ctx, parsed.Entities)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return &CommandResult{
				Success: false,
				Action:  ActionError,
				Message: "Could not find task to delete",
			}, nil
		}
		return nil, err
	}

	if err := s.taskService.DeleteTask(ctx, task.ID); err != nil {
		return nil, err
	}

	return &CommandResult{
		Success: true,
		Action:  ActionTaskDeleted,
		Message: fmt.Sprintf("Task '%s' deleted", task.Title),
		Task:    task,
	}, nil
}

// resolveTask finds the referenced task. An explicit number is tried first;
// a title fragment is the fallback when the number misses.
func (s *commandServiceImpl) resolveTask(
	ctx context.Context,
	entities nlp.Entities,
) (*domain.Task, error) {
	if entities.TaskID != nil {
		task, err := s.taskService.GetTask(ctx, *entities.TaskID)
		if err == nil {
			return task, nil
		}
		if !errors.Is(err, ErrTaskNotFound) || entities.TaskTitle == "" {
			return nil, err
		}
	}
	if entities.TaskTitle != "" {
		return s.taskService.FindTaskByTitle(ctx, entities.TaskTitle)
	}
	return nil, NewTaskServiceError("resolve_task", "no task reference", store.ErrTaskNotFound)
}

func filterByMinPriority(
	tasks []*domain.Task,
	priority func(*domain.Task) int,
) []*domain.Task {
	filtered := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if priority(t) >= 4 {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
