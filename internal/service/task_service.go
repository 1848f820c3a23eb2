package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/taskdesk/internal/domain"
	"github.com/phrazzld/taskdesk/internal/store"
)

// Defaults applied when a create request omits importance or urgency.
const defaultPriority = 3

// CreateTaskParams carries the fields for a new task. Nil optional fields
// take their defaults: importance/urgency 3, task type derived from the
// presence of a due time.
type CreateTaskParams struct {
	Title           string
	Description     *string
	Importance      *int
	Urgency         *int
	DueDate         *string
	DueTime         *string
	DurationMinutes *int
	TaskType        domain.TaskType
}

// TaskUpdate is the fixed allow-list of mutable task fields. Nil entries
// are ignored; anything not listed here cannot be changed through an
// update.
type TaskUpdate struct {
	Title           *string
	Description     *string
	Importance      *int
	Urgency         *int
	DueDate         *string
	DueTime         *string
	DurationMinutes *int
	Status          *domain.TaskStatus
	TaskType        *domain.TaskType
}

// TaskService provides task lifecycle operations and the derived read views.
type TaskService interface {
	// CreateTask creates a new task, clamping importance/urgency to the 1-5
	// scale and defaulting the task type from the due time.
	CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error)

	// GetTask retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// ListTasks returns tasks filtered by status and date window, sorted by
	// the given order. A nil status excludes completed tasks. dateFilter is
	// one of "", "today", "tomorrow", "week", "month".
	ListTasks(
		ctx context.Context,
		status *domain.TaskStatus,
		dateFilter string,
		sortBy store.TaskSort,
	) ([]*domain.Task, error)

	// UpdateTask applies the non-nil fields of the update to the task.
	// Returns ErrTaskNotFound if the task does not exist.
	UpdateTask(ctx context.Context, id int64, updates TaskUpdate) (*domain.Task, error)

	// CompleteTask marks a task completed and stamps its completion time.
	// Returns ErrTaskNotFound if the task does not exist.
	CompleteTask(ctx context.Context, id int64) (*domain.Task, error)

	// DeleteTask permanently removes a task.
	// Returns ErrTaskNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id int64) error

	// FindTaskByTitle returns the first task whose title contains the given
	// substring, case-insensitively.
	// Returns ErrTaskNotFound if no task matches.
	FindTaskByTitle(ctx context.Context, title string) (*domain.Task, error)

	// PriorityMatrix groups tasks into the four Eisenhower quadrants.
	// Completed tasks are excluded unless includeCompleted is true.
	PriorityMatrix(ctx context.Context, includeCompleted bool) (*domain.PriorityMatrix, error)

	// CalendarView returns non-completed tasks with a due date in the
	// inclusive [startDate, endDate] range, grouped by due date and ordered
	// by due date then due time within each group. The range is assumed to
	// be pre-validated by the boundary layer.
	CalendarView(ctx context.Context, startDate, endDate string) (map[string][]*domain.Task, error)
}

// TaskServiceOption customizes a TaskService.
type TaskServiceOption func(*taskServiceImpl)

// WithClock overrides the service clock, used by tests to pin "today".
func WithClock(now func() time.Time) TaskServiceOption {
	return func(s *taskServiceImpl) {
		s.now = now
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
	now       func() time.Time
}

// NewTaskService creates a new TaskService.
// It returns an error if the task store is nil.
func NewTaskService(
	taskStore store.TaskStore,
	logger *slog.Logger,
	opts ...TaskServiceOption,
) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With("component", "task_service"),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	params CreateTaskParams,
) (*domain.Task, error) {
	importance := defaultPriority
	if params.Importance != nil {
		importance = domain.ClampPriority(*params.Importance)
	}

	urgency := defaultPriority
	if params.Urgency != nil {
		urgency = domain.ClampPriority(*params.Urgency)
	}

	taskType := params.TaskType
	if taskType == "" {
		taskType = domain.DefaultTaskType(params.DueTime)
	}

	now := s.now().UTC()
	task := &domain.Task{
		Title:           params.Title,
		Description:     params.Description,
		Importance:      importance,
		Urgency:         urgency,
		DueDate:         params.DueDate,
		DueTime:         params.DueTime,
		DurationMinutes: params.DurationMinutes,
		Status:          domain.TaskStatusPending,
		TaskType:        taskType,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, NewTaskServiceError("create_task", "failed to create task", err)
	}

	s.logger.Info("task created",
		slog.Int64("task_id", task.ID),
		slog.String("task_type", string(task.TaskType)))
	return task, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("get_task", "failed to get task", err)
	}
	return task, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(
	ctx context.Context,
	status *domain.TaskStatus,
	dateFilter string,
	sortBy store.TaskSort,
) ([]*domain.Task, error) {
	q := store.ListQuery{
		Status: status,
		SortBy: sortBy,
	}

	today := s.now()
	switch dateFilter {
	case "today":
		d := today.Format(datetimeISODate)
		q.DueOn = &d
	case "tomorrow":
		d := today.AddDate(0, 0, 1).Format(datetimeISODate)
		q.DueOn = &d
	case "week":
		// Fixed 7-day window from today, inclusive.
		from := today.Format(datetimeISODate)
		to := today.AddDate(0, 0, 7).Format(datetimeISODate)
		q.DueFrom = &from
		q.DueTo = &to
	case "month":
		// Fixed 30-day window from today, inclusive. Deliberately not
		// calendar-month-aware.
		from := today.Format(datetimeISODate)
		to := today.AddDate(0, 0, 30).Format(datetimeISODate)
		q.DueFrom = &from
		q.DueTo = &to
	}

	tasks, err := s.taskStore.List(ctx, q)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	updates TaskUpdate,
) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("update_task", "failed to get task", err)
	}

	if updates.Title != nil {
		task.Title = *updates.Title
	}
	if updates.Description != nil {
		task.Description = updates.Description
	}
	if updates.Importance != nil {
		task.Importance = *updates.Importance
	}
	if updates.Urgency != nil {
		task.Urgency = *updates.Urgency
	}
	if updates.DueDate != nil {
		task.DueDate = updates.DueDate
	}
	if updates.DueTime != nil {
		task.DueTime = updates.DueTime
	}
	if updates.DurationMinutes != nil {
		task.DurationMinutes = updates.DurationMinutes
	}
	if updates.TaskType != nil {
		task.TaskType = *updates.TaskType
	}
	if updates.Status != nil {
		// Keep the completion stamp consistent with the status.
		switch {
		case *updates.Status == domain.TaskStatusCompleted && task.Status != domain.TaskStatusCompleted:
			completedAt := s.now().UTC()
			task.CompletedAt = &completedAt
		case *updates.Status != domain.TaskStatusCompleted:
			task.CompletedAt = nil
		}
		task.Status = *updates.Status
	}

	task.UpdatedAt = s.now().UTC()

	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	return task, nil
}

// CompleteTask implements TaskService.CompleteTask
func (s *taskServiceImpl) CompleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("complete_task", "failed to get task", err)
	}

	task.Complete(s.now())

	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, NewTaskServiceError("complete_task", "failed to update task", err)
	}

	s.logger.Info("task completed", slog.Int64("task_id", task.ID))
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := s.taskStore.Delete(ctx, id); err != nil {
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	s.logger.Info("task deleted", slog.Int64("task_id", id))
	return nil
}

// FindTaskByTitle implements TaskService.FindTaskByTitle
func (s *taskServiceImpl) FindTaskByTitle(ctx context.Context, title string) (*domain.Task, error) {
	task, err := s.taskStore.FindByTitle(ctx, title)
	if err != nil {
		return nil, NewTaskServiceError("find_task_by_title", "failed to find task", err)
	}
	return task, nil
}

// PriorityMatrix implements TaskService.PriorityMatrix
func (s *taskServiceImpl) PriorityMatrix(
	ctx context.Context,
	includeCompleted bool,
) (*domain.PriorityMatrix, error) {
	tasks, err := s.taskStore.List(ctx, store.ListQuery{
		IncludeCompleted: includeCompleted,
	})
	if err != nil {
		return nil, NewTaskServiceError("priority_matrix", "failed to list tasks", err)
	}

	return domain.NewPriorityMatrix(tasks), nil
}

// CalendarView implements TaskService.CalendarView
func (s *taskServiceImpl) CalendarView(
	ctx context.Context,
	startDate, endDate string,
) (map[string][]*domain.Task, error) {
	tasks, err := s.taskStore.List(ctx, store.ListQuery{
		DueFrom: &startDate,
		DueTo:   &endDate,
		SortBy:  store.TaskSortDueDate,
	})
	if err != nil {
		return nil, NewTaskServiceError("calendar_view", "failed to list tasks", err)
	}

	// Grouping preserves the due_date, due_time ordering within each day.
	return domain.GroupByDueDate(tasks), nil
}

// datetimeISODate is the layout for the ISO dates used in filters.
const datetimeISODate = "2006-01-02"
