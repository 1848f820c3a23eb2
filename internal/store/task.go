package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/taskdesk/internal/domain"
)

// TaskSort selects the ordering of task list results.
type TaskSort string

// Supported sort orders. Each names its primary key; the secondary key is
// fixed: urgency and importance sorts fall back to due date, the due-date
// sort falls back to due time, and the default is newest-created first.
const (
	TaskSortUrgency    TaskSort = "urgency"
	TaskSortImportance TaskSort = "importance"
	TaskSortDueDate    TaskSort = "due_date"
	TaskSortCreatedAt  TaskSort = "created_at"
)

// ListQuery describes the filtering and ordering of a task list request.
// The zero value lists all non-completed tasks newest first.
type ListQuery struct {
	// Status filters to exactly this status when set. When nil, completed
	// tasks are excluded unless IncludeCompleted is true.
	Status *domain.TaskStatus

	// IncludeCompleted lifts the default completed-task exclusion when
	// Status is nil. It has no effect when Status is set.
	IncludeCompleted bool

	// DueOn keeps only tasks due exactly on this ISO date.
	DueOn *string

	// DueFrom/DueTo keep only tasks whose due date falls in the inclusive
	// [DueFrom, DueTo] window.
	DueFrom *string
	DueTo   *string

	// SortBy selects the ordering; empty or unknown values fall back to
	// TaskSortCreatedAt.
	SortBy TaskSort
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store and assigns its ID.
	// It handles domain validation internally.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// List retrieves tasks matching the query, in the query's sort order.
	// Returns an empty slice if no tasks match.
	List(ctx context.Context, q ListQuery) ([]*domain.Task, error)

	// Update saves changes to an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	// Returns validation errors if the task data is invalid.
	Update(ctx context.Context, task *domain.Task) error

	// Delete permanently removes a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// FindByTitle retrieves the first task whose title contains the given
	// substring, case-insensitively.
	// Returns ErrTaskNotFound if no task matches.
	FindByTitle(ctx context.Context, title string) (*domain.Task, error)

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) TaskStore
}
