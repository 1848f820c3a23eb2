package domain

import (
	"fmt"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

// Possible task status values
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskType distinguishes time-anchored tasks from plain checklist items.
type TaskType string

// Possible task type values
const (
	TaskTypeCalendar  TaskType = "calendar"
	TaskTypeChecklist TaskType = "checklist"
)

// Field length and range limits for Task.
const (
	MaxTitleLength       = 500
	MaxDescriptionLength = 5000
	MinPriority          = 1
	MaxPriority          = 5
	MinDurationMinutes   = 1
	MaxDurationMinutes   = 1440
)

// Layouts for the stringly-typed due fields.
const (
	isoDateLayout = "2006-01-02"
	clockLayout   = "15:04"
)

// Task-specific validation errors. Range and consistency failures wrap
// ErrValidation, malformed due fields wrap ErrInvalidFormat; either way
// callers can match the family with errors.Is.
var (
	ErrTaskTitleEmpty      = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	ErrTaskTitleTooLong    = fmt.Errorf("%w: task title exceeds maximum length", ErrValidation)
	ErrTaskDescTooLong     = fmt.Errorf("%w: task description exceeds maximum length", ErrValidation)
	ErrTaskPriorityRange   = fmt.Errorf("%w: task importance and urgency must be between 1 and 5", ErrValidation)
	ErrTaskDurationRange   = fmt.Errorf("%w: task duration must be between 1 and 1440 minutes", ErrValidation)
	ErrTaskDueDateFormat   = fmt.Errorf("%w: due_date must be YYYY-MM-DD", ErrInvalidFormat)
	ErrTaskDueTimeFormat   = fmt.Errorf("%w: due_time must be HH:MM", ErrInvalidFormat)
	ErrInvalidTaskStatus   = fmt.Errorf("%w: invalid task status", ErrValidation)
	ErrInvalidTaskType     = fmt.Errorf("%w: invalid task type", ErrValidation)
	ErrTaskCompletionStamp = fmt.Errorf("%w: completed_at must be set exactly when status is completed", ErrValidation)
)

// Task represents a single task in the user's list. Due date and time are
// kept as ISO strings (YYYY-MM-DD, HH:MM); Validate rejects malformed
// values and all filtering compares them lexicographically.
type Task struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     *string    `json:"description,omitempty"`
	Importance      int        `json:"importance"`
	Urgency         int        `json:"urgency"`
	DueDate         *string    `json:"due_date,omitempty"`
	DueTime         *string    `json:"due_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Status          TaskStatus `json:"status"`
	TaskType        TaskType   `json:"task_type"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ClampPriority restricts an importance or urgency value to the 1-5 scale.
func ClampPriority(v int) int {
	if v < MinPriority {
		return MinPriority
	}
	if v > MaxPriority {
		return MaxPriority
	}
	return v
}

// DefaultTaskType returns the task type applied at creation when none is
// given: calendar when a due time is present, checklist otherwise.
func DefaultTaskType(dueTime *string) TaskType {
	if dueTime != nil && *dueTime != "" {
		return TaskTypeCalendar
	}
	return TaskTypeChecklist
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrTaskTitleEmpty
	}

	if len(t.Title) > MaxTitleLength {
		return ErrTaskTitleTooLong
	}

	if t.Description != nil && len(*t.Description) > MaxDescriptionLength {
		return ErrTaskDescTooLong
	}

	if t.Importance < MinPriority || t.Importance > MaxPriority ||
		t.Urgency < MinPriority || t.Urgency > MaxPriority {
		return ErrTaskPriorityRange
	}

	if t.DurationMinutes != nil &&
		(*t.DurationMinutes < MinDurationMinutes || *t.DurationMinutes > MaxDurationMinutes) {
		return ErrTaskDurationRange
	}

	if t.DueDate != nil {
		if _, err := time.Parse(isoDateLayout, *t.DueDate); err != nil {
			return ErrTaskDueDateFormat
		}
	}

	if t.DueTime != nil {
		if _, err := time.Parse(clockLayout, *t.DueTime); err != nil {
			return ErrTaskDueTimeFormat
		}
	}

	if !t.Status.IsValid() {
		return ErrInvalidTaskStatus
	}

	if !t.TaskType.IsValid() {
		return ErrInvalidTaskType
	}

	// completed_at is non-null iff the task is completed
	if (t.Status == TaskStatusCompleted) != (t.CompletedAt != nil) {
		return ErrTaskCompletionStamp
	}

	return nil
}

// Complete marks the task as completed and stamps the completion time.
func (t *Task) Complete(now time.Time) {
	t.Status = TaskStatusCompleted
	completedAt := now.UTC()
	t.CompletedAt = &completedAt
	t.UpdatedAt = now.UTC()
}

// IsValid reports whether the status is one of the recognized values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// IsValid reports whether the task type is one of the recognized values.
func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeCalendar, TaskTypeChecklist:
		return true
	default:
		return false
	}
}
