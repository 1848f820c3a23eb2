package domain

import (
	"strings"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validTask() Task {
	return Task{
		ID:         1,
		Title:      "call dentist",
		Importance: 3,
		Urgency:    3,
		Status:     TaskStatusPending,
		TaskType:   TaskTypeChecklist,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
}

func TestClampPriority(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{3, 3},
		{5, 5},
		{6, 5},
		{100, 5},
	}

	for _, tc := range cases {
		if got := ClampPriority(tc.in); got != tc.want {
			t.Errorf("ClampPriority(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestDefaultTaskType(t *testing.T) {
	t.Parallel()

	if got := DefaultTaskType(strPtr("14:00")); got != TaskTypeCalendar {
		t.Errorf("Expected calendar type with due time, got %s", got)
	}

	if got := DefaultTaskType(nil); got != TaskTypeChecklist {
		t.Errorf("Expected checklist type without due time, got %s", got)
	}

	if got := DefaultTaskType(strPtr("")); got != TaskTypeChecklist {
		t.Errorf("Expected checklist type for empty due time, got %s", got)
	}
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	task := validTask()
	if err := task.Validate(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Empty title
	task = validTask()
	task.Title = ""
	if err := task.Validate(); err != ErrTaskTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleEmpty, err)
	}

	// Title too long
	task = validTask()
	task.Title = strings.Repeat("x", MaxTitleLength+1)
	if err := task.Validate(); err != ErrTaskTitleTooLong {
		t.Errorf("Expected error %v, got %v", ErrTaskTitleTooLong, err)
	}

	// Description too long
	task = validTask()
	task.Description = strPtr(strings.Repeat("x", MaxDescriptionLength+1))
	if err := task.Validate(); err != ErrTaskDescTooLong {
		t.Errorf("Expected error %v, got %v", ErrTaskDescTooLong, err)
	}

	// Importance out of range
	task = validTask()
	task.Importance = 6
	if err := task.Validate(); err != ErrTaskPriorityRange {
		t.Errorf("Expected error %v, got %v", ErrTaskPriorityRange, err)
	}

	// Urgency out of range
	task = validTask()
	task.Urgency = 0
	if err := task.Validate(); err != ErrTaskPriorityRange {
		t.Errorf("Expected error %v, got %v", ErrTaskPriorityRange, err)
	}

	// Duration out of range
	task = validTask()
	task.DurationMinutes = intPtr(1441)
	if err := task.Validate(); err != ErrTaskDurationRange {
		t.Errorf("Expected error %v, got %v", ErrTaskDurationRange, err)
	}

	// Malformed due date
	task = validTask()
	task.DueDate = strPtr("tomorrow")
	if err := task.Validate(); err != ErrTaskDueDateFormat {
		t.Errorf("Expected error %v, got %v", ErrTaskDueDateFormat, err)
	}

	// Malformed due time
	task = validTask()
	task.DueTime = strPtr("2pm")
	if err := task.Validate(); err != ErrTaskDueTimeFormat {
		t.Errorf("Expected error %v, got %v", ErrTaskDueTimeFormat, err)
	}

	// Well-formed due fields pass
	task = validTask()
	task.DueDate = strPtr("2026-08-27")
	task.DueTime = strPtr("14:00")
	if err := task.Validate(); err != nil {
		t.Errorf("Expected no error for valid due fields, got %v", err)
	}

	// Invalid status
	task = validTask()
	task.Status = "archived"
	if err := task.Validate(); err != ErrInvalidTaskStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskStatus, err)
	}

	// Invalid type
	task = validTask()
	task.TaskType = "reminder"
	if err := task.Validate(); err != ErrInvalidTaskType {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskType, err)
	}

	// Completed without a completion stamp
	task = validTask()
	task.Status = TaskStatusCompleted
	if err := task.Validate(); err != ErrTaskCompletionStamp {
		t.Errorf("Expected error %v, got %v", ErrTaskCompletionStamp, err)
	}

	// Completion stamp on a pending task
	task = validTask()
	now := time.Now().UTC()
	task.CompletedAt = &now
	if err := task.Validate(); err != ErrTaskCompletionStamp {
		t.Errorf("Expected error %v, got %v", ErrTaskCompletionStamp, err)
	}
}

func TestTaskComplete(t *testing.T) {
	t.Parallel()

	task := validTask()
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

	task.Complete(now)

	if task.Status != TaskStatusCompleted {
		t.Errorf("Expected status %s, got %s", TaskStatusCompleted, task.Status)
	}

	if task.CompletedAt == nil || !task.CompletedAt.Equal(now) {
		t.Errorf("Expected CompletedAt %v, got %v", now, task.CompletedAt)
	}

	if !task.UpdatedAt.Equal(now) {
		t.Errorf("Expected UpdatedAt %v, got %v", now, task.UpdatedAt)
	}

	if err := task.Validate(); err != nil {
		t.Errorf("Expected completed task to validate, got %v", err)
	}
}
