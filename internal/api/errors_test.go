package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/taskdesk/internal/api/shared"
	"github.com/phrazzld/taskdesk/internal/domain"
	"github.com/phrazzld/taskdesk/internal/service"
	"github.com/phrazzld/taskdesk/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"service not found", service.ErrTaskNotFound, http.StatusNotFound},
		{"store not found", store.ErrTaskNotFound, http.StatusNotFound},
		{
			"wrapped not found",
			fmt.Errorf("lookup: %w", service.ErrTaskNotFound),
			http.StatusNotFound,
		},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"domain validation", domain.ErrTaskTitleEmpty, http.StatusBadRequest},
		{"malformed due field", domain.ErrTaskDueDateFormat, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Task not found", GetSafeErrorMessage(service.ErrTaskNotFound))
	assert.Equal(t, "Invalid task data", GetSafeErrorMessage(domain.ErrTaskPriorityRange))
	assert.Equal(t, "Invalid task data", GetSafeErrorMessage(domain.ErrTaskDueTimeFormat))
	assert.Equal(
		t,
		"An unexpected error occurred",
		GetSafeErrorMessage(errors.New("pq: relation missing")),
	)
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	req := CreateTaskRequest{Title: ""}
	err := validationErrorFor(t, req)

	msg := SanitizeValidationError(err)
	assert.Contains(t, msg, "Title")
	assert.NotContains(t, msg, "CreateTaskRequest")
}

func validationErrorFor(t *testing.T, v interface{}) error {
	t.Helper()
	err := shared.ValidateRequest(v)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	return err
}
