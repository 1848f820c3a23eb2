package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/taskdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestViewHandler_GetCalendar(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		taskService := &MockTaskService{}
		taskService.On("CalendarView", mock.Anything, "2026-09-01", "2026-09-07").
			Return(map[string][]*domain.Task{
				"2026-09-01": {sampleTask()},
			}, nil)

		handler := NewViewHandler(taskService, slog.Default())

		req := httptest.NewRequest(
			http.MethodGet,
			"/api/calendar?start_date=2026-09-01&end_date=2026-09-07",
			nil,
		)
		w := httptest.NewRecorder()

		handler.GetCalendar(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string][]TaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp["2026-09-01"], 1)
		taskService.AssertExpectations(t)
	})

	t.Run("missing parameters", func(t *testing.T) {
		handler := NewViewHandler(&MockTaskService{}, slog.Default())

		req := httptest.NewRequest(http.MethodGet, "/api/calendar?start_date=2026-09-01", nil)
		w := httptest.NewRecorder()

		handler.GetCalendar(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		handler := NewViewHandler(&MockTaskService{}, slog.Default())

		req := httptest.NewRequest(
			http.MethodGet,
			"/api/calendar?start_date=01-09-2026&end_date=2026-09-07",
			nil,
		)
		w := httptest.NewRecorder()

		handler.GetCalendar(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reversed range", func(t *testing.T) {
		handler := NewViewHandler(&MockTaskService{}, slog.Default())

		req := httptest.NewRequest(
			http.MethodGet,
			"/api/calendar?start_date=2026-09-07&end_date=2026-09-01",
			nil,
		)
		w := httptest.NewRecorder()

		handler.GetCalendar(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("range over a year", func(t *testing.T) {
		handler := NewViewHandler(&MockTaskService{}, slog.Default())

		req := httptest.NewRequest(
			http.MethodGet,
			"/api/calendar?start_date=2026-01-01&end_date=2027-06-01",
			nil,
		)
		w := httptest.NewRecorder()

		handler.GetCalendar(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestViewHandler_GetPriorityMatrix(t *testing.T) {
	t.Run("default excludes completed", func(t *testing.T) {
		matrix := domain.NewPriorityMatrix([]*domain.Task{sampleTask()})

		taskService := &MockTaskService{}
		taskService.On("PriorityMatrix", mock.Anything, false).Return(matrix, nil)

		handler := NewViewHandler(taskService, slog.Default())

		req := httptest.NewRequest(http.MethodGet, "/api/priority-matrix", nil)
		w := httptest.NewRecorder()

		handler.GetPriorityMatrix(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp PriorityMatrixResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		// sampleTask has urgency 4, importance 3.
		require.Len(t, resp.UrgentImportant, 1)
		assert.Empty(t, resp.NotUrgentNotImportant)
		taskService.AssertExpectations(t)
	})

	t.Run("include_completed flag", func(t *testing.T) {
		matrix := domain.NewPriorityMatrix(nil)

		taskService := &MockTaskService{}
		taskService.On("PriorityMatrix", mock.Anything, true).Return(matrix, nil)

		handler := NewViewHandler(taskService, slog.Default())

		req := httptest.NewRequest(
			http.MethodGet,
			"/api/priority-matrix?include_completed=true",
			nil,
		)
		w := httptest.NewRecorder()

		handler.GetPriorityMatrix(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		taskService.AssertExpectations(t)
	})

	t.Run("empty quadrants serialize as arrays", func(t *testing.T) {
		taskService := &MockTaskService{}
		taskService.On("PriorityMatrix", mock.Anything, false).
			Return(domain.NewPriorityMatrix(nil), nil)

		handler := NewViewHandler(taskService, slog.Default())

		req := httptest.NewRequest(http.MethodGet, "/api/priority-matrix", nil)
		w := httptest.NewRecorder()

		handler.GetPriorityMatrix(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "null")
	})
}
