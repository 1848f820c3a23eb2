package api

import (
	"context"

	"github.com/phrazzld/taskdesk/internal/domain"
	"github.com/phrazzld/taskdesk/internal/service"
	"github.com/phrazzld/taskdesk/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockTaskService mocks the service.TaskService interface
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) CreateTask(
	ctx context.Context,
	params service.CreateTaskParams,
) (*domain.Task, error) {
	args := m.Called(ctx, params)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) ListTasks(
	ctx context.Context,
	status *domain.TaskStatus,
	dateFilter string,
	sortBy store.TaskSort,
) ([]*domain.Task, error) {
	args := m.Called(ctx, status, dateFilter, sortBy)
	tasks, _ := args.Get(0).([]*domain.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	id int64,
	updates service.TaskUpdate,
) (*domain.Task, error) {
	args := m.Called(ctx, id, updates)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) CompleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskService) FindTaskByTitle(
	ctx context.Context,
	title string,
) (*domain.Task, error) {
	args := m.Called(ctx, title)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) PriorityMatrix(
	ctx context.Context,
	includeCompleted bool,
) (*domain.PriorityMatrix, error) {
	args := m.Called(ctx, includeCompleted)
	matrix, _ := args.Get(0).(*domain.PriorityMatrix)
	return matrix, args.Error(1)
}

func (m *MockTaskService) CalendarView(
	ctx context.Context,
	startDate, endDate string,
) (map[string][]*domain.Task, error) {
	args := m.Called(ctx, startDate, endDate)
	view, _ := args.Get(0).(map[string][]*domain.Task)
	return view, args.Error(1)
}

// MockCommandService mocks the service.CommandService interface
type MockCommandService struct {
	mock.Mock
}

func (m *MockCommandService) Execute(
	ctx context.Context,
	text string,
) (*service.CommandResult, error) {
	args := m.Called(ctx, text)
	result, _ := args.Get(0).(*service.CommandResult)
	return result, args.Error(1)
}
