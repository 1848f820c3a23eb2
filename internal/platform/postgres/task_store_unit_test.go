package postgres

import (
	"testing"

	"github.com/phrazzld/taskdesk/internal/domain"
	"github.com/phrazzld/taskdesk/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuildListQueryDefault(t *testing.T) {
	t.Parallel()

	query, args := buildListQuery(store.ListQuery{})

	assert.Contains(t, query, "status <> $1")
	assert.Contains(t, query, "ORDER BY created_at DESC")
	require.Len(t, args, 1)
	assert.Equal(t, domain.TaskStatusCompleted, args[0])
}

func TestBuildListQueryExplicitStatus(t *testing.T) {
	t.Parallel()

	status := domain.TaskStatusPending
	query, args := buildListQuery(store.ListQuery{Status: &status})

	assert.Contains(t, query, "status = $1")
	assert.NotContains(t, query, "status <>")
	require.Len(t, args, 1)
	assert.Equal(t, domain.TaskStatusPending, args[0])
}

func TestBuildListQueryIncludeCompleted(t *testing.T) {
	t.Parallel()

	query, args := buildListQuery(store.ListQuery{IncludeCompleted: true})

	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestBuildListQueryDateWindow(t *testing.T) {
	t.Parallel()

	query, args := buildListQuery(store.ListQuery{
		DueFrom: strPtr("2026-08-26"),
		DueTo:   strPtr("2026-09-02"),
		SortBy:  store.TaskSortDueDate,
	})

	assert.Contains(t, query, "due_date >= $2")
	assert.Contains(t, query, "due_date <= $3")
	assert.Contains(t, query, "ORDER BY due_date, due_time")
	require.Len(t, args, 3)
	assert.Equal(t, "2026-08-26", args[1])
	assert.Equal(t, "2026-09-02", args[2])
}

func TestBuildListQueryDueOn(t *testing.T) {
	t.Parallel()

	query, args := buildListQuery(store.ListQuery{DueOn: strPtr("2026-08-26")})

	assert.Contains(t, query, "due_date = $2")
	require.Len(t, args, 2)
	assert.Equal(t, "2026-08-26", args[1])
}

func TestBuildListQuerySorts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		sort store.TaskSort
		want string
	}{
		{store.TaskSortUrgency, "ORDER BY urgency DESC, due_date"},
		{store.TaskSortImportance, "ORDER BY importance DESC, due_date"},
		{store.TaskSortDueDate, "ORDER BY due_date, due_time"},
		{store.TaskSortCreatedAt, "ORDER BY created_at DESC"},
		{"", "ORDER BY created_at DESC"},
		{"bogus", "ORDER BY created_at DESC"},
	}

	for _, tc := range cases {
		query, _ := buildListQuery(store.ListQuery{SortBy: tc.sort})
		assert.Contains(t, query, tc.want, "sort %q", tc.sort)
	}
}
