package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins extraction to a known date so relative expressions are
// deterministic.
func fixedClock() time.Time {
	return time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC)
}

func TestDateToday(t *testing.T) {
	t.Parallel()
	e := NewExtractor(fixedClock)

	cases := []string{
		"today",
		"do laundry today",
		"TODAY please",
		"what's on my plate today at 5pm",
	}
	for _, text := range cases {
		got := e.Date(text)
		require.NotNil(t, got, "input %q", text)
		assert.Equal(t, "2026-08-26", *got, "input %q", text)
	}
}

func TestDateTomorrow(t *testing.T) {
	t.Parallel()
	e := NewExtractor(fixedClock)

	got := e.Date("call dentist tomorrow at 2pm")
	require.NotNil(t, got)
	assert.Equal(t, "2026-08-27", *got)
}

func TestDateNone(t *testing.T) {
	t.Parallel()
	e := NewExtractor(fixedClock)

	assert.Nil(t, e.Date("buy milk"))
	assert.Nil(t, e.Date(""))
}

func TestDateIgnoresBareTimes(t *testing.T) {
	t.Parallel()
	e := NewExtractor(fixedClock)

	// A time of day on its own is not a date mention, so a task added
	// "at 2pm" must not become due today.
	assert.Nil(t, e.Date("add task call mom at 2pm"))
	assert.Nil(t, e.Date("standup at 9:30am"))
	assert.Nil(t, e.Date("buy 3 apples"))
}

func TestDateRelativeExpressions(t *testing.T) {
	t.Parallel()
	e := NewExtractor(fixedClock)

	// 2026-08-26 is a Wednesday; "next friday" resolves past it.
	got := e.Date("review budget next friday")
	require.NotNil(t, got)
	assert.Equal(t, "2026-08-28", *got)

	got = e.Date("in 3 days")
	require.NotNil(t, got)
	assert.Equal(t, "2026-08-29", *got)
}

func TestTimeConversions(t *testing.T) {
	t.Parallel()
	e := NewExtractor(fixedClock)

	cases := []struct {
		in   string
		want string
	}{
		{"2pm", "14:00"},
		{"12am", "00:00"},
		{"12pm", "12:00"},
		{"9:05am", "09:05"},
		{"2:30pm", "14:30"},
		{"14:30", "14:30"},
		{"meet at 2:30 pm sharp", "14:30"},
		{"11am standup", "11:00"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			got := e.Time(tc.in)
			require.NotNil(t, got, "input %q", tc.in)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestTimeNone(t *testing.T) {
	t.Parallel()
	e := NewExtractor(fixedClock)

	assert.Nil(t, e.Time("no time here"))
	assert.Nil(t, e.Time("meeting in the morning"))
}

func TestTimePatternPrecedence(t *testing.T) {
	t.Parallel()
	e := NewExtractor(fixedClock)

	// The H:MM rule is checked first, so "2:30pm" never matches the bare
	// H(am|pm) rule as "2pm... leftovers".
	got := e.Time("2:30pm")
	require.NotNil(t, got)
	assert.Equal(t, "14:30", *got)
}

func TestExtractBoth(t *testing.T) {
	t.Parallel()
	e := NewExtractor(fixedClock)

	date, clock := e.Extract("call dentist tomorrow at 2pm")
	require.NotNil(t, date)
	require.NotNil(t, clock)
	assert.Equal(t, "2026-08-27", *date)
	assert.Equal(t, "14:00", *clock)

	date, clock = e.Extract("buy milk")
	assert.Nil(t, date)
	assert.Nil(t, clock)
}
