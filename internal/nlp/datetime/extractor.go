// Package datetime extracts dates and times-of-day from free-form text.
package datetime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ISODateFormat is the layout for extracted dates.
const ISODateFormat = "2006-01-02"

// Ordered time-of-day patterns. The first match wins, so the H:MM form is
// tried before the bare H(am|pm) form.
var (
	clockPattern    = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm)?\b`)
	meridiemPattern = regexp.MustCompile(`\b(\d{1,2})(am|pm)\b`)
)

// Extractor parses natural-language date and time mentions out of raw text.
// Extraction never fails: text without a recognizable date or time simply
// yields nil for that field.
type Extractor struct {
	now    func() time.Time
	parser *when.Parser
}

// NewExtractor creates an Extractor using the given clock. A nil clock
// defaults to time.Now.
func NewExtractor(now func() time.Time) *Extractor {
	if now == nil {
		now = time.Now
	}

	// Only date-bearing rules are registered. The hour and casual-time
	// rules would resolve a bare "2pm" to today's date; time-of-day has
	// its own pass, and text without a date mention must yield no date.
	w := when.New(nil)
	w.Add(
		en.CasualDate(rules.Override),
		en.Weekday(rules.Override),
		en.ExactMonthDate(rules.Override),
		en.Deadline(rules.Override),
		common.SlashDMY(rules.Override),
	)

	return &Extractor{
		now:    now,
		parser: w,
	}
}

// Extract runs the date and time passes independently over the same input.
// Either, both, or neither may succeed.
func (e *Extractor) Extract(text string) (date, clock *string) {
	return e.Date(text), e.Time(text)
}

// Date extracts an ISO date (YYYY-MM-DD) from natural-language text.
// "today" and "tomorrow" take precedence over the general parser.
func (e *Extractor) Date(text string) *string {
	cleaned := strings.ToLower(text)

	if strings.Contains(cleaned, "today") {
		d := e.now().Format(ISODateFormat)
		return &d
	}
	if strings.Contains(cleaned, "tomorrow") {
		d := e.now().AddDate(0, 0, 1).Format(ISODateFormat)
		return &d
	}

	// General natural-language parsing for everything else
	// ("next friday", "in 3 days", explicit dates).
	result, err := e.parser.Parse(cleaned, e.now())
	if err != nil || result == nil {
		return nil
	}

	d := result.Time.Format(ISODateFormat)
	return &d
}

// Time extracts a 24-hour HH:MM time from natural-language text.
// 12-hour forms convert using the standard noon/midnight rules
// (12pm -> 12:00, 12am -> 00:00, other pm adds 12).
func (e *Extractor) Time(text string) *string {
	lower := strings.ToLower(text)

	if m := clockPattern.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		hour = to24Hour(hour, m[3])
		t := fmt.Sprintf("%02d:%02d", hour, minute)
		return &t
	}

	if m := meridiemPattern.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		hour = to24Hour(hour, m[2])
		t := fmt.Sprintf("%02d:00", hour)
		return &t
	}

	return nil
}

// to24Hour converts an hour with an optional am/pm marker to 24-hour form.
func to24Hour(hour int, meridiem string) int {
	switch {
	case meridiem == "pm" && hour != 12:
		return hour + 12
	case meridiem == "am" && hour == 12:
		return 0
	default:
		return hour
	}
}
