package nlp

import "regexp"

// Intent is the classified purpose of a natural-language command.
type Intent string

// Recognized command intents.
const (
	IntentAddTask      Intent = "add_task"
	IntentListTasks    Intent = "list_tasks"
	IntentCompleteTask Intent = "complete_task"
	IntentDeleteTask   Intent = "delete_task"
	IntentUnknown      Intent = "unknown"
)

// Rule pairs an intent with the pattern that detects it. Rules are checked
// in slice order and the first match wins, which keeps intent precedence
// auditable in one place.
type Rule struct {
	Pattern *regexp.Regexp
	Intent  Intent
}

// DefaultRules returns the standard ordered intent rule table:
// add before list before complete before delete. The table is built once at
// startup and passed into the Parser; it is never mutated.
func DefaultRules() []Rule {
	return []Rule{
		{regexp.MustCompile(`\b(add|create|schedule|remind me to|set up)\b`), IntentAddTask},
		{regexp.MustCompile(`\b(i need to|gotta|have to)\b`), IntentAddTask},
		{regexp.MustCompile(`\b(show|list|what are|get|display)\b.*\b(task|tasks|todo|schedule)\b`), IntentListTasks},
		{regexp.MustCompile(`\b(what's|whats)\b.*\b(on my|my)\b.*\b(agenda|schedule|plate)\b`), IntentListTasks},
		{regexp.MustCompile(`\b(complete|finish|done|mark done|mark as done|check off|finished)\b`), IntentCompleteTask},
		{regexp.MustCompile(`\b(delete|remove|cancel|clear)\b.*\b(task|tasks)\b`), IntentDeleteTask},
	}
}

// Patterns shared by the per-intent entity extractors.
var (
	// addVerbPattern strips command verbs from an add-task command to
	// recover the task title.
	addVerbPattern = regexp.MustCompile(`(?i)\b(add|create|schedule|remind me to|set up|i need to|gotta|have to)\b`)

	// dateTimePhrasePattern strips date/time phrases from a title so
	// "call dentist tomorrow at 2pm" yields a clean "call dentist".
	dateTimePhrasePattern = regexp.MustCompile(`(?i)\b(today|tomorrow|next\s+\w+|in\s+\d+\s+days?|at\s+\d+(?:am|pm)?)\b`)

	// completeStripPattern removes complete-intent keywords when deriving a
	// title candidate for task lookup.
	completeStripPattern = regexp.MustCompile(`(?i)\b(complete|finish|done|mark done|mark as done|check off|finished|task)\b`)

	// deleteStripPattern removes delete-intent keywords when deriving a
	// title candidate for task lookup.
	deleteStripPattern = regexp.MustCompile(`(?i)\b(delete|remove|cancel|clear|task)\b`)

	// taskNumberPattern finds a task identifier like "42" or "#42"
	// anywhere in the text.
	taskNumberPattern = regexp.MustCompile(`#?(\d+)`)
)

// Importance keyword tables. High-priority keywords are checked before
// low-priority ones, so "low priority but urgent" resolves to high.
var (
	highImportanceKeywords = []string{
		"urgent", "critical", "important", "asap", "high priority", "priority",
	}
	lowImportanceKeywords = []string{
		"low priority", "whenever", "someday", "eventually", "low",
	}
)

// Importance values assigned from keyword matches on the 1-5 scale.
const (
	highImportance = 5
	lowImportance  = 1
)
