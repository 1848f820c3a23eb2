package nlp

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/phrazzld/taskdesk/internal/nlp/datetime"
)

// UnknownCommandMessage is the guidance returned for input that matches no
// intent rule.
const UnknownCommandMessage = `I did not understand that command. Try "add task", "show tasks", or "complete task".`

// Entities holds the structured values extracted from a command. Which
// fields are populated depends on the intent; nil/empty means the entity
// was not present in the text.
type Entities struct {
	// add_task
	Title      string  `json:"title,omitempty"`
	DueDate    *string `json:"due_date,omitempty"`
	DueTime    *string `json:"due_time,omitempty"`
	Importance *int    `json:"importance,omitempty"`

	// list_tasks
	DateFilter       string `json:"date_filter,omitempty"`
	UrgencyFilter    string `json:"urgency_filter,omitempty"`
	ImportanceFilter string `json:"importance_filter,omitempty"`
	SortBy           string `json:"sort_by,omitempty"`

	// complete_task / delete_task
	TaskID    *int64 `json:"task_id,omitempty"`
	TaskTitle string `json:"task_title,omitempty"`
}

// ParsedCommand is the result of interpreting one command. It is ephemeral
// and never persisted.
type ParsedCommand struct {
	Intent   Intent   `json:"intent"`
	Entities Entities `json:"entities"`
	// Message carries guidance for unknown commands.
	Message string `json:"message,omitempty"`
}

// Parser maps free-form command text to an intent plus extracted entities.
// Parsing never fails: unrecognized input yields IntentUnknown with a
// clarifying message.
type Parser struct {
	rules     []Rule
	extractor *datetime.Extractor
}

// NewParser creates a Parser with the given intent rule table and date/time
// extractor.
func NewParser(rules []Rule, extractor *datetime.Extractor) *Parser {
	return &Parser{
		rules:     rules,
		extractor: extractor,
	}
}

// Parse interprets a natural-language command and extracts its intent and
// entities.
func (p *Parser) Parse(text string) ParsedCommand {
	lower := strings.ToLower(strings.TrimSpace(text))

	switch p.detectIntent(lower) {
	case IntentAddTask:
		return p.parseAddTask(text)
	case IntentListTasks:
		return p.parseListTasks(text)
	case IntentCompleteTask:
		return p.parseCompleteTask(text)
	case IntentDeleteTask:
		return p.parseDeleteTask(text)
	default:
		return ParsedCommand{
			Intent:  IntentUnknown,
			Message: UnknownCommandMessage,
		}
	}
}

// detectIntent walks the ordered rule table; the first matching rule wins.
func (p *Parser) detectIntent(lower string) Intent {
	for _, rule := range p.rules {
		if rule.Pattern.MatchString(lower) {
			return rule.Intent
		}
	}
	return IntentUnknown
}

// parseAddTask extracts a title, optional date/time and optional importance
// from an add-task command. An empty extracted title is left in the result
// for the caller to reject; it is not an error here.
func (p *Parser) parseAddTask(text string) ParsedCommand {
	// Title: input minus command verbs, then minus date/time phrases.
	title := addVerbPattern.ReplaceAllString(text, "")
	title = strings.TrimSpace(title)
	title = dateTimePhrasePattern.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)

	date, clock := p.extractor.Extract(text)

	return ParsedCommand{
		Intent: IntentAddTask,
		Entities: Entities{
			Title:      title,
			DueDate:    date,
			DueTime:    clock,
			Importance: extractImportance(text),
		},
	}
}

// parseListTasks extracts filter and sort entities from a list command.
func (p *Parser) parseListTasks(text string) ParsedCommand {
	lower := strings.ToLower(text)
	entities := Entities{}

	// Date filter, checked in fixed order.
	switch {
	case strings.Contains(lower, "today"):
		entities.DateFilter = "today"
	case strings.Contains(lower, "tomorrow"):
		entities.DateFilter = "tomorrow"
	case strings.Contains(lower, "this week"), strings.Contains(lower, "week"):
		entities.DateFilter = "week"
	case strings.Contains(lower, "this month"), strings.Contains(lower, "month"):
		entities.DateFilter = "month"
	}

	if strings.Contains(lower, "urgent") || strings.Contains(lower, "critical") {
		entities.UrgencyFilter = "high"
	}

	if strings.Contains(lower, "important") {
		entities.ImportanceFilter = "high"
	}

	// Sort criteria, by substring priority.
	switch {
	case strings.Contains(lower, "urgency"), strings.Contains(lower, "urgent"):
		entities.SortBy = "urgency"
	case strings.Contains(lower, "importance"):
		entities.SortBy = "importance"
	case strings.Contains(lower, "date"), strings.Contains(lower, "due"):
		entities.SortBy = "due_date"
	}

	return ParsedCommand{
		Intent:   IntentListTasks,
		Entities: entities,
	}
}

// parseCompleteTask extracts a task identifier (number and/or title
// candidate) from a complete command.
func (p *Parser) parseCompleteTask(text string) ParsedCommand {
	return ParsedCommand{
		Intent:   IntentCompleteTask,
		Entities: extractTaskReference(text, completeStripPattern),
	}
}

// parseDeleteTask extracts a task identifier (number and/or title
// candidate) from a delete command.
func (p *Parser) parseDeleteTask(text string) ParsedCommand {
	return ParsedCommand{
		Intent:   IntentDeleteTask,
		Entities: extractTaskReference(text, deleteStripPattern),
	}
}

// extractTaskReference pulls an optional numeric task ID and an optional
// title candidate out of a complete/delete command. Both may be present;
// the caller tries the ID first, then the title.
func extractTaskReference(text string, strip *regexp.Regexp) Entities {
	entities := Entities{}

	if m := taskNumberPattern.FindStringSubmatch(text); m != nil {
		if id, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			entities.TaskID = &id
		}
	}

	title := strings.TrimSpace(strip.ReplaceAllString(text, ""))
	if len(title) > 1 {
		entities.TaskTitle = title
	}

	return entities
}

// extractImportance scans for priority keywords, high before low.
// Returns nil when neither set matches so the caller's default applies.
func extractImportance(text string) *int {
	lower := strings.ToLower(text)

	for _, keyword := range highImportanceKeywords {
		if strings.Contains(lower, keyword) {
			v := highImportance
			return &v
		}
	}

	for _, keyword := range lowImportanceKeywords {
		if strings.Contains(lower, keyword) {
			v := lowImportance
			return &v
		}
	}

	return nil
}
