package domain

// priorityMidpoint is the threshold splitting the 1-5 scale into the
// Eisenhower quadrants. A value equal to the midpoint counts as high, so a
// task with urgency=3 and importance=3 lands in the urgent+important
// quadrant.
const priorityMidpoint = 3

// Quadrant names a cell of the Eisenhower matrix.
type Quadrant string

// The four Eisenhower matrix quadrants.
const (
	QuadrantUrgentImportant       Quadrant = "urgent_important"
	QuadrantNotUrgentImportant    Quadrant = "not_urgent_important"
	QuadrantUrgentNotImportant    Quadrant = "urgent_not_important"
	QuadrantNotUrgentNotImportant Quadrant = "not_urgent_not_important"
)

// QuadrantFor classifies a task into its Eisenhower matrix quadrant.
// The tie rule is intentionally asymmetric: >= on both axes counts as high.
func QuadrantFor(t *Task) Quadrant {
	urgent := t.Urgency >= priorityMidpoint
	important := t.Importance >= priorityMidpoint

	switch {
	case urgent && important:
		return QuadrantUrgentImportant
	case !urgent && important:
		return QuadrantNotUrgentImportant
	case urgent && !important:
		return QuadrantUrgentNotImportant
	default:
		return QuadrantNotUrgentNotImportant
	}
}

// PriorityMatrix groups tasks into the four Eisenhower quadrants.
type PriorityMatrix struct {
	UrgentImportant       []*Task `json:"urgent_important"`
	NotUrgentImportant    []*Task `json:"not_urgent_important"`
	UrgentNotImportant    []*Task `json:"urgent_not_important"`
	NotUrgentNotImportant []*Task `json:"not_urgent_not_important"`
}

// NewPriorityMatrix builds a matrix from the given tasks, preserving their
// input order within each quadrant. All slices are non-nil so empty
// quadrants serialize as [] rather than null.
func NewPriorityMatrix(tasks []*Task) *PriorityMatrix {
	m := &PriorityMatrix{
		UrgentImportant:       []*Task{},
		NotUrgentImportant:    []*Task{},
		UrgentNotImportant:    []*Task{},
		NotUrgentNotImportant: []*Task{},
	}

	for _, t := range tasks {
		switch QuadrantFor(t) {
		case QuadrantUrgentImportant:
			m.UrgentImportant = append(m.UrgentImportant, t)
		case QuadrantNotUrgentImportant:
			m.NotUrgentImportant = append(m.NotUrgentImportant, t)
		case QuadrantUrgentNotImportant:
			m.UrgentNotImportant = append(m.UrgentNotImportant, t)
		case QuadrantNotUrgentNotImportant:
			m.NotUrgentNotImportant = append(m.NotUrgentNotImportant, t)
		}
	}

	return m
}

// GroupByDueDate buckets tasks by their due date. Tasks without a due date
// are skipped. Within each bucket the input order is preserved, so callers
// that want date/time ordering must pass tasks already sorted that way.
func GroupByDueDate(tasks []*Task) map[string][]*Task {
	calendar := make(map[string][]*Task)
	for _, t := range tasks {
		if t.DueDate == nil || *t.DueDate == "" {
			continue
		}
		calendar[*t.DueDate] = append(calendar[*t.DueDate], t)
	}
	return calendar
}
