package mail

// Category is the classifier's label for an email
type Category string

const (
	CategoryUnset      Category = ""
	CategoryImportant  Category = "Important"
	CategoryNewsletter Category = "Newsletter"
	CategorySpam       Category = "Spam"
	CategoryToDo       Category = "To-Do"
	CategoryError      Category = "Error"
)

// Priority of an extracted task
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Task is an action item extracted from an email body
type Task struct {
	Task     string   `json:"task"`
	Priority Priority `json:"priority"`
	Deadline string   `json:"deadline"`
	Notes    string   `json:"notes,omitempty"`
}

// Email is a single inbox item. Category, Actions, Summary and DraftReply
// start at their zero values and are filled in by processing.
type Email struct {
	ID         int      `json:"id"`
	Sender     string   `json:"sender"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
	Timestamp  string   `json:"timestamp"`
	Read       bool     `json:"read"`
	Category   Category `json:"category,omitempty"`
	Actions    []Task   `json:"actions,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	DraftReply string   `json:"draft_reply,omitempty"`
}

// Processed reports whether the email has been through the pipeline
func (e *Email) Processed() bool {
	return e.Category != CategoryUnset
}

// Stats counts emails per category
type Stats struct {
	Total       int
	Important   int
	Newsletter  int
	Spam        int
	ToDo        int
	Unprocessed int
}
