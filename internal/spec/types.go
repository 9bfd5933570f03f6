// internal/spec/types.go
//
// Core data model for the task generator: the Brief a user submits and the
// Specification the generation service produces from it. The Specification
// is the single mutable entity in the system; everything shown or exported
// is derived from its flat, ordered task list.

package spec

import (
	"fmt"
	"strings"
	"time"
)

// Template selects the delivery shape a brief targets.
type Template string

const (
	TemplateWeb      Template = "web"
	TemplateMobile   Template = "mobile"
	TemplateInternal Template = "internal"

	// DefaultTemplate is used when a brief leaves the template blank.
	DefaultTemplate = TemplateWeb
)

// Templates lists the accepted template values in display order.
func Templates() []Template {
	return []Template{TemplateWeb, TemplateMobile, TemplateInternal}
}

// Valid reports whether the template is one of the known values.
func (t Template) Valid() bool {
	switch t {
	case TemplateWeb, TemplateMobile, TemplateInternal:
		return true
	}
	return false
}

// Brief is the user-submitted feature description that seeds generation.
// A Brief is immutable once submitted; a changed brief is a new request.
type Brief struct {
	Goal        string   `json:"goal" yaml:"goal"`
	Users       string   `json:"users" yaml:"users"`
	Constraints string   `json:"constraints" yaml:"constraints"`
	Template    Template `json:"template" yaml:"template"`
	Risks       string   `json:"risks" yaml:"risks"`
}

// Normalize trims whitespace and applies the default template.
func (b *Brief) Normalize() {
	if b == nil {
		return
	}
	b.Goal = strings.TrimSpace(b.Goal)
	b.Users = strings.TrimSpace(b.Users)
	b.Constraints = strings.TrimSpace(b.Constraints)
	b.Risks = strings.TrimSpace(b.Risks)
	if strings.TrimSpace(string(b.Template)) == "" {
		b.Template = DefaultTemplate
	}
}

// ValidationError reports a brief that cannot be submitted. The Field names
// the offending input so the form can highlight it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("spec: invalid brief: %s", e.Message)
}

// Validate enforces the submission contract: goal and users are required,
// the template must be a known value. The brief is normalized first.
func (b *Brief) Validate() error {
	b.Normalize()
	if b.Goal == "" {
		return &ValidationError{Field: "goal", Message: "goal is required"}
	}
	if b.Users == "" {
		return &ValidationError{Field: "users", Message: "users field is required"}
	}
	if !b.Template.Valid() {
		return &ValidationError{Field: "template", Message: fmt.Sprintf("unknown template %q", b.Template)}
	}
	return nil
}

// Task is a single actionable item. ID is opaque and unique within its
// Specification; Text is user-editable; Group is a category label used only
// for the derived grouping view.
type Task struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Group string `json:"group"`
}

// Specification is the generated user-stories-plus-tasks document. The
// Tasks slice order is the sole ordering authority for display and export;
// grouping is always recomputed from it via Groups.
type Specification struct {
	UserStories []string `json:"userStories"`
	Tasks       []Task   `json:"tasks"`
	Risks       string   `json:"risks"`
}

// Group is one block of the derived grouping view: a label plus the tasks
// carrying it, in task-list order. It is a read-only projection and is
// never stored.
type Group struct {
	Label string
	Tasks []Task
}

// HistoryEntry pairs a past brief with the specification it produced.
// Entries are immutable once created.
type HistoryEntry struct {
	ID        string        `json:"id"`
	Input     Brief         `json:"input"`
	Output    Specification `json:"output"`
	Timestamp time.Time     `json:"timestamp"`
}
