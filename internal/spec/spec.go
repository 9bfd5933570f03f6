package spec

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedResponse marks a generation-service payload that violates the
// Specification contract. Callers match it with errors.Is; the wrapped
// message carries the specific violation.
var ErrMalformedResponse = errors.New("spec: malformed generation response")

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}

// New validates a generation-service response and promotes it to a
// Specification. A payload missing either the user stories or the task list
// is rejected rather than coerced into empty defaults; an empty risks
// string is legitimate. Duplicate, blank, or text-less task IDs are
// contract violations.
func New(userStories []string, tasks []Task, risks string) (*Specification, error) {
	if userStories == nil {
		return nil, malformed("userStories missing")
	}
	if tasks == nil {
		return nil, malformed("tasks missing")
	}
	seen := make(map[string]struct{}, len(tasks))
	for i, t := range tasks {
		id := strings.TrimSpace(t.ID)
		if id == "" {
			return nil, malformed("task %d has no id", i)
		}
		if strings.TrimSpace(t.Text) == "" {
			return nil, malformed("task %s has no text", id)
		}
		if _, dup := seen[id]; dup {
			return nil, malformed("duplicate task id %s", id)
		}
		seen[id] = struct{}{}
	}
	s := &Specification{
		UserStories: append([]string(nil), userStories...),
		Tasks:       append([]Task(nil), tasks...),
		Risks:       risks,
	}
	return s, nil
}

// Clone returns a deep copy. History entries hand out clones so edits to
// the current specification never reach back into the store.
func (s *Specification) Clone() *Specification {
	if s == nil {
		return nil
	}
	return &Specification{
		UserStories: append([]string(nil), s.UserStories...),
		Tasks:       append([]Task(nil), s.Tasks...),
		Risks:       s.Risks,
	}
}

// Groups computes the derived grouping view: a stable partition of the task
// list keyed by group label, groups in first-seen order, tasks within a
// group in task-list order. Recomputed on every call so it can never drift
// from the list.
func (s *Specification) Groups() []Group {
	if s == nil {
		return nil
	}
	index := make(map[string]int, len(s.Tasks))
	var groups []Group
	for _, t := range s.Tasks {
		i, ok := index[t.Group]
		if !ok {
			i = len(groups)
			index[t.Group] = i
			groups = append(groups, Group{Label: t.Group})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}
	return groups
}

// Equal reports whether two specifications hold identical content.
func (s *Specification) Equal(other *Specification) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Risks != other.Risks || len(s.UserStories) != len(other.UserStories) || len(s.Tasks) != len(other.Tasks) {
		return false
	}
	for i := range s.UserStories {
		if s.UserStories[i] != other.UserStories[i] {
			return false
		}
	}
	for i := range s.Tasks {
		if s.Tasks[i] != other.Tasks[i] {
			return false
		}
	}
	return true
}
