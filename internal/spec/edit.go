package spec

import "errors"

// ErrTaskNotFound marks an edit that referenced an id absent from the
// current specification. Callers log and drop it; it never reaches the
// user, since it usually means a stale reference from a replaced view.
var ErrTaskNotFound = errors.New("spec: task not found")

// Direction selects which neighbor a Move swaps with.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Rename replaces the text of the task with the matching id. Group and
// position are untouched. Renaming to the same text is a no-op, so the
// operation is idempotent.
func (s *Specification) Rename(id, text string) error {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			s.Tasks[i].Text = text
			return nil
		}
	}
	return ErrTaskNotFound
}

// Move swaps the task with its immediate neighbor in the global task order.
// Moving the first task up or the last task down is a clamped no-op, not an
// error. Grouping is derived from this same order, so a move that crosses a
// group boundary legitimately changes which group block the task renders in.
func (s *Specification) Move(id string, dir Direction) error {
	idx := -1
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrTaskNotFound
	}
	switch dir {
	case Up:
		if idx > 0 {
			s.Tasks[idx-1], s.Tasks[idx] = s.Tasks[idx], s.Tasks[idx-1]
		}
	case Down:
		if idx < len(s.Tasks)-1 {
			s.Tasks[idx], s.Tasks[idx+1] = s.Tasks[idx+1], s.Tasks[idx]
		}
	}
	return nil
}
