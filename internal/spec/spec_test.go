package spec

import (
	"errors"
	"testing"
)

func sampleTasks() []Task {
	return []Task{
		{ID: "1", Text: "Build login form", Group: "Frontend"},
		{ID: "2", Text: "Add auth endpoint", Group: "Backend"},
		{ID: "3", Text: "Style login page", Group: "Frontend"},
	}
}

func mustSpec(t *testing.T) *Specification {
	t.Helper()
	s, err := New([]string{"As a user, I can log in"}, sampleTasks(), "")
	if err != nil {
		t.Fatalf("new specification: %v", err)
	}
	return s
}

func TestNewRejectsMissingFields(t *testing.T) {
	if _, err := New(nil, sampleTasks(), ""); !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected malformed response for missing stories, got %v", err)
	}
	if _, err := New([]string{"story"}, nil, ""); !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected malformed response for missing tasks, got %v", err)
	}
}

func TestNewAllowsEmptyRisksAndEmptySlices(t *testing.T) {
	s, err := New([]string{}, []Task{}, "")
	if err != nil {
		t.Fatalf("empty slices are present, not missing: %v", err)
	}
	if s.Risks != "" {
		t.Fatalf("expected empty risks, got %q", s.Risks)
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	tasks := sampleTasks()
	tasks[2].ID = tasks[0].ID
	if _, err := New([]string{"story"}, tasks, ""); !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected malformed response for duplicate id, got %v", err)
	}
}

func TestNewRejectsBlankIDAndText(t *testing.T) {
	tasks := sampleTasks()
	tasks[1].ID = "  "
	if _, err := New([]string{"story"}, tasks, ""); !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected malformed response for blank id, got %v", err)
	}
	tasks = sampleTasks()
	tasks[1].Text = ""
	if _, err := New([]string{"story"}, tasks, ""); !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected malformed response for blank text, got %v", err)
	}
}

func TestNewCopiesInput(t *testing.T) {
	tasks := sampleTasks()
	s, err := New([]string{"story"}, tasks, "")
	if err != nil {
		t.Fatalf("new specification: %v", err)
	}
	tasks[0].Text = "mutated"
	if s.Tasks[0].Text != "Build login form" {
		t.Fatalf("specification aliases caller slice")
	}
}

func TestGroupsPartitionIsStable(t *testing.T) {
	s := mustSpec(t)
	groups := s.Groups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Label != "Frontend" || groups[1].Label != "Backend" {
		t.Fatalf("groups out of first-seen order: %v, %v", groups[0].Label, groups[1].Label)
	}
	if len(groups[0].Tasks) != 2 || groups[0].Tasks[0].ID != "1" || groups[0].Tasks[1].ID != "3" {
		t.Fatalf("within-group order must follow the task list: %+v", groups[0].Tasks)
	}
}

func TestGroupsFollowTaskOrderAfterMoves(t *testing.T) {
	s := mustSpec(t)
	if err := s.Move("2", Up); err != nil {
		t.Fatalf("move: %v", err)
	}
	groups := s.Groups()
	if groups[0].Label != "Backend" {
		t.Fatalf("first-seen group should now be Backend, got %s", groups[0].Label)
	}
	// Derived view must always recompute from the list, never cache.
	if err := s.Move("2", Down); err != nil {
		t.Fatalf("move back: %v", err)
	}
	groups = s.Groups()
	if groups[0].Label != "Frontend" {
		t.Fatalf("grouping desynchronized from task order: got %s first", groups[0].Label)
	}
}

func TestMoveBoundaryIsNoOp(t *testing.T) {
	s := mustSpec(t)
	before := s.Clone()
	if err := s.Move("1", Up); err != nil {
		t.Fatalf("move first up: %v", err)
	}
	if err := s.Move("3", Down); err != nil {
		t.Fatalf("move last down: %v", err)
	}
	if !s.Equal(before) {
		t.Fatalf("boundary moves must leave the task list unchanged")
	}
}

func TestMoveSwapsNeighbors(t *testing.T) {
	s := mustSpec(t)
	if err := s.Move("2", Up); err != nil {
		t.Fatalf("move: %v", err)
	}
	if s.Tasks[0].ID != "2" || s.Tasks[1].ID != "1" {
		t.Fatalf("expected swap with previous neighbor, got %s, %s", s.Tasks[0].ID, s.Tasks[1].ID)
	}
	if err := s.Move("2", Down); err != nil {
		t.Fatalf("move: %v", err)
	}
	if s.Tasks[0].ID != "1" || s.Tasks[1].ID != "2" {
		t.Fatalf("expected swap back, got %s, %s", s.Tasks[0].ID, s.Tasks[1].ID)
	}
}

func TestMoveUnknownID(t *testing.T) {
	s := mustSpec(t)
	if err := s.Move("missing", Up); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestRenameIdempotent(t *testing.T) {
	s := mustSpec(t)
	if err := s.Rename("1", "Polish login form"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	once := s.Clone()
	if err := s.Rename("1", "Polish login form"); err != nil {
		t.Fatalf("second rename: %v", err)
	}
	if !s.Equal(once) {
		t.Fatalf("rename with same text must be idempotent")
	}
	if s.Tasks[0].Group != "Frontend" {
		t.Fatalf("rename must not alter group")
	}
}

func TestRenameUnknownID(t *testing.T) {
	s := mustSpec(t)
	if err := s.Rename("missing", "text"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := mustSpec(t)
	c := s.Clone()
	if err := c.Rename("1", "changed"); err != nil {
		t.Fatalf("rename clone: %v", err)
	}
	if s.Tasks[0].Text != "Build login form" {
		t.Fatalf("clone shares task storage with original")
	}
}

func TestBriefValidate(t *testing.T) {
	b := Brief{Goal: "Add login", Users: "end users"}
	if err := b.Validate(); err != nil {
		t.Fatalf("valid brief rejected: %v", err)
	}
	if b.Template != DefaultTemplate {
		t.Fatalf("expected default template, got %s", b.Template)
	}

	b = Brief{Goal: "  ", Users: "end users"}
	err := b.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "goal" {
		t.Fatalf("expected goal validation error, got %v", err)
	}

	b = Brief{Goal: "Add login", Users: ""}
	err = b.Validate()
	if !errors.As(err, &verr) || verr.Field != "users" {
		t.Fatalf("expected users validation error, got %v", err)
	}

	b = Brief{Goal: "Add login", Users: "end users", Template: "desktop"}
	err = b.Validate()
	if !errors.As(err, &verr) || verr.Field != "template" {
		t.Fatalf("expected template validation error, got %v", err)
	}
}
