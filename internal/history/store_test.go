package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/ghanshambordekar3/Task-Generator/internal/spec"
)

func entrySpec(t *testing.T, text string) *spec.Specification {
	t.Helper()
	s, err := spec.New([]string{"story"}, []spec.Task{{ID: "1", Text: text, Group: "Dev"}}, "")
	if err != nil {
		t.Fatalf("new specification: %v", err)
	}
	return s
}

func TestAddPrependsAndTrims(t *testing.T) {
	store := New(WithCapacity(5))
	for i := 0; i < 7; i++ {
		brief := spec.Brief{Goal: fmt.Sprintf("goal %d", i), Users: "users"}
		store.Add(brief, entrySpec(t, "task"))
	}
	entries := store.Entries()
	if len(entries) != 5 {
		t.Fatalf("expected trim to 5 entries, got %d", len(entries))
	}
	if entries[0].Input.Goal != "goal 6" {
		t.Fatalf("expected newest first, got %s", entries[0].Input.Goal)
	}
	if entries[4].Input.Goal != "goal 2" {
		t.Fatalf("expected oldest surviving entry to be goal 2, got %s", entries[4].Input.Goal)
	}
}

func TestEntriesAreDeepCopies(t *testing.T) {
	store := New()
	store.Add(spec.Brief{Goal: "goal", Users: "users"}, entrySpec(t, "original"))
	first := store.Entries()
	if err := first[0].Output.Rename("1", "edited"); err != nil {
		t.Fatalf("rename copy: %v", err)
	}
	second := store.Entries()
	if second[0].Output.Tasks[0].Text != "original" {
		t.Fatalf("store entries must be immutable, got %q", second[0].Output.Tasks[0].Text)
	}
}

func TestEntriesCarryIDAndTimestamp(t *testing.T) {
	fixed := time.Unix(1730000000, 0).UTC()
	store := New(WithClock(func() time.Time { return fixed }))
	entry := store.Add(spec.Brief{Goal: "goal", Users: "users"}, entrySpec(t, "task"))
	if entry.ID == "" {
		t.Fatalf("entry id must be set")
	}
	if !entry.Timestamp.Equal(fixed) {
		t.Fatalf("expected pinned timestamp, got %s", entry.Timestamp)
	}
}
