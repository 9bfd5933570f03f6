package logbook

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendAndTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "session.log")
	lb, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	lb.Info("brief submitted · goal: %s", "Add login")
	lb.Warn("history fetch failed")
	lb.Error("generation failed: %v", "boom")

	lines := lb.Tail(10)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "INFO") || !strings.Contains(lines[0], "Add login") {
		t.Fatalf("unexpected first line: %s", lines[0])
	}
	if !strings.Contains(lines[2], "ERROR") {
		t.Fatalf("unexpected last line: %s", lines[2])
	}
}

func TestTailLimitsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	lb, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	for i := 0; i < 12; i++ {
		lb.Info("entry %d", i)
	}
	lines := lb.Tail(5)
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[4], "entry 11") {
		t.Fatalf("expected newest entry last, got %s", lines[4])
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var lb *Logbook
	lb.Info("ignored")
	if lines := lb.Tail(3); lines != nil {
		t.Fatalf("nil logbook must return no lines")
	}
	if lb.Path() != "" {
		t.Fatalf("nil logbook must have empty path")
	}
}
