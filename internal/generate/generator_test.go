package generate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ghanshambordekar3/Task-Generator/internal/spec"
)

func sequentialIDs() IDSource {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("task-%d", n)
	}
}

func TestGenerateProducesValidSpecification(t *testing.T) {
	g := New(sequentialIDs())
	brief := spec.Brief{Goal: "build a dashboard", Users: "analysts", Template: spec.TemplateWeb}
	out := g.Generate(brief)

	if _, err := spec.New(out.UserStories, out.Tasks, out.Risks); err != nil {
		t.Fatalf("generator output must satisfy the model contract: %v", err)
	}
	if len(out.UserStories) != 3 {
		t.Fatalf("expected 3 user stories, got %d", len(out.UserStories))
	}
	if len(out.Tasks) != 10 {
		t.Fatalf("expected 10 tasks, got %d", len(out.Tasks))
	}
}

func TestGenerateActionVerbStories(t *testing.T) {
	g := New(sequentialIDs())
	out := g.Generate(spec.Brief{Goal: "build a dashboard", Users: "analysts", Template: spec.TemplateWeb})
	if !strings.Contains(out.UserStories[1], "while building") {
		t.Fatalf("expected action-verb story, got %q", out.UserStories[1])
	}

	out = g.Generate(spec.Brief{Goal: "better onboarding", Users: "new hires", Template: spec.TemplateInternal})
	if !strings.Contains(out.UserStories[1], "status indicators") {
		t.Fatalf("expected fallback story, got %q", out.UserStories[1])
	}
}

func TestGenerateGroupCoverage(t *testing.T) {
	g := New(sequentialIDs())
	out := g.Generate(spec.Brief{Goal: "track expenses", Users: "teams", Template: spec.TemplateMobile})
	s, err := spec.New(out.UserStories, out.Tasks, out.Risks)
	if err != nil {
		t.Fatalf("model rejected output: %v", err)
	}
	var labels []string
	for _, grp := range s.Groups() {
		labels = append(labels, grp.Label)
	}
	want := []string{"Design", "Setup", "Development", "Backend", "Testing", "Deployment"}
	if len(labels) != len(want) {
		t.Fatalf("expected groups %v, got %v", want, labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("group %d: expected %s, got %s", i, want[i], labels[i])
		}
	}
}

func TestGenerateCarriesRisksVerbatim(t *testing.T) {
	g := New(sequentialIDs())
	out := g.Generate(spec.Brief{Goal: "ship billing", Users: "ops", Template: spec.TemplateWeb, Risks: "tax rules unclear"})
	if out.Risks != "tax rules unclear" {
		t.Fatalf("risks must pass through verbatim, got %q", out.Risks)
	}
}

func TestGenerateUsesTemplateInTasks(t *testing.T) {
	g := New(sequentialIDs())
	out := g.Generate(spec.Brief{Goal: "track expenses", Users: "teams", Template: spec.TemplateMobile})
	if !strings.Contains(out.Tasks[0].Text, "mobile template") {
		t.Fatalf("template missing from design task: %q", out.Tasks[0].Text)
	}
}
