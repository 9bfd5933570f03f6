// internal/generate/generator.go
//
// Rule-based work-breakdown generator. Given a validated brief it derives a
// set of user stories keyed off the goal's primary action verb and a fixed
// task breakdown across the standard delivery groups.

package generate

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ghanshambordekar3/Task-Generator/internal/spec"
)

// actionVerbs are the goal keywords that select the action-oriented story
// flavor.
var actionVerbs = []string{
	"create", "build", "develop", "implement", "design",
	"generate", "manage", "track", "monitor", "analyze",
}

// IDSource mints task identifiers. Tests inject a deterministic source.
type IDSource func() string

// Generator produces specifications from briefs.
type Generator struct {
	newID IDSource
}

// New returns a generator. A nil id source defaults to random UUIDs.
func New(newID IDSource) *Generator {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Generator{newID: newID}
}

// Generate builds the specification for a brief. The brief must already be
// validated; Generate itself never fails on content.
func (g *Generator) Generate(b spec.Brief) *spec.Specification {
	return &spec.Specification{
		UserStories: g.userStories(b),
		Tasks:       g.tasks(b),
		Risks:       b.Risks,
	}
}

func (g *Generator) userStories(b spec.Brief) []string {
	if verb := primaryAction(b.Goal); verb != "" {
		return []string{
			fmt.Sprintf("As a %s, I want to %s so that I can accomplish my tasks efficiently", b.Users, b.Goal),
			fmt.Sprintf("As a %s, I want to receive real-time feedback while %sing so that I can track progress", b.Users, verb),
			fmt.Sprintf("As a %s, I want to modify and organize the %sed content so that it fits my workflow", b.Users, verb),
		}
	}
	return []string{
		fmt.Sprintf("As a %s, I want to %s so that I can achieve better results", b.Users, b.Goal),
		fmt.Sprintf("As a %s, I want clear status indicators and notifications so that I stay informed", b.Users),
		fmt.Sprintf("As a %s, I want flexible editing and organization options so that I can work my way", b.Users),
	}
}

func (g *Generator) tasks(b spec.Brief) []spec.Task {
	return []spec.Task{
		{ID: g.newID(), Text: fmt.Sprintf("Design UI mockups for %s template", b.Template), Group: "Design"},
		{ID: g.newID(), Text: fmt.Sprintf("Set up %s project structure", b.Template), Group: "Setup"},
		{ID: g.newID(), Text: fmt.Sprintf("Implement core feature: %s", b.Goal), Group: "Development"},
		{ID: g.newID(), Text: fmt.Sprintf("Add input validation considering: %s", b.Constraints), Group: "Development"},
		{ID: g.newID(), Text: fmt.Sprintf("Create API endpoints for %s", b.Goal), Group: "Backend"},
		{ID: g.newID(), Text: "Implement error handling and loading states", Group: "Development"},
		{ID: g.newID(), Text: fmt.Sprintf("Write unit tests for %s functionality", b.Goal), Group: "Testing"},
		{ID: g.newID(), Text: fmt.Sprintf("Test with target users: %s", b.Users), Group: "Testing"},
		{ID: g.newID(), Text: "Deploy to staging environment", Group: "Deployment"},
		{ID: g.newID(), Text: "Monitor and gather user feedback", Group: "Deployment"},
	}
}

// primaryAction returns the first known action verb appearing in the goal,
// or an empty string when none match.
func primaryAction(goal string) string {
	for _, word := range strings.Fields(strings.ToLower(goal)) {
		for _, verb := range actionVerbs {
			if word == verb {
				return verb
			}
		}
	}
	return ""
}
