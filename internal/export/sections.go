// internal/export/sections.go
//
// Both export formats render the same section sequence. Building that
// sequence in one place is what keeps the markdown and PDF outputs in
// lockstep: a field visible in one cannot be invisible in the other.

package export

import "github.com/ghanshambordekar3/Task-Generator/internal/spec"

type sectionKind int

const (
	kindTitle sectionKind = iota
	kindHeading
	kindGroupHeading
	kindBullets
	kindChecklist
	kindParagraph
)

type section struct {
	kind  sectionKind
	text  string
	items []string
}

// buildSections flattens a specification into the fixed export order:
// title, user stories, tasks grouped in first-seen order, then risks only
// when non-empty.
func buildSections(title string, s *spec.Specification) []section {
	sections := []section{
		{kind: kindTitle, text: "Feature: " + title},
		{kind: kindHeading, text: "User Stories"},
	}
	stories := make([]string, 0, len(s.UserStories))
	stories = append(stories, s.UserStories...)
	sections = append(sections, section{kind: kindBullets, items: stories})
	sections = append(sections, section{kind: kindHeading, text: "Tasks"})
	for _, g := range s.Groups() {
		items := make([]string, 0, len(g.Tasks))
		for _, t := range g.Tasks {
			items = append(items, t.Text)
		}
		sections = append(sections,
			section{kind: kindGroupHeading, text: g.Label},
			section{kind: kindChecklist, items: items},
		)
	}
	if s.Risks != "" {
		sections = append(sections,
			section{kind: kindHeading, text: "Risks/Unknowns"},
			section{kind: kindParagraph, text: s.Risks},
		)
	}
	return sections
}
