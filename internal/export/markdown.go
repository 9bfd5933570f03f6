package export

import (
	"strings"

	"github.com/ghanshambordekar3/Task-Generator/internal/spec"
)

// Markdown renders a specification as UTF-8 markdown text. The output is a
// pure function of the title and the specification's current state; equal
// inputs produce byte-identical documents.
func Markdown(title string, s *spec.Specification) string {
	var b strings.Builder
	for _, sec := range buildSections(title, s) {
		switch sec.kind {
		case kindTitle:
			b.WriteString("# " + sec.text + "\n")
		case kindHeading:
			b.WriteString("\n## " + sec.text + "\n")
		case kindGroupHeading:
			b.WriteString("\n### " + sec.text + "\n")
		case kindBullets:
			for _, item := range sec.items {
				b.WriteString("- " + item + "\n")
			}
		case kindChecklist:
			for _, item := range sec.items {
				b.WriteString("- [ ] " + item + "\n")
			}
		case kindParagraph:
			b.WriteString(sec.text + "\n")
		}
	}
	return b.String()
}
