package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/ghanshambordekar3/Task-Generator/internal/spec"
)

// Page geometry mirrors the markdown output's A4/15mm print defaults and
// must stay constant run-to-run so equal inputs produce equal documents.
const (
	pageMarginMM  = 15
	titleFontSize = 18
	headFontSize  = 14
	bodyFontSize  = 12
	lineHeightMM  = 6
)

// PDF renders the specification as a paginated A4 document with the same
// section order and content as Markdown. It never mutates the
// specification.
func PDF(title string, s *spec.Specification) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	// Pinned metadata date keeps output byte-identical run-to-run.
	doc.SetCreationDate(time.Unix(0, 0).UTC())
	doc.SetMargins(pageMarginMM, pageMarginMM, pageMarginMM)
	doc.SetAutoPageBreak(true, pageMarginMM)
	doc.AddPage()
	// Core fonts are cp1252; user text arrives as UTF-8.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, sec := range buildSections(title, s) {
		switch sec.kind {
		case kindTitle:
			doc.SetFont("Helvetica", "B", titleFontSize)
			doc.MultiCell(0, lineHeightMM+2, tr(sec.text), "", "L", false)
			doc.Ln(2)
		case kindHeading:
			doc.Ln(3)
			doc.SetFont("Helvetica", "B", headFontSize)
			doc.MultiCell(0, lineHeightMM, tr(sec.text), "", "L", false)
			doc.Ln(1)
		case kindGroupHeading:
			doc.Ln(2)
			doc.SetFont("Helvetica", "B", bodyFontSize)
			doc.MultiCell(0, lineHeightMM, tr(sec.text), "", "L", false)
		case kindBullets:
			doc.SetFont("Helvetica", "", bodyFontSize)
			for _, item := range sec.items {
				doc.MultiCell(0, lineHeightMM, tr("• "+item), "", "L", false)
			}
		case kindChecklist:
			doc.SetFont("Helvetica", "", bodyFontSize)
			for _, item := range sec.items {
				doc.MultiCell(0, lineHeightMM, tr("[ ] "+item), "", "L", false)
			}
		case kindParagraph:
			doc.SetFont("Helvetica", "", bodyFontSize)
			doc.MultiCell(0, lineHeightMM, tr(sec.text), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
