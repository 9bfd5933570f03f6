// internal/export/export.go
//
// Export destinations. Renderers are pure; these helpers only decide where
// the rendered bytes land (a file in the export directory, or the system
// clipboard).

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"

	"github.com/ghanshambordekar3/Task-Generator/internal/spec"
)

// Clock lets tests pin export file names.
type Clock func() time.Time

// Exporter writes rendered documents into a directory.
type Exporter struct {
	dir   string
	clock Clock
}

// NewExporter returns an exporter rooted at dir. A nil clock falls back to
// the wall clock.
func NewExporter(dir string, clock Clock) *Exporter {
	if clock == nil {
		clock = time.Now
	}
	return &Exporter{dir: dir, clock: clock}
}

func (e *Exporter) fileName(ext string) string {
	return fmt.Sprintf("tasks-%d%s", e.clock().UnixMilli(), ext)
}

// WriteMarkdown renders the markdown document and writes it to the export
// directory. It returns the path of the written file.
func (e *Exporter) WriteMarkdown(title string, s *spec.Specification) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("export: ensure dir: %w", err)
	}
	path := filepath.Join(e.dir, e.fileName(".md"))
	if err := os.WriteFile(path, []byte(Markdown(title, s)), 0o644); err != nil {
		return "", fmt.Errorf("export: write markdown: %w", err)
	}
	return path, nil
}

// WritePDF renders the paginated document and writes it to the export
// directory. It returns the path of the written file.
func (e *Exporter) WritePDF(title string, s *spec.Specification) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("export: ensure dir: %w", err)
	}
	data, err := PDF(title, s)
	if err != nil {
		return "", err
	}
	path := filepath.Join(e.dir, e.fileName(".pdf"))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("export: write pdf: %w", err)
	}
	return path, nil
}

// CopyMarkdown places the markdown document on the system clipboard.
func CopyMarkdown(title string, s *spec.Specification) error {
	if err := clipboard.WriteAll(Markdown(title, s)); err != nil {
		return fmt.Errorf("export: copy to clipboard: %w", err)
	}
	return nil
}
