package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"cytostats/domain/stats"
	"cytostats/internal/errors"
)

// MarkdownReport renders a run as a human-readable Markdown document:
// statistic, layout, warnings and the full result table.
func MarkdownReport(run *stats.Run) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Statistics run %s\n\n", run.ID)
	fmt.Fprintf(&b, "- Statistic: %s (%s)\n", run.Statistic, run.Statistic.Label())
	layout := "wide"
	if run.Long {
		layout = "long"
	}
	fmt.Fprintf(&b, "- Layout: %s\n", layout)
	fmt.Fprintf(&b, "- Rows: %d\n", len(run.Table.Rows))
	fmt.Fprintf(&b, "- Computed: %s\n\n", run.CreatedAt.Format("2006-01-02 15:04:05 MST"))

	if len(run.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range run.Warnings {
			fmt.Fprintf(&b, "- **%s**: %s\n", w.Code, w.Message)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Results\n\n")
	writeMarkdownTable(&b, run.Table)
	return b.String()
}

// HTMLReport renders the Markdown report to HTML.
func HTMLReport(run *stats.Run) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(MarkdownReport(run)))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}

// Report writes an HTML report for a run. A .html extension is appended
// when the path has none.
type Report struct {
	Run *stats.Run
}

func (r Report) Export(path string, _ *stats.Table) (string, error) {
	if filepath.Ext(path) == "" {
		path += ".html"
	}
	if err := os.WriteFile(path, HTMLReport(r.Run), 0o644); err != nil {
		return "", errors.ExportError("failed to write report", err)
	}
	return path, nil
}

func writeMarkdownTable(b *strings.Builder, t *stats.Table) {
	writeMarkdownRow(b, t.Columns)
	sep := make([]string, len(t.Columns))
	for i := range sep {
		sep[i] = "---"
	}
	writeMarkdownRow(b, sep)
	for _, row := range t.Rows {
		writeMarkdownRow(b, row)
	}
}

func writeMarkdownRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}
