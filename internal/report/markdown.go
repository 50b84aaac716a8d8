package report

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/shopcatalog/internal/model"
)

// MarkdownWriter outputs the products as a GitHub Flavored Markdown table,
// followed by a mermaid pie chart of the product kinds.
type MarkdownWriter struct {
	baseWriter

	title string
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownTitle sets the level one heading.
func WithMarkdownTitle(title string) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.title = title
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		title:      DefaultTitle,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Render returns the Markdown document.
func (w *MarkdownWriter) Render() ([]byte, error) {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	md.H1(w.title)
	md.PlainText("")

	if len(w.products) == 0 {
		md.Note("The catalog is empty.")
		if err := md.Build(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	w.writeTable(md)
	w.writePieChart(md)

	if err := md.Build(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeTable writes one row per product in insertion order.
func (w *MarkdownWriter) writeTable(md *markdown.Markdown) {
	rows := make([][]string, len(w.products))
	for i, p := range w.products {
		id := "-"
		if p.HasID() {
			id = strconv.FormatInt(p.ID(), 10)
		}
		rows[i] = []string{
			id,
			escapeCell(p.Title()),
			escapeCell(p.Producer()),
			escapeCell(p.SummaryLine()),
			p.Price().String(),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"ID", "Title", "Producer", "Summary", "Price"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart with the number of products per kind.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown) {
	counts := map[model.Kind]uint64{}
	for _, p := range w.products {
		counts[p.Kind()]++
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Products by Kind"),
		piechart.WithShowData(true),
	)
	for _, kind := range []model.Kind{model.KindGeneric, model.KindBook, model.KindCD} {
		if counts[kind] > 0 {
			chart.LabelAndIntValue(kind.String(), counts[kind])
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// escapeCell keeps a pipe in a value from splitting the table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Write outputs the Markdown report.
func (w *MarkdownWriter) Write() (int, error) {
	return w.emit(w.Render())
}
