package report

import (
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultTitle is the report title used when none is configured.
const DefaultTitle = "Products"

// TextWriter outputs a plain text report: a header line followed by one
// summary line per product.
type TextWriter struct {
	baseWriter

	// header is the first line of the report, without the newline.
	header string
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithTitle sets the report title. The header line is the title in upper
// case followed by a colon, so "Products" becomes "PRODUCTS:".
func WithTitle(title string) TextWriterOption {
	return func(w *TextWriter) {
		w.header = HeaderLine(title)
	}
}

// HeaderLine returns the text header for title.
func HeaderLine(title string) string {
	return cases.Upper(language.Und).String(title) + ":"
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
		header:     HeaderLine(DefaultTitle),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Render returns the header and summary lines, each newline-terminated.
func (w *TextWriter) Render() ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(w.header)
	sb.WriteString("\n")
	for _, p := range w.products {
		sb.WriteString(p.SummaryLine())
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

// Write outputs the text report.
func (w *TextWriter) Write() (int, error) {
	return w.emit(w.Render())
}
