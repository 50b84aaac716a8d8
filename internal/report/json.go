package report

import (
	"encoding/json"
	"io"

	"github.com/shopspring/decimal"

	"github.com/nao1215/shopcatalog/internal/model"
)

// JSONWriter outputs the products as a JSON array.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONProduct is the JSON form of one product.
type JSONProduct struct {
	// ID is omitted for products that were never persisted.
	ID       *int64          `json:"id,omitempty"`
	Kind     model.Kind      `json:"kind"`
	Title    string          `json:"title"`
	Producer string          `json:"producer"`
	Summary  string          `json:"summary"`
	Price    decimal.Decimal `json:"price"`
	Discount int             `json:"discount"`
}

// newJSONProduct converts p into its JSON form.
func newJSONProduct(p model.Product) JSONProduct {
	jp := JSONProduct{
		Kind:     p.Kind(),
		Title:    p.Title(),
		Producer: p.Producer(),
		Summary:  p.SummaryLine(),
		Price:    p.Price(),
		Discount: p.Discount(),
	}
	if p.HasID() {
		id := p.ID()
		jp.ID = &id
	}
	return jp
}

// Render returns the JSON array followed by a newline.
func (w *JSONWriter) Render() ([]byte, error) {
	items := make([]JSONProduct, 0, len(w.products))
	for _, p := range w.products {
		items = append(items, newJSONProduct(p))
	}

	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(items, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(items)
	}

	if err != nil {
		return nil, err
	}

	// Add trailing newline for better terminal output
	return append(data, '\n'), nil
}

// Write outputs the JSON report.
func (w *JSONWriter) Write() (int, error) {
	return w.emit(w.Render())
}
