package report

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"unicode"
)

// XMLLabels names the elements and the attribute of the XML report.
type XMLLabels struct {
	// Root is the document element.
	Root string `yaml:"root,omitempty"`
	// Item is the element written once per product.
	Item string `yaml:"item,omitempty"`
	// Name is the item attribute holding the product title.
	Name string `yaml:"name,omitempty"`
	// Summary is the element nested in each item holding the summary line.
	Summary string `yaml:"summary,omitempty"`
}

// DefaultXMLLabels returns the labels used when none are configured.
func DefaultXMLLabels() XMLLabels {
	return XMLLabels{
		Root:    "Products",
		Item:    "Product",
		Name:    "Name",
		Summary: "Summary",
	}
}

// Merge returns l with empty fields taken from defaults.
func (l XMLLabels) Merge(defaults XMLLabels) XMLLabels {
	if l.Root == "" {
		l.Root = defaults.Root
	}
	if l.Item == "" {
		l.Item = defaults.Item
	}
	if l.Name == "" {
		l.Name = defaults.Name
	}
	if l.Summary == "" {
		l.Summary = defaults.Summary
	}
	return l
}

// Validate checks that every label is usable as an XML name.
func (l XMLLabels) Validate() error {
	for _, name := range []string{l.Root, l.Item, l.Name, l.Summary} {
		if !isXMLName(name) {
			return fmt.Errorf("%w: %q", ErrInvalidLabel, name)
		}
	}
	return nil
}

// isXMLName reports whether s is a plausible XML name without a namespace
// prefix. Non-ASCII letters are accepted so labels can be localized.
func isXMLName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r), r == '_':
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// XMLWriter outputs an XML document with one element per product.
// Titles and summaries are escaped by encoding/xml.
type XMLWriter struct {
	baseWriter

	labels XMLLabels

	// indent is the per-level indentation; empty means compact output.
	indent string
}

// XMLWriterOption configures an XMLWriter.
type XMLWriterOption func(*XMLWriter)

// WithLabels overrides the element and attribute names. Empty fields keep
// their defaults.
func WithLabels(labels XMLLabels) XMLWriterOption {
	return func(w *XMLWriter) {
		w.labels = labels.Merge(DefaultXMLLabels())
	}
}

// WithXMLIndent enables indented output using indent for each level.
func WithXMLIndent(indent string) XMLWriterOption {
	return func(w *XMLWriter) {
		w.indent = indent
	}
}

// NewXMLWriter creates an XMLWriter that outputs to the given writer.
func NewXMLWriter(output io.Writer, opts ...XMLWriterOption) *XMLWriter {
	w := &XMLWriter{
		baseWriter: newBaseWriter(output),
		labels:     DefaultXMLLabels(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Render returns the UTF-8 XML document.
func (w *XMLWriter) Render() ([]byte, error) {
	if err := w.labels.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	if w.indent != "" {
		enc.Indent("", w.indent)
	}

	root := xml.StartElement{Name: xml.Name{Local: w.labels.Root}}
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}

	for _, p := range w.products {
		item := xml.StartElement{
			Name: xml.Name{Local: w.labels.Item},
			Attr: []xml.Attr{{Name: xml.Name{Local: w.labels.Name}, Value: p.Title()}},
		}
		if err := enc.EncodeToken(item); err != nil {
			return nil, err
		}
		summary := xml.StartElement{Name: xml.Name{Local: w.labels.Summary}}
		if err := enc.EncodeElement(p.SummaryLine(), summary); err != nil {
			return nil, err
		}
		if err := enc.EncodeToken(item.End()); err != nil {
			return nil, err
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	buf.WriteString("\n")

	return buf.Bytes(), nil
}

// Write outputs the XML report.
func (w *XMLWriter) Write() (int, error) {
	return w.emit(w.Render())
}
