package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/nao1215/shopcatalog/internal/model"
)

// Writer collects products and renders them in one output format.
//
// Products are rendered in the order they were added. Write may be called
// any number of times; each call renders the whole current collection.
type Writer interface {
	// AddProduct appends a product to the collection. Duplicates are kept.
	AddProduct(p model.Product)

	// Products returns a copy of the collected products in insertion order.
	Products() []model.Product

	// Render returns the complete rendering without touching the output.
	Render() ([]byte, error)

	// Write renders the collection and writes it to the configured output
	// in a single call. Nothing is written when rendering fails.
	// Returns the number of bytes written and any error encountered.
	Write() (int, error)
}

// MultiWriter writes to multiple Writers.
// This is useful for writing one collection in several formats at once.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that forwards to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// AddProduct adds p to every writer.
func (m *MultiWriter) AddProduct(p model.Product) {
	for _, w := range m.writers {
		w.AddProduct(p)
	}
}

// Products returns the products of the first writer.
func (m *MultiWriter) Products() []model.Product {
	if len(m.writers) == 0 {
		return nil
	}
	return m.writers[0].Products()
}

// Render concatenates the renderings of all writers.
func (m *MultiWriter) Render() ([]byte, error) {
	var buf bytes.Buffer
	for _, w := range m.writers {
		data, err := w.Render()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

// Write outputs the collection through every writer.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write() (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write()
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the product collection and output handling shared
// by the format writers.
type baseWriter struct {
	output   io.Writer
	products []model.Product
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// AddProduct appends p to the collection.
func (b *baseWriter) AddProduct(p model.Product) {
	b.products = append(b.products, p)
}

// Products returns a copy of the collection.
func (b *baseWriter) Products() []model.Product {
	out := make([]model.Product, len(b.products))
	copy(out, b.products)
	return out
}

// emit writes a finished rendering to the output.
func (b *baseWriter) emit(data []byte, err error) (int, error) {
	if err != nil {
		return 0, err
	}
	n, err := b.output.Write(data)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrOutputSink, err)
	}
	return n, nil
}
