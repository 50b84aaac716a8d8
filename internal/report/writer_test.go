package report

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nao1215/shopcatalog/internal/model"
)

// createTestProducts returns one product of each kind.
func createTestProducts(t *testing.T) []model.Product {
	t.Helper()

	generic := model.NewShopProduct("Heart of a Dog", "Mikhail", "Bulgakov", decimal.RequireFromString("5.99"))

	book, err := model.NewBookProduct("The Master & <Margarita>", "Mikhail", "Bulgakov", decimal.NewFromInt(10), 220)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	book.SetID(7)

	cd, err := model.NewCDProduct(`Say "Hi"`, "Nick", "Cave", decimal.NewFromInt(20), 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cd.SetDiscount(10)

	return []model.Product{generic, book, cd}
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestTextWriter tests the plain text writer.
func TestTextWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes exact single product report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf)
		w.AddProduct(model.NewShopProduct("Heart of a Dog", "Mikhail", "Bulgakov", decimal.RequireFromString("5.99")))

		n, err := w.Write()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "PRODUCTS:\nHeart of a Dog (Bulgakov, Mikhail)\n"
		if buf.String() != want {
			t.Errorf("expected %q, got %q", want, buf.String())
		}
		if n != len(want) {
			t.Errorf("expected %d bytes, got %d", len(want), n)
		}
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf)
		products := createTestProducts(t)
		for i := len(products) - 1; i >= 0; i-- {
			w.AddProduct(products[i])
		}

		if _, err := w.Write(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		if len(lines) != 4 {
			t.Fatalf("expected 4 lines, got %d: %q", len(lines), lines)
		}
		for i, p := range w.Products() {
			if lines[i+1] != p.SummaryLine() {
				t.Errorf("line %d: expected %q, got %q", i+1, p.SummaryLine(), lines[i+1])
			}
		}
		if lines[1] != products[2].SummaryLine() {
			t.Errorf("expected last added product first, got %q", lines[1])
		}
	})

	t.Run("empty collection writes only the header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "PRODUCTS:\n" {
			t.Errorf("unexpected output %q", buf.String())
		}
	})

	t.Run("custom title is upper cased", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf, WithTitle("Товары")).Write(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "ТОВАРЫ:\n" {
			t.Errorf("unexpected output %q", buf.String())
		}
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		t.Parallel()

		w := NewTextWriter(&bytes.Buffer{})
		p := model.NewShopProduct("t", "f", "m", decimal.Zero)
		w.AddProduct(p)
		w.AddProduct(p)
		if len(w.Products()) != 2 {
			t.Errorf("expected 2 products, got %d", len(w.Products()))
		}
	})

	t.Run("repeated writes render the same output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf)
		for _, p := range createTestProducts(t) {
			w.AddProduct(p)
		}

		if _, err := w.Write(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first := buf.String()
		buf.Reset()
		if _, err := w.Write(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != first {
			t.Errorf("expected identical output, got %q and %q", first, buf.String())
		}
	})

	t.Run("sink failure is returned", func(t *testing.T) {
		t.Parallel()

		w := NewTextWriter(failingWriter{})
		_, err := w.Write()
		if !errors.Is(err, ErrOutputSink) {
			t.Errorf("expected ErrOutputSink, got %v", err)
		}
	})
}

// xmlDocument mirrors the default XML labels for decoding.
type xmlDocument struct {
	XMLName xml.Name `xml:"Products"`
	Items   []struct {
		Name    string `xml:"Name,attr"`
		Summary string `xml:"Summary"`
	} `xml:"Product"`
}

// TestXMLWriter tests the XML writer.
func TestXMLWriter(t *testing.T) {
	t.Parallel()

	t.Run("output round-trips through a parser", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewXMLWriter(&buf)
		products := createTestProducts(t)
		for _, p := range products {
			w.AddProduct(p)
		}

		if _, err := w.Write(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(buf.String(), `<?xml version="1.0" encoding="UTF-8"?>`) {
			t.Errorf("expected XML declaration, got %q", buf.String())
		}

		var doc xmlDocument
		if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
			t.Fatalf("failed to parse output: %v\n%s", err, buf.String())
		}
		if len(doc.Items) != len(products) {
			t.Fatalf("expected %d items, got %d", len(products), len(doc.Items))
		}
		for i, p := range products {
			if doc.Items[i].Name != p.Title() {
				t.Errorf("item %d: expected name %q, got %q", i, p.Title(), doc.Items[i].Name)
			}
			if doc.Items[i].Summary != p.SummaryLine() {
				t.Errorf("item %d: expected summary %q, got %q", i, p.SummaryLine(), doc.Items[i].Summary)
			}
		}
	})

	t.Run("special characters are escaped", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewXMLWriter(&buf)
		for _, p := range createTestProducts(t) {
			w.AddProduct(p)
		}
		if _, err := w.Write(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if strings.Contains(out, "<Margarita>") {
			t.Error("expected angle brackets in title to be escaped")
		}
		if !strings.Contains(out, "&amp;") {
			t.Error("expected ampersand to be escaped")
		}
	})

	t.Run("compact single product document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewXMLWriter(&buf)
		w.AddProduct(model.NewShopProduct("Heart of a Dog", "Mikhail", "Bulgakov", decimal.RequireFromString("5.99")))
		if _, err := w.Write(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
			`<Products><Product Name="Heart of a Dog"><Summary>Heart of a Dog (Bulgakov, Mikhail)</Summary></Product></Products>` + "\n"
		if buf.String() != want {
			t.Errorf("expected %q, got %q", want, buf.String())
		}
	})

	t.Run("custom labels are used", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewXMLWriter(&buf, WithLabels(XMLLabels{Root: "Товары", Item: "Товар"}))
		w.AddProduct(model.NewShopProduct("A", "B", "C", decimal.Zero))
		if _, err := w.Write(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "<Товары>") || !strings.Contains(out, `<Товар Name="A">`) {
			t.Errorf("expected custom labels, got %q", out)
		}
		if !strings.Contains(out, "<Summary>") {
			t.Errorf("expected default summary label, got %q", out)
		}
	})

	t.Run("invalid label writes nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewXMLWriter(&buf, WithLabels(XMLLabels{Root: "bad name"}))
		w.AddProduct(model.NewShopProduct("A", "B", "C", decimal.Zero))

		n, err := w.Write()
		if !errors.Is(err, ErrInvalidLabel) {
			t.Errorf("expected ErrInvalidLabel, got %v", err)
		}
		if n != 0 || buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})
}

// TestJSONWriter tests the JSON writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("outputs valid JSON in insertion order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		products := createTestProducts(t)
		for _, p := range products {
			w.AddProduct(p)
		}

		if _, err := w.Write(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var items []map[string]any
		if err := json.Unmarshal(buf.Bytes(), &items); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if len(items) != len(products) {
			t.Fatalf("expected %d items, got %d", len(products), len(items))
		}
		if items[0]["title"] != "Heart of a Dog" {
			t.Errorf("unexpected first title %v", items[0]["title"])
		}
		if _, ok := items[0]["id"]; ok {
			t.Error("expected id to be omitted for unsaved product")
		}
		if items[1]["kind"] != "book" {
			t.Errorf("expected book kind, got %v", items[1]["kind"])
		}
		if items[2]["price"] != "18" {
			t.Errorf("expected discounted cd price 18, got %v", items[2]["price"])
		}
	})

	t.Run("compact output by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		w.AddProduct(model.NewShopProduct("A", "B", "C", decimal.Zero))
		if _, err := w.Write(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Count(buf.String(), "\n") != 1 {
			t.Errorf("expected single line output, got %q", buf.String())
		}
	})

	t.Run("pretty print with indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithIndent("", "  "))
		w.AddProduct(model.NewShopProduct("A", "B", "C", decimal.Zero))
		if _, err := w.Write(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  ") {
			t.Errorf("expected indented output, got %q", buf.String())
		}
	})

	t.Run("empty collection is an empty array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "[]\n" {
			t.Errorf("expected empty array, got %q", buf.String())
		}
	})
}

// TestMarkdownWriter tests the Markdown writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes heading and table rows", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		for _, p := range createTestProducts(t) {
			w.AddProduct(p)
		}

		if _, err := w.Write(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "# Products") {
			t.Error("expected heading")
		}
		if !strings.Contains(out, "Heart of a Dog (Bulgakov, Mikhail)") {
			t.Error("expected summary line in table")
		}
		if strings.Index(out, "Heart of a Dog") > strings.Index(out, "Say") {
			t.Error("expected rows in insertion order")
		}
		if !strings.Contains(out, "mermaid") {
			t.Error("expected mermaid chart")
		}
	})

	t.Run("empty collection writes a note", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf, WithMarkdownTitle("Catalog")).Write(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "# Catalog") || !strings.Contains(out, "empty") {
			t.Errorf("unexpected output %q", out)
		}
	})
}

// TestMultiWriter tests writing through several writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var textBuf, jsonBuf bytes.Buffer
		m := NewMultiWriter(NewTextWriter(&textBuf), NewJSONWriter(&jsonBuf))
		m.AddProduct(model.NewShopProduct("A", "B", "C", decimal.Zero))

		n, err := m.Write()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != textBuf.Len()+jsonBuf.Len() {
			t.Errorf("expected %d bytes, got %d", textBuf.Len()+jsonBuf.Len(), n)
		}
		if !strings.Contains(textBuf.String(), "A (C, B)") {
			t.Error("expected text output")
		}
		if !strings.Contains(jsonBuf.String(), `"title":"A"`) {
			t.Error("expected JSON output")
		}
		if len(m.Products()) != 1 {
			t.Errorf("expected 1 product, got %d", len(m.Products()))
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		m := NewMultiWriter(NewTextWriter(failingWriter{}), NewTextWriter(&buf))
		if _, err := m.Write(); !errors.Is(err, ErrOutputSink) {
			t.Errorf("expected ErrOutputSink, got %v", err)
		}
		if buf.Len() != 0 {
			t.Error("expected second writer to be skipped")
		}
	})
}
