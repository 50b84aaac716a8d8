// Package report renders collections of catalog products.
//
// This package contains writers for different output formats:
//   - TextWriter: a header line and one summary line per product
//   - XMLWriter: an XML document with configurable element names
//   - JSONWriter: a JSON array for tool integration
//   - MarkdownWriter: a Markdown table with a mermaid chart
//
// Every writer implements Writer. Render builds the complete output in
// memory; Write hands it to the output io.Writer in one call, so a failed
// rendering never leaves partial output behind.
package report
