package report

import (
	"fmt"
	"io"
	"strings"
)

// Format names a report output format.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatXML      Format = "xml"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatText, FormatXML, FormatJSON, FormatMarkdown}
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// ParseFormat converts a case-insensitive name into a Format.
// "md" is accepted as an alias for markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "xml":
		return FormatXML, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Options holds the settings applied by New.
type Options struct {
	// Title is the report title for text and markdown output.
	// Empty means DefaultTitle.
	Title string

	// Labels overrides the XML names. Empty fields keep their defaults.
	Labels XMLLabels

	// Indent enables indented XML and JSON output.
	Indent bool
}

// New returns the Writer for format, writing to output.
func New(format Format, output io.Writer, opts Options) (Writer, error) {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	switch format {
	case FormatText:
		return NewTextWriter(output, WithTitle(title)), nil
	case FormatXML:
		xmlOpts := []XMLWriterOption{WithLabels(opts.Labels)}
		if opts.Indent {
			xmlOpts = append(xmlOpts, WithXMLIndent("  "))
		}
		return NewXMLWriter(output, xmlOpts...), nil
	case FormatJSON:
		var jsonOpts []JSONWriterOption
		if opts.Indent {
			jsonOpts = append(jsonOpts, WithIndent("", "  "))
		}
		return NewJSONWriter(output, jsonOpts...), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output, WithMarkdownTitle(title)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}
