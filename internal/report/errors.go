package report

import "errors"

var (
	// ErrOutputSink is returned when the output destination rejects data.
	ErrOutputSink = errors.New("report output failed")

	// ErrUnknownFormat is returned by ParseFormat and New for an
	// unsupported format name.
	ErrUnknownFormat = errors.New("unknown report format")

	// ErrInvalidLabel is returned when an XML label is not a valid name.
	ErrInvalidLabel = errors.New("invalid XML label")
)
