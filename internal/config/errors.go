package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrNoDatabaseDir is returned when the database directory is empty.
	ErrNoDatabaseDir = errors.New("no database directory: set --db or database.dir")

	// ErrInvalidFormat is returned for an unsupported report format.
	ErrInvalidFormat = errors.New("invalid report format: must be one of text, xml, json, markdown")

	// ErrEmptyTitle is returned when the report title is empty.
	ErrEmptyTitle = errors.New("invalid report title: must not be empty")

	// ErrInvalidXMLLabels is returned when an XML label is not a valid XML name.
	ErrInvalidXMLLabels = errors.New("invalid XML labels")
)
