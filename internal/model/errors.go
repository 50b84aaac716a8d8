package model

import "errors"

var (
	// ErrNotFound is returned when no product row matches an identifier.
	ErrNotFound = errors.New("product not found")

	// ErrInvalidVariantData is returned when a variant-specific field is
	// missing or out of range, such as a non-positive page count.
	ErrInvalidVariantData = errors.New("invalid product variant data")

	// ErrUnknownProduct is returned when a Product implementation outside
	// this package is passed where a concrete variant is required.
	ErrUnknownProduct = errors.New("unknown product implementation")
)
