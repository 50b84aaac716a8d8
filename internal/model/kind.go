package model

// Kind identifies which product variant a value or a stored row represents.
// The stored form is the discriminator column of the products table.
type Kind string

// Product kinds.
const (
	// KindGeneric is a plain ShopProduct. Any discriminator that is not
	// one of the other kinds decodes to KindGeneric.
	KindGeneric Kind = "generic"
	// KindBook is a BookProduct.
	KindBook Kind = "book"
	// KindCD is a CDProduct.
	KindCD Kind = "cd"
)

// String returns the discriminator literal.
func (k Kind) String() string {
	return string(k)
}

// ParseKind maps a stored discriminator to a Kind.
// Matching is exact; "Book" or " cd" decode to KindGeneric.
func ParseKind(s string) Kind {
	switch s {
	case string(KindBook):
		return KindBook
	case string(KindCD):
		return KindCD
	default:
		return KindGeneric
	}
}
