package model

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// percentBase is the divisor applied to a whole-number discount percentage.
var percentBase = decimal.NewFromInt(100)

// Chargeable is implemented by anything that has an effective price.
type Chargeable interface {
	// Price returns the effective price after any variant-specific adjustment.
	Price() decimal.Decimal
}

// Product is the capability contract shared by every catalog item.
// The set of implementations is closed: ShopProduct, BookProduct and CDProduct.
type Product interface {
	Chargeable

	// Kind reports which variant the product is.
	Kind() Kind
	// Title returns the product title.
	Title() string
	// Producer returns the producer first and main names joined by a space.
	Producer() string
	// ProducerFirstName returns the producer first name, which may be empty.
	ProducerFirstName() string
	// ProducerMainName returns the producer main name.
	ProducerMainName() string
	// BasePrice returns the price before any discount.
	BasePrice() decimal.Decimal
	// SummaryLine returns the one-line human-readable description.
	SummaryLine() string
	// Discount returns the stored discount percentage.
	Discount() int
	// SetDiscount stores a discount percentage.
	SetDiscount(percent int)
	// ID returns the persisted identifier, or 0 when HasID is false.
	ID() int64
	// SetID assigns the persisted identifier.
	SetID(id int64)
	// HasID reports whether an identifier has been assigned.
	HasID() bool
}

// ShopProduct is a generic catalog item and the base of the other variants.
//
// Only the discount and the identifier can change after construction.
type ShopProduct struct {
	title             string
	producerFirstName string
	producerMainName  string
	price             decimal.Decimal
	discount          int
	id                int64
	hasID             bool
}

// NewShopProduct creates a generic product with no discount and no identifier.
// Text fields are normalized to Unicode NFC so that equal titles compare equal
// regardless of how they were composed.
func NewShopProduct(title, firstName, mainName string, price decimal.Decimal) *ShopProduct {
	return &ShopProduct{
		title:             norm.NFC.String(title),
		producerFirstName: norm.NFC.String(firstName),
		producerMainName:  norm.NFC.String(mainName),
		price:             price,
	}
}

// Kind returns KindGeneric.
func (p *ShopProduct) Kind() Kind { return KindGeneric }

// Title returns the product title.
func (p *ShopProduct) Title() string { return p.title }

// ProducerFirstName returns the producer first name.
func (p *ShopProduct) ProducerFirstName() string { return p.producerFirstName }

// ProducerMainName returns the producer main name.
func (p *ShopProduct) ProducerMainName() string { return p.producerMainName }

// Producer returns "first main". An empty first name still produces the
// separating space, matching how the name is stored.
func (p *ShopProduct) Producer() string {
	return p.producerFirstName + " " + p.producerMainName
}

// BasePrice returns the undiscounted price.
func (p *ShopProduct) BasePrice() decimal.Decimal { return p.price }

// Discount returns the stored discount percentage.
func (p *ShopProduct) Discount() int { return p.discount }

// SetDiscount stores a whole-number discount percentage.
//
// The value is not range checked. A percentage below 0 raises the price
// and one above 100 makes it negative; callers that need a bounded
// discount must validate it themselves.
func (p *ShopProduct) SetDiscount(percent int) { p.discount = percent }

// ID returns the persisted identifier.
func (p *ShopProduct) ID() int64 { return p.id }

// SetID assigns the persisted identifier.
func (p *ShopProduct) SetID(id int64) {
	p.id = id
	p.hasID = true
}

// HasID reports whether SetID has been called.
func (p *ShopProduct) HasID() bool { return p.hasID }

// Price returns price - discount*price/100.
func (p *ShopProduct) Price() decimal.Decimal {
	return discounted(p.price, p.discount)
}

// SummaryLine returns "{title} ({mainName}, {firstName})".
func (p *ShopProduct) SummaryLine() string {
	return fmt.Sprintf("%s (%s, %s)", p.title, p.producerMainName, p.producerFirstName)
}

// discounted applies a whole-number percentage discount to price.
func discounted(price decimal.Decimal, percent int) decimal.Decimal {
	off := price.Mul(decimal.NewFromInt(int64(percent))).Div(percentBase)
	return price.Sub(off)
}

// BookProduct is a product with a page count. Its price ignores the discount.
type BookProduct struct {
	ShopProduct

	numPages int
}

// NewBookProduct creates a book. numPages must be positive.
func NewBookProduct(title, firstName, mainName string, price decimal.Decimal, numPages int) (*BookProduct, error) {
	if numPages <= 0 {
		return nil, fmt.Errorf("%w: page count must be positive, got %d", ErrInvalidVariantData, numPages)
	}
	return &BookProduct{
		ShopProduct: *NewShopProduct(title, firstName, mainName, price),
		numPages:    numPages,
	}, nil
}

// Kind returns KindBook.
func (b *BookProduct) Kind() Kind { return KindBook }

// NumPages returns the page count.
func (b *BookProduct) NumPages() int { return b.numPages }

// Price returns the base price. A stored discount is kept but never applied
// to books.
func (b *BookProduct) Price() decimal.Decimal { return b.price }

// SummaryLine appends the page count to the base summary.
func (b *BookProduct) SummaryLine() string {
	return fmt.Sprintf("%s: %d pages", b.ShopProduct.SummaryLine(), b.numPages)
}

// CDProduct is a product with a play length. It uses the generic
// discount-aware price.
type CDProduct struct {
	ShopProduct

	playLength int
}

// NewCDProduct creates a CD. playLength must be positive.
func NewCDProduct(title, firstName, mainName string, price decimal.Decimal, playLength int) (*CDProduct, error) {
	if playLength <= 0 {
		return nil, fmt.Errorf("%w: play length must be positive, got %d", ErrInvalidVariantData, playLength)
	}
	return &CDProduct{
		ShopProduct: *NewShopProduct(title, firstName, mainName, price),
		playLength:  playLength,
	}, nil
}

// Kind returns KindCD.
func (c *CDProduct) Kind() Kind { return KindCD }

// PlayLength returns the play length.
func (c *CDProduct) PlayLength() int { return c.playLength }

// SummaryLine appends the play length to the base summary.
func (c *CDProduct) SummaryLine() string {
	return fmt.Sprintf("%s: playing time %d", c.ShopProduct.SummaryLine(), c.playLength)
}

var (
	_ Product = (*ShopProduct)(nil)
	_ Product = (*BookProduct)(nil)
	_ Product = (*CDProduct)(nil)
)
