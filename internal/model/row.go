package model

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductRow is the stored form of a product, one column per field.
// FirstName is nil when the column is NULL.
type ProductRow struct {
	ID         int64
	Type       string
	FirstName  *string
	MainName   string
	Title      string
	Price      decimal.Decimal
	NumPages   int
	PlayLength int
	Discount   int
}

// RowFetcher reads a single product row by identifier.
//
// Implementations must return an error wrapping ErrNotFound when the row
// does not exist. A nil row with a nil error is never valid.
type RowFetcher interface {
	FetchRow(ctx context.Context, id int64) (*ProductRow, error)
}

// Load fetches the row for id and builds the matching product variant.
func Load(ctx context.Context, fetcher RowFetcher, id int64) (Product, error) {
	row, err := fetcher.FetchRow(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return FromRow(row)
}

// FromRow builds a product from a stored row. The variant is selected by
// comparing the row type with the book and cd discriminators; any other
// value yields a generic ShopProduct. The stored identifier and discount
// are applied after construction.
func FromRow(row *ProductRow) (Product, error) {
	firstName := ""
	if row.FirstName != nil {
		firstName = *row.FirstName
	}

	var product Product
	switch ParseKind(row.Type) {
	case KindBook:
		book, err := NewBookProduct(row.Title, firstName, row.MainName, row.Price, row.NumPages)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", row.ID, err)
		}
		product = book
	case KindCD:
		cd, err := NewCDProduct(row.Title, firstName, row.MainName, row.Price, row.PlayLength)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", row.ID, err)
		}
		product = cd
	default:
		product = NewShopProduct(row.Title, firstName, row.MainName, row.Price)
	}

	product.SetID(row.ID)
	product.SetDiscount(row.Discount)
	return product, nil
}

// ToRow converts a product into its stored form. The ID field is zero
// when the product has not been persisted yet.
func ToRow(p Product) (*ProductRow, error) {
	firstName := p.ProducerFirstName()
	row := &ProductRow{
		ID:        p.ID(),
		Type:      p.Kind().String(),
		FirstName: &firstName,
		MainName:  p.ProducerMainName(),
		Title:     p.Title(),
		Price:     p.BasePrice(),
		Discount:  p.Discount(),
	}

	switch v := p.(type) {
	case *BookProduct:
		row.NumPages = v.NumPages()
	case *CDProduct:
		row.PlayLength = v.PlayLength()
	case *ShopProduct:
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownProduct, p)
	}
	return row, nil
}
