// Package model defines the products sold through the catalog.
//
// This package contains the following main types:
//   - ShopProduct: a generic product with a title, a producer and a price
//   - BookProduct: a product with a page count, always sold at its base price
//   - CDProduct: a product with a play length
//   - ProductRow: the flat record a store reads and writes
//
// Every variant satisfies Product. Load and FromRow rebuild the right
// variant from a stored row using its type discriminator.
//
// Prices are decimal.Decimal values so that discounts do not accumulate
// binary rounding error.
package model
