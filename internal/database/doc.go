// Package database provides SQLite-based storage for the product catalog.
//
// CatalogDB keeps one row per product in the products table. The type
// column is the discriminator that model.FromRow uses to pick the
// product variant when a row is loaded back.
//
// We use SQLite via modernc.org/sqlite because it is CGO-free and the
// database is a single file that is easy to back up or delete.
package database
