// Package main provides the entry point for the shopcatalog CLI.
//
// shopcatalog keeps a small catalog of products (generic items, books and
// CDs) in a SQLite database and prints reports about them.
//
// Usage:
//
//	shopcatalog add --type book --title "The Master" --first Mikhail --main Bulgakov --price 9.99 --pages 480
//	shopcatalog report --format xml
//	shopcatalog demo
//
// See --help for all available options.
package main

// main is the entry point for shopcatalog.
func main() {
	Execute()
}
