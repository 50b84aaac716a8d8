// Package config provides configuration structures and utilities for
// shopcatalog: the database location and report rendering preferences.
package config
