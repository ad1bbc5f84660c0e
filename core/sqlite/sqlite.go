// Package sqlite opens catalog databases. The pure Go driver
// (modernc.org/sqlite) is the default; building with -tags cgo_sqlite
// switches to mattn/go-sqlite3.
package sqlite

import (
	"database/sql"
)

// Open opens (creating if needed) the database at dsn with the compiled-in driver.
func Open(dsn string) (*sql.DB, error) {
	return sql.Open(driverName, dsn)
}

// OpenReadOnly opens an existing database file for reading. Both drivers
// honour the URI form, so the mode survives the DSN parser.
func OpenReadOnly(path string) (*sql.DB, error) {
	return Open("file:" + path + "?mode=ro")
}

// Info describes the compiled-in driver, for `scripref version`.
type Info struct {
	Driver  string // "purego" or "cgo"
	Package string
}

// GetInfo returns the compiled-in driver.
func GetInfo() Info {
	return Info{Driver: driverType, Package: driverPackage}
}
