// Package repository contains data access layer abstractions for the library.
// Implementations live in subpackages (sqlite) inside this directory.
//
// Absent rows are not errors: point lookups return a nil model and deletes
// return false. Errors mean the query itself failed.
package repository

import "errors"

var (
	// ErrConstraintViolation is returned when a write references a row that
	// does not exist or duplicates a unique value.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrInvalidQuery is returned when the full-text engine rejects a query.
	ErrInvalidQuery = errors.New("invalid search query")
)
