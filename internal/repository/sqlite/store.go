// Package sqlite implements the repository interfaces on SQLite with an FTS5
// full-text index kept in step by triggers.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"mdlib/internal/repository"
)

type options struct {
	now   func() time.Time
	newID func() string
}

// Option customizes a store.
type Option func(*options)

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces random UUIDs as the source of new ids.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type scanner interface {
	Scan(dest ...any) error
}

// withTx runs fn in a transaction and commits when it returns nil.
// fn must only use tx: the pool holds a single connection.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin txn: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit txn: %w", err)
	}
	committed = true
	return nil
}

// primaryCode extracts the primary SQLite result code from a driver error.
func primaryCode(err error) (int, bool) {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() & 0xff, true
	}
	return 0, false
}

// writeErr wraps a failed write, tagging constraint failures.
func writeErr(op string, err error) error {
	if code, ok := primaryCode(err); ok && code == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("%s: %w: %v", op, repository.ErrConstraintViolation, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// searchErr wraps a failed full-text query. The statement text is fixed, so a
// generic SQL error can only come from the MATCH expression.
func searchErr(err error) error {
	if code, ok := primaryCode(err); ok && code == sqlite3.SQLITE_ERROR {
		return fmt.Errorf("search documents: %w: %v", repository.ErrInvalidQuery, err)
	}
	return fmt.Errorf("search documents: %w", err)
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
