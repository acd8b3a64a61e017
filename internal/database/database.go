package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/rs/zerolog"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	_ "modernc.org/sqlite"

	"mdlib/internal/config"
	"mdlib/internal/database/migration"
	"mdlib/internal/logging"
)

var sqlOpen = sql.Open

var (
	registerOnce sync.Once
	driverName   string
	registerErr  error
)

// StorageInitError reports that the library database could not be opened or its
// schema could not be created. It is fatal: the process must not serve requests.
type StorageInitError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageInitError) Error() string {
	return fmt.Sprintf("storage init: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageInitError) Unwrap() error { return e.Err }

// BuildSQLiteDSN constructs the connection string for the library file.
// Pragmas go in the DSN so every pooled connection enforces foreign keys.
// The path is kept out of URI form so any file name works.
// Example: /data/library.db?_pragma=foreign_keys%281%29&_pragma=busy_timeout%285000%29
func BuildSQLiteDSN(c config.LibraryConfig) (string, error) {
	if c.Path == "" {
		return "", errors.New("invalid library config: path is required")
	}

	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	if c.BusyTimeoutMS > 0 {
		q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", c.BusyTimeoutMS))
	}
	if c.Path != ":memory:" {
		q.Add("_pragma", "journal_mode(WAL)")
	}

	return c.Path + "?" + q.Encode(), nil
}

func otelDriver() (string, error) {
	registerOnce.Do(func() {
		driverName, registerErr = otelsql.Register("sqlite",
			otelsql.WithAttributes(semconv.DBSystemSqlite),
		)
	})
	return driverName, registerErr
}

// Library owns the single connection to the document library.
// Open is idempotent; Close releases the handle so a later Open starts fresh.
type Library struct {
	cfg config.LibraryConfig
	log zerolog.Logger

	mu sync.Mutex
	db *sql.DB
}

// NewLibrary prepares a library handle without touching the disk.
func NewLibrary(cfg config.LibraryConfig, log zerolog.Logger) *Library {
	return &Library{cfg: cfg, log: logging.Component(log, "database")}
}

// Open connects to the library file, creating it and its directory if needed,
// and applies the schema. A second call returns the already open handle.
// Every failure is a *StorageInitError.
func (l *Library) Open(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db, nil
	}

	dsn, err := BuildSQLiteDSN(l.cfg)
	if err != nil {
		return nil, &StorageInitError{Op: "config", Path: l.cfg.Path, Err: err}
	}

	if l.cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(l.cfg.Path), 0o750); err != nil {
			return nil, &StorageInitError{Op: "create directory", Path: l.cfg.Path, Err: err}
		}
	}

	name, err := otelDriver()
	if err != nil {
		return nil, &StorageInitError{Op: "register driver", Path: l.cfg.Path, Err: err}
	}

	db, err := sqlOpen(name, dsn)
	if err != nil {
		return nil, &StorageInitError{Op: "sql open", Path: l.cfg.Path, Err: err}
	}

	// One writer, one reader: SQLite serializes anyway and transactions stay simple.
	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, &StorageInitError{Op: "db ping", Path: l.cfg.Path, Err: err}
	}

	if err := migration.EnsureSchema(ctx, db, l.log); err != nil {
		_ = db.Close()
		return nil, &StorageInitError{Op: "ensure schema", Path: l.cfg.Path, Err: err}
	}

	l.log.Info().Str("event", "library_open").Str("path", l.cfg.Path).Msg("library opened")
	l.db = db
	return db, nil
}

// handle returns the open handle or nil before Open.
func (l *Library) handle() *sql.DB {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db
}

// Close closes the handle. Calling it on a closed library is a no-op.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	if err != nil {
		return fmt.Errorf("close library: %w", err)
	}
	l.log.Info().Str("event", "library_close").Msg("library closed")
	return nil
}
