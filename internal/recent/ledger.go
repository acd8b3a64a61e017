// Package recent keeps the editor's "Open Recent" list of plain file paths.
//
// The ledger is best-effort bookkeeping: read and write failures are logged
// and never returned to the caller. It is independent of the document library.
package recent

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog"

	"mdlib/internal/logging"
	"mdlib/internal/model"
)

// MaxEntries is the number of paths the ledger keeps.
const MaxEntries = 10

// Ledger is a most-recent-first list of file paths persisted as a JSON array.
// Calls within one process are serialized; separate processes sharing the
// file can still lose each other's updates.
type Ledger struct {
	path string
	log  zerolog.Logger
	now  func() time.Time

	mu sync.Mutex
}

// Option customizes a Ledger.
type Option func(*Ledger)

// WithClock replaces time.Now as the source of lastOpened timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New returns a ledger stored at path. Nothing is read until the first call.
func New(path string, log zerolog.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		path: path,
		log:  logging.Component(log, "recent_files"),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// List returns the persisted entries, most recent first. A missing or
// unreadable file yields an empty list.
func (l *Ledger) List() []model.RecentFile {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

// Add moves path to the head of the list with a fresh timestamp and drops
// entries beyond MaxEntries.
func (l *Ledger) Add(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]model.RecentFile, 0, MaxEntries)
	entries = append(entries, model.RecentFile{
		Path:       path,
		Name:       DisplayName(path),
		LastOpened: l.now().UnixMilli(),
	})
	for _, e := range l.load() {
		if len(entries) == MaxEntries {
			break
		}
		if e.Path != path {
			entries = append(entries, e)
		}
	}
	l.save(entries)
}

// Clear persists an empty list.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.save([]model.RecentFile{})
}

func (l *Ledger) load() []model.RecentFile {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.RecentFile{}
	}
	if err != nil {
		l.log.Warn().Str("event", "ledger_read_failed").Str("path", l.path).Err(err).Msg("failed to load recent files")
		return []model.RecentFile{}
	}

	var entries []model.RecentFile
	if err := json.Unmarshal(data, &entries); err != nil {
		l.log.Warn().Str("event", "ledger_read_failed").Str("path", l.path).Err(err).Msg("failed to parse recent files")
		return []model.RecentFile{}
	}
	if entries == nil {
		entries = []model.RecentFile{}
	}
	return entries
}

func (l *Ledger) save(entries []model.RecentFile) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		l.log.Error().Str("event", "ledger_write_failed").Err(err).Msg("failed to encode recent files")
		return
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o750); err != nil {
		l.log.Error().Str("event", "ledger_write_failed").Str("path", l.path).Err(err).Msg("failed to save recent files")
		return
	}
	if err := atomic.WriteFile(l.path, bytes.NewReader(data)); err != nil {
		l.log.Error().Str("event", "ledger_write_failed").Str("path", l.path).Err(err).Msg("failed to save recent files")
		return
	}
	l.log.Debug().Str("event", "ledger_saved").Int("entries", len(entries)).Msg("recent files saved")
}

// DisplayName returns the last segment of a slash or backslash separated
// path, or the whole path when that segment is empty.
func DisplayName(path string) string {
	name := path[strings.LastIndexAny(path, `/\`)+1:]
	if name == "" {
		return path
	}
	return name
}
