package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"mdlib/internal/config"
	"mdlib/internal/database"
	"mdlib/internal/model"
)

// testClock is a manual clock. Each call to now returns the current time and
// then moves it forward by step.
type testClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func newTestClock(step time.Duration) *testClock {
	return &testClock{t: time.UnixMilli(1_700_000_000_000), step: step}
}

func (c *testClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.t
	c.t = c.t.Add(c.step)
	return t
}

func sequentialIDs(prefix string) func() string {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%03d", prefix, n)
	}
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	lib := database.NewLibrary(config.LibraryConfig{
		Path:          filepath.Join(t.TempDir(), "library.db"),
		BusyTimeoutMS: 1000,
	}, zerolog.Nop())

	db, err := lib.Open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = lib.Close() })
	return db
}

func strPtr(s string) *string { return &s }

func documentIDs(docs []model.Document) []string {
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids
}
