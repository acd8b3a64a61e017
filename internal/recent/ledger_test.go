package recent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdlib/internal/model"
)

type stepClock struct {
	mu sync.Mutex
	ms int64
}

func (c *stepClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ms += 1000
	return time.UnixMilli(c.ms)
}

func newTestLedger(t *testing.T) (*Ledger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "recent-files.json")
	return New(path, zerolog.Nop(), WithClock((&stepClock{ms: 1_700_000_000_000}).now)), path
}

func paths(entries []model.RecentFile) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}

func TestLedger_EmptyWhenMissing(t *testing.T) {
	l, path := newTestLedger(t)

	got := l.List()
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "List must not create the file")
}

func TestLedger_Add(t *testing.T) {
	l, path := newTestLedger(t)

	l.Add("/home/me/notes/a.md")
	l.Add(`C:\Users\me\b.md`)

	want := []model.RecentFile{
		{Path: `C:\Users\me\b.md`, Name: "b.md", LastOpened: 1_700_000_002_000},
		{Path: "/home/me/notes/a.md", Name: "a.md", LastOpened: 1_700_000_001_000},
	}
	if diff := cmp.Diff(want, l.List()); diff != "" {
		t.Fatalf("ledger mismatch (-want +got):\n%s", diff)
	}

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk []map[string]any
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	require.Len(t, onDisk, 2)
	assert.Equal(t, `C:\Users\me\b.md`, onDisk[0]["path"])
	assert.Equal(t, "b.md", onDisk[0]["name"])
	assert.EqualValues(t, 1_700_000_002_000, onDisk[0]["lastOpened"])
}

func TestLedger_AddDeduplicates(t *testing.T) {
	l, _ := newTestLedger(t)

	l.Add("/a.md")
	l.Add("/b.md")
	l.Add("/a.md")

	got := l.List()
	assert.Equal(t, []string{"/a.md", "/b.md"}, paths(got))
	assert.Equal(t, int64(1_700_000_003_000), got[0].LastOpened)
}

func TestLedger_EvictsOldest(t *testing.T) {
	l, _ := newTestLedger(t)

	for i := 1; i <= MaxEntries+1; i++ {
		l.Add(fmt.Sprintf("/docs/%02d.md", i))
	}

	got := l.List()
	require.Len(t, got, MaxEntries)
	assert.Equal(t, "/docs/11.md", got[0].Path)
	assert.Equal(t, "/docs/02.md", got[MaxEntries-1].Path)
	assert.NotContains(t, paths(got), "/docs/01.md")
}

func TestLedger_Clear(t *testing.T) {
	l, path := newTestLedger(t)
	l.Add("/a.md")

	l.Clear()

	assert.Empty(t, l.List())
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestLedger_CorruptFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "recent-files.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	l := New(path, zerolog.New(&buf))

	assert.Empty(t, l.List())
	assert.Contains(t, buf.String(), `"event":"ledger_read_failed"`)
	assert.Contains(t, buf.String(), `"component":"recent_files"`)

	l.Add("/fresh.md")
	assert.Equal(t, []string{"/fresh.md"}, paths(l.List()))
}

func TestLedger_WriteFailureIsAbsorbed(t *testing.T) {
	var buf bytes.Buffer
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	l := New(filepath.Join(blocker, "recent-files.json"), zerolog.New(&buf))

	assert.NotPanics(t, func() { l.Add("/a.md") })
	assert.NotPanics(t, l.Clear)
	assert.Contains(t, buf.String(), `"event":"ledger_write_failed"`)
	assert.Empty(t, l.List())
}

func TestLedger_ConcurrentAdds(t *testing.T) {
	l, _ := newTestLedger(t)

	var wg sync.WaitGroup
	for i := 0; i < MaxEntries; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Add(fmt.Sprintf("/c/%d.md", i))
		}(i)
	}
	wg.Wait()

	assert.Len(t, l.List(), MaxEntries)
}

func TestDisplayName(t *testing.T) {
	tests := []struct{ in, want string }{
		{in: "/home/me/a.md", want: "a.md"},
		{in: `C:\docs\b.md`, want: "b.md"},
		{in: `mixed/dir\c.md`, want: "c.md"},
		{in: "plain.md", want: "plain.md"},
		{in: "/home/me/trailing/", want: "/home/me/trailing/"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayName(tt.in), "DisplayName(%q)", tt.in)
	}
}
