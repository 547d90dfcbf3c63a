package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectEvents(t *testing.T, events <-chan string, wait time.Duration) map[string]int {
	t.Helper()
	got := map[string]int{}
	deadline := time.After(wait)
	for {
		select {
		case p, ok := <-events:
			if !ok {
				return got
			}
			got[filepath.Base(p)]++
		case <-deadline:
			return got
		}
	}
}

func TestWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	require.Error(t, err)
}

func TestWatcherEmitsReportPaths(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ati-2026-05-14.pdf"), []byte("%PDF"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))

	got := collectEvents(t, events, time.Second)
	assert.Contains(t, got, "ati-2026-05-14.pdf")
	assert.NotContains(t, got, "notes.txt")
}

// A rapid burst of writes must coalesce per path and never crash the watcher;
// writes landing while the debounce drain fires exercise the timer path.
func TestWatcherCoalescesWriteBursts(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 5 * time.Millisecond,
	})
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		name := fmt.Sprintf("report-%d.pdf", i%5)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(fmt.Sprintf("%%PDF rev %d", i)), 0o644))
		if i%10 == 0 {
			time.Sleep(7 * time.Millisecond) // let the debounce window lapse mid-burst
		}
	}

	got := collectEvents(t, events, time.Second)
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf("report-%d.pdf", i)
		assert.Contains(t, got, name)
		assert.LessOrEqual(t, got[name], 10, "writes to %s were not coalesced", name)
	}
}
