package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type reloadRecorder struct {
	mu      sync.Mutex
	configs []*Config
}

func (r *reloadRecorder) record(c *Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs = append(r.configs, c)
}

func (r *reloadRecorder) last() *Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.configs) == 0 {
		return nil
	}
	return r.configs[len(r.configs)-1]
}

func startWatcher(t *testing.T, path string, rec *reloadRecorder) (*Watcher, func()) {
	t.Helper()
	w, err := NewWatcher(path, rec.record)
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	return w, func() {
		cancel()
		require.NoError(t, <-done)
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, DefaultConfig().Save(path))

	rec := &reloadRecorder{}
	w, stop := startWatcher(t, path, rec)

	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: dark\n"), 0644))

	require.Eventually(t, func() bool {
		c := rec.last()
		return c != nil && c.UI.Theme == ThemeDark
	}, 5*time.Second, 20*time.Millisecond)

	stop()
	assert.GreaterOrEqual(t, w.Stats().Reloads, 1)
	goleak.VerifyNone(t)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, DefaultConfig().Save(path))

	rec := &reloadRecorder{}
	w, stop := startWatcher(t, path, rec)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0644))
	time.Sleep(200 * time.Millisecond)

	stop()
	assert.Nil(t, rec.last())
	assert.Equal(t, 0, w.Stats().Reloads)
}

func TestWatcher_RejectsInvalidConfig(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, DefaultConfig().Save(path))

	rec := &reloadRecorder{}
	w, stop := startWatcher(t, path, rec)

	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: neon\n"), 0644))

	require.Eventually(t, func() bool {
		return w.Stats().Rejected >= 1
	}, 5*time.Second, 20*time.Millisecond)

	stop()
	assert.Nil(t, rec.last())
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "config.yaml"), func(*Config) {})
	assert.Error(t, err)
}
