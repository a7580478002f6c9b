package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDefaults(t *testing.T) {
	var logs bytes.Buffer
	r, err := setup("test", nil, &logs)
	require.NoError(t, err)
	defer r.Close()

	assert.False(t, r.Flags.Headless)
	assert.NotZero(t, r.Flags.Seed, "zero seed is replaced by a time-based one")
	assert.Equal(t, 100, r.Config.Flock.Count)
	assert.False(t, r.Done(1_000_000))
}

func TestSetupFlags(t *testing.T) {
	var logs bytes.Buffer
	r, err := setup("test", []string{"-headless", "-seed", "7", "-max-ticks", "30", "-log-stats"}, &logs)
	require.NoError(t, err)
	defer r.Close()

	opts := r.Options()
	assert.True(t, opts.Headless)
	assert.True(t, opts.LogStats)
	assert.Equal(t, int64(7), opts.Seed)
	assert.False(t, r.Done(29))
	assert.True(t, r.Done(30))
}

func TestSetupRejectsBadFlags(t *testing.T) {
	var logs bytes.Buffer
	_, err := setup("test", []string{"-watch-config"}, &logs)
	assert.Error(t, err, "watching needs a config path")

	_, err = setup("test", []string{"-max-ticks", "many"}, &logs)
	assert.Error(t, err)

	_, err = setup("test", []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &logs)
	assert.Error(t, err)
}

func TestRunHeadless(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("flock:\n  count: 10\ntelemetry:\n  stats_window: 0.1\n"), 0644))

	var logs bytes.Buffer
	r, err := setup("test", []string{
		"-headless", "-seed", "3", "-max-ticks", "12", "-log-stats",
		"-config", cfgPath,
		"-output-dir", filepath.Join(dir, "out"),
	}, &logs)
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, r.RunHeadless(context.Background()))

	out := logs.String()
	assert.Contains(t, out, `"msg":"max ticks reached"`)
	assert.Contains(t, out, `"tick":12`)
	assert.Contains(t, out, `"msg":"stats"`)

	data, err := os.ReadFile(filepath.Join(dir, "out", "telemetry.csv"))
	require.NoError(t, err)
	// stats_window 0.1s at 60 fps flushes every 6 ticks
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 3)
}

func TestRunHeadlessCancelled(t *testing.T) {
	var logs bytes.Buffer
	r, err := setup("test", []string{"-headless"}, &logs)
	require.NoError(t, err)
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, r.RunHeadless(ctx))
	assert.Contains(t, logs.String(), "interrupted")
}

func TestApplyUpdatesReportsReload(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("flock:\n  count: 5\n  max_speed: 2\n"), 0644))

	var logs bytes.Buffer
	r, err := setup("test", []string{"-seed", "1", "-config", cfgPath, "-watch-config"}, &logs)
	require.NoError(t, err)
	defer r.Close()

	g, err := r.NewGame()
	require.NoError(t, err)
	defer g.Unload()
	g.SpawnFlock(r.Config.Derived.ScreenW32, r.Config.Derived.ScreenH32)

	assert.False(t, r.ApplyUpdates(g), "nothing changed yet")
	assert.Equal(t, float32(2), g.Limits().MaxSpeed)

	require.NoError(t, os.WriteFile(cfgPath, []byte("flock:\n  count: 5\n  max_speed: 3\n"), 0644))

	// A save can surface as several reloads; wait for the final content.
	applied := false
	require.Eventually(t, func() bool {
		if r.ApplyUpdates(g) {
			applied = true
		}
		return g.Limits().MaxSpeed == 3
	}, 5*time.Second, 10*time.Millisecond)
	assert.True(t, applied)
	assert.Equal(t, 3.0, r.Config.Flock.MaxSpeed)
}

func TestApplyUpdatesWithoutWatcher(t *testing.T) {
	var logs bytes.Buffer
	r, err := setup("test", []string{"-headless"}, &logs)
	require.NoError(t, err)
	defer r.Close()

	g, err := r.NewGame()
	require.NoError(t, err)
	defer g.Unload()

	assert.False(t, r.ApplyUpdates(g))
}
