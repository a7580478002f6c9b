// Package cli holds the process setup shared by every host binary: flags,
// logging, configuration and the headless loop.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/boids/config"
	"github.com/pthm-cable/boids/game"
)

// Flags are the command-line options understood by every host.
type Flags struct {
	ConfigPath  string
	Headless    bool
	MaxTicks    int
	Seed        int64
	OutputDir   string
	LogStats    bool
	WatchConfig bool
}

// Run is a configured process, ready to build a game.
type Run struct {
	Flags  Flags
	Config *config.Config

	watcher *config.Watcher
}

// Setup parses args, installs the JSON slog handler on stdout, loads the
// configuration and, if requested, starts watching the config file.
func Setup(name string, args []string) (*Run, error) {
	return setup(name, args, os.Stdout)
}

func setup(name string, args []string, logOut io.Writer) (*Run, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var f Flags
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config.yaml (empty = use defaults)")
	fs.BoolVar(&f.Headless, "headless", false, "Run without graphics")
	fs.IntVar(&f.MaxTicks, "max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	fs.Int64Var(&f.Seed, "seed", 0, "RNG seed (0 = time-based)")
	fs.StringVar(&f.OutputDir, "output-dir", "", "Output directory for CSV logs and config snapshot")
	fs.BoolVar(&f.LogStats, "log-stats", false, "Output stats via slog")
	fs.BoolVar(&f.WatchConfig, "watch-config", false, "Reload -config when the file changes")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Set up slog (JSON to stdout for structured logging)
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	if err := config.Init(f.ConfigPath); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if f.Seed == 0 {
		f.Seed = time.Now().UnixNano()
	}

	r := &Run{Flags: f, Config: config.Cfg()}

	if f.WatchConfig {
		if f.ConfigPath == "" {
			return nil, fmt.Errorf("-watch-config requires -config")
		}
		w, err := config.NewWatcher(f.ConfigPath)
		if err != nil {
			return nil, err
		}
		r.watcher = w
	}

	return r, nil
}

// Options returns the game options selected by the flags.
func (r *Run) Options() game.Options {
	return game.Options{
		Seed:      r.Flags.Seed,
		LogStats:  r.Flags.LogStats,
		OutputDir: r.Flags.OutputDir,
		Headless:  r.Flags.Headless,
	}
}

// NewGame builds a game from the loaded config and flags.
func (r *Run) NewGame() (*game.Game, error) {
	return game.New(r.Config, r.Options())
}

// ApplyUpdates hands any reloaded config to g and reports whether one
// arrived. It never blocks, so hosts call it once per frame, between ticks.
func (r *Run) ApplyUpdates(g *game.Game) bool {
	if r.watcher == nil {
		return false
	}
	select {
	case cfg := <-r.watcher.Updates():
		config.Set(cfg)
		r.Config = cfg
		g.ApplyConfig(cfg)
		return true
	default:
		return false
	}
}

// Done reports whether the tick limit has been reached.
func (r *Run) Done(tick int64) bool {
	return r.Flags.MaxTicks > 0 && tick >= int64(r.Flags.MaxTicks)
}

// RunHeadless ticks a game with synthesized input until the tick limit is
// reached or ctx is cancelled.
func (r *Run) RunHeadless(ctx context.Context) error {
	g, err := r.NewGame()
	if err != nil {
		return err
	}
	defer g.Unload()
	// Headless input reports the configured screen as the window
	g.SpawnFlock(r.Config.Derived.ScreenW32, r.Config.Derived.ScreenH32)

	slog.Info("starting headless simulation",
		"seed", r.Flags.Seed,
		"max_ticks", r.Flags.MaxTicks,
		"cursor", r.Config.Headless.Cursor,
	)

	for {
		if err := ctx.Err(); err != nil {
			slog.Info("headless simulation interrupted", "tick", g.Tick())
			return nil
		}
		r.ApplyUpdates(g)
		g.UpdateHeadless()

		if r.Done(g.Tick()) {
			slog.Info("max ticks reached", "tick", g.Tick())
			return nil
		}
	}
}

// Close stops the config watcher, if any.
func (r *Run) Close() {
	if r.watcher == nil {
		return
	}
	if err := r.watcher.Close(); err != nil {
		slog.Error("failed to close config watcher", "error", err)
	}
}
