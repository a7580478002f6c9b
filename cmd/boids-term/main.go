// Boids host for the terminal.
//
// Usage: go run ./cmd/boids-term [flags]
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/boids/cli"
	"github.com/pthm-cable/boids/renderer/termhost"
)

func main() {
	r, err := cli.Setup(os.Args[0], os.Args[1:])
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if r.Flags.Headless {
		if err := r.RunHeadless(ctx); err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := run(ctx, r); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, r *cli.Run) error {
	// Logs would corrupt the terminal; keep only errors, on stderr
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	g, err := r.NewGame()
	if err != nil {
		return err
	}
	defer g.Unload()

	return termhost.New(r, g, screen).Run(ctx)
}
