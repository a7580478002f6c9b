// Boids host on ebiten instead of raylib.
//
// Usage: go run ./cmd/boids-ebiten [flags]
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pthm-cable/boids/cli"
	"github.com/pthm-cable/boids/renderer/ebitenhost"
)

func main() {
	r, err := cli.Setup(os.Args[0], os.Args[1:])
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer r.Close()

	if r.Flags.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := r.RunHeadless(ctx); err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	cfg := r.Config
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Screen.TargetFPS)

	g, err := r.NewGame()
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	if err := ebiten.RunGame(ebitenhost.New(r, g)); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}
