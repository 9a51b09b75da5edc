//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"flux/internal/app"
	"flux/internal/assets"
	"flux/internal/core"
	"flux/internal/session"
	"flux/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := cfg.NewLogger(os.Stderr, "flux")

	if err := app.RunSetup(cfg); err != nil {
		if errors.Is(err, app.ErrSetupAborted) {
			os.Exit(0)
		}
		logger.Fatal("setup failed", "err", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	lvl, err := core.LoadLevel(cfg.DataDir, cfg.Level, cfg.Cyclic)
	if err != nil {
		if errors.Is(err, core.ErrLevelNotFound) {
			logger.Fatal("level file not found", "level", cfg.Level, "data", cfg.DataDir)
		}
		logger.Fatal("cannot load level", "err", err)
	}

	provider := assets.NewProvider(cfg.AssetDir, cfg.Tile)
	tiles, err := provider.LoadTiles()
	if err != nil {
		logger.Fatal("cannot load sprites", "err", err)
	}
	var splash *ui.Splash
	if !cfg.NoSplash {
		bg, err := provider.LoadSized(assets.Background, cfg.Width, cfg.Height)
		if err != nil {
			logger.Fatal("cannot load splash background", "err", err)
		}
		splash = ui.NewSplash(bg, "Click to start")
	}

	sess := session.New(lvl, session.Options{Screen: cfg.Screen(), TileSize: cfg.Tile}, logger.With("component", "session"))
	game := app.New(sess, ui.NewTileSet(tiles), splash, cfg, logger)

	ebiten.SetWindowTitle("flux — " + cfg.Level)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
