package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"

	"flux/internal/app"
	"flux/internal/core"
	"flux/internal/session"
	"flux/internal/tty"
)

func main() {
	cfg := app.NewConfig()
	cfg.Tile = 1
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log-file", "", "write logs here instead of discarding them while the map is on screen")
	flag.Parse()

	logger := cfg.NewLogger(os.Stderr, "flux-tty")

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

	// The terminal owns stdout/stderr from here on.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Fatal("cannot open log file", "err", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	} else {
		logger.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("cannot open terminal", "err", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("cannot initialise terminal", "err", err)
	}

	opts := tty.Options{TPS: cfg.TPS, Log: logger}
	if !cfg.Mute {
		if b, err := tty.NewBeeper(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer b.Close()
			opts.Bumper = b
		}
	}

	w, h := screen.Size()
	sess := session.New(lvl, session.Options{Screen: tty.Viewport(w, h), TileSize: 1}, logger.With("component", "session"))

	err = tty.Run(screen, sess, opts)
	screen.Fini()
	if *logFile == "" {
		logger.SetOutput(os.Stderr)
	}
	if err != nil {
		logger.Fatal("terminal loop failed", "err", err)
	}
}
