package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"flux/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Level    string
	Cyclic   bool
	DataDir  string
	AssetDir string
	Tile     int
	Width    int
	Height   int
	TPS      int
	LogLevel string
	NoSplash bool
	Mute     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		DataDir:  "data",
		AssetDir: "assets",
		Tile:     50,
		Width:    800,
		Height:   600,
		TPS:      60,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Level, "level", c.Level, "level file under -data (prompted for when empty)")
	fs.BoolVar(&c.Cyclic, "cyclic", c.Cyclic, "wrap the map around both axes")
	fs.StringVar(&c.DataDir, "data", c.DataDir, "directory holding level files")
	fs.StringVar(&c.AssetDir, "assets", c.AssetDir, "directory holding sprites")
	fs.IntVar(&c.Tile, "tile", c.Tile, "tile edge length in pixels")
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&c.NoSplash, "no-splash", c.NoSplash, "skip the title screen")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable the bump tone in the terminal build")
}

// Screen returns the viewport size.
func (c *Config) Screen() core.Size { return core.Size{W: c.Width, H: c.Height} }

// Validate checks values that would make the camera math meaningless.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Level) == "" {
		errs = append(errs, errors.New("level name is empty"))
	}
	if c.Tile <= 0 {
		errs = append(errs, fmt.Errorf("tile size %d must be positive", c.Tile))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport %dx%d must be positive", c.Width, c.Height))
	} else if c.Tile > 0 && (c.Width%c.Tile != 0 || c.Height%c.Tile != 0) {
		errs = append(errs, fmt.Errorf("viewport %dx%d is not a multiple of tile size %d", c.Width, c.Height, c.Tile))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	return errors.Join(errs...)
}

// NewLogger builds the process logger at the configured level.
func (c *Config) NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{ReportTimestamp: true, Prefix: prefix})
	if lvl, err := log.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}
