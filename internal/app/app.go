//go:build ebiten

package app

import (
	"flux/internal/core"
	"flux/internal/session"
	"flux/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyEvents = []struct {
	key ebiten.Key
	ev  core.Event
}{
	{ebiten.KeyEscape, core.EventQuit},
	{ebiten.KeyQ, core.EventQuit},
	{ebiten.KeyArrowLeft, core.EventMoveLeft},
	{ebiten.KeyArrowRight, core.EventMoveRight},
	{ebiten.KeyArrowUp, core.EventMoveUp},
	{ebiten.KeyArrowDown, core.EventMoveDown},
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	tiles   *ui.TileSet
	splash  *ui.Splash
	overlay *ui.Overlay
	log     *log.Logger

	width, height int
	events        []core.Event
}

// New constructs a Game. splash may be nil to start playing immediately.
func New(sess *session.Session, tiles *ui.TileSet, splash *ui.Splash, cfg *Config, logger *log.Logger) *Game {
	return &Game{
		sess:    sess,
		tiles:   tiles,
		splash:  splash,
		overlay: ui.NewOverlay(),
		log:     logger,
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

// Update polls input and advances the session once per pressed key.
func (g *Game) Update() error {
	if g.splash != nil {
		if !g.splash.Update() {
			return nil
		}
		g.splash = nil
		g.log.Debug("splash dismissed")
		return nil
	}

	g.overlay.Update()
	g.events = g.events[:0]
	for _, k := range keyEvents {
		if inpututil.IsKeyJustPressed(k.key) {
			g.events = append(g.events, k.ev)
		}
	}
	if len(g.events) == 0 {
		g.events = append(g.events, core.EventNone)
	}
	for _, ev := range g.events {
		if g.sess.Tick(ev) == session.Quit {
			g.log.Info("quit requested", "at", g.sess.Player())
			return ebiten.Termination
		}
	}
	return nil
}

// Draw renders the current session state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.splash != nil {
		g.splash.Draw(screen)
		return
	}
	g.tiles.Blit(screen, g.sess.Frame())
	g.overlay.Draw(screen, g.sess)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
