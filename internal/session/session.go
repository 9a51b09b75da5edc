// Package session owns the state of one game: the grid, its entities and the
// camera, and advances it one input event at a time.
package session

import (
	"github.com/charmbracelet/log"

	"flux/internal/core"
	"flux/internal/render"
)

// Outcome reports what a tick did.
type Outcome uint8

const (
	// Idle means the event carried no move.
	Idle Outcome = iota
	// Moved means the player changed cell.
	Moved
	// Blocked means a move was attempted and rejected.
	Blocked
	// Quit means the session has been asked to stop.
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Blocked:
		return "blocked"
	case Quit:
		return "quit"
	default:
		return "idle"
	}
}

// Options configures the viewport a session renders into.
type Options struct {
	Screen   core.Size
	TileSize int
}

// Session is the top-level game state. It is not safe for concurrent use; all
// calls are expected from the frontend's main loop.
type Session struct {
	grid   *core.Grid
	player core.Entity
	floors []core.Entity
	static []core.Entity
	camera *render.Camera

	quit bool
	ops  []render.DrawOp
	log  *log.Logger
}

// New builds a session from a loaded level.
func New(lvl *core.Level, opts Options, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	g := lvl.Grid
	s := &Session{
		grid:   g,
		player: core.Entity{Pos: lvl.Start, Kind: core.KindPlayer},
		floors: make([]core.Entity, 0, g.W*g.H),
		camera: render.NewCamera(opts.Screen, g.Size(), opts.TileSize, g.Cyclic),
		log:    logger,
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			pos := core.Position{X: x, Y: y}
			s.floors = append(s.floors, core.Entity{Pos: pos, Kind: core.KindFloor})
			switch g.At(x, y) {
			case core.CellWall:
				s.static = append(s.static, core.Entity{Pos: pos, Kind: core.KindWall})
			case core.CellEdgeWall:
				s.static = append(s.static, core.Entity{Pos: pos, Kind: core.KindEdgeWall})
			}
		}
	}
	if len(lvl.ExtraStarts) > 0 {
		logger.Warn("level has more than one player start, using the first", "start", lvl.Start, "ignored", lvl.ExtraStarts)
	}
	if lvl.Unknown > 0 {
		logger.Debug("unknown level characters loaded as floor", "count", lvl.Unknown)
	}
	s.camera.Follow(s.player.Pos)
	logger.Info("session ready", "width", g.W, "height", g.H, "cyclic", g.Cyclic, "start", lvl.Start, "walls", len(s.static))
	return s
}

// Tick consumes one input event, resolves movement and recenters the camera.
func (s *Session) Tick(ev core.Event) Outcome {
	if ev == core.EventQuit {
		s.quit = true
		return Quit
	}
	if s.quit {
		return Quit
	}
	out := Idle
	if dir := ev.Direction(); dir != core.DirNone {
		next := core.Resolve(dir, s.player.Pos, s.grid)
		if next == s.player.Pos {
			out = Blocked
			s.log.Debug("move blocked", "dir", dir, "at", next)
		} else {
			s.player.Pos = next
			out = Moved
		}
	}
	s.camera.Follow(s.player.Pos)
	return out
}

// Frame returns this tick's blits: floor tiles, then walls, then the player.
// The returned slice is reused by the next call.
func (s *Session) Frame() []render.DrawOp {
	s.ops = render.Compose(s.ops, s.camera, s.floors, s.static, []core.Entity{s.player})
	return s.ops
}

// Resize rebuilds the camera for a new viewport and recenters it.
func (s *Session) Resize(screen core.Size) {
	cam := s.camera
	s.camera = render.NewCamera(screen, s.grid.Size(), cam.Tile(), cam.Cyclic())
	s.camera.Follow(s.player.Pos)
}

// Player returns the player's grid position.
func (s *Session) Player() core.Position { return s.player.Pos }

// Grid exposes the read-only level grid.
func (s *Session) Grid() *core.Grid { return s.grid }

// Camera exposes the session camera.
func (s *Session) Camera() *render.Camera { return s.camera }

// Done reports whether a quit event has been seen.
func (s *Session) Done() bool { return s.quit }
