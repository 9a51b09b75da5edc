// Package tty runs a session in a terminal through tcell, one character cell
// per tile.
package tty

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"flux/internal/core"
	"flux/internal/render"
	"flux/internal/session"
)

// StatusRows is the number of terminal rows reserved below the map.
const StatusRows = 1

// Bumper plays feedback when a move is blocked.
type Bumper interface {
	Bump()
}

// Options configures Run.
type Options struct {
	TPS    int
	Bumper Bumper
	Log    *log.Logger
}

type glyph struct {
	r     rune
	style tcell.Style
}

var glyphs = map[core.Kind]glyph{
	core.KindFloor:    {'.', tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)},
	core.KindWall:     {'#', tcell.StyleDefault.Foreground(tcell.ColorSandyBrown)},
	core.KindEdgeWall: {'$', tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)},
	core.KindPlayer:   {'@', tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)},
}

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

// Viewport returns the map area of a terminal of w x h cells.
func Viewport(w, h int) core.Size {
	h -= StatusRows
	if h < 1 {
		h = 1
	}
	if w < 1 {
		w = 1
	}
	return core.Size{W: w, H: h}
}

// KeyEvent maps a terminal key press onto a session event.
func KeyEvent(ev *tcell.EventKey) core.Event {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.EventMoveLeft
	case tcell.KeyRight:
		return core.EventMoveRight
	case tcell.KeyUp:
		return core.EventMoveUp
	case tcell.KeyDown:
		return core.EventMoveDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.EventQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return core.EventQuit
		case 'h':
			return core.EventMoveLeft
		case 'l':
			return core.EventMoveRight
		case 'k':
			return core.EventMoveUp
		case 'j':
			return core.EventMoveDown
		}
	}
	return core.EventNone
}

// Draw paints ops and the status line, then shows the screen.
func Draw(screen tcell.Screen, ops []render.DrawOp, sess *session.Session) {
	screen.Clear()
	w, h := screen.Size()
	view := Viewport(w, h)
	for _, op := range ops {
		if op.At.X < 0 || op.At.Y < 0 || op.At.X >= view.W || op.At.Y >= view.H {
			continue
		}
		g, ok := glyphs[op.Kind]
		if !ok {
			continue
		}
		screen.SetContent(op.At.X, op.At.Y, g.r, nil, g.style)
	}
	mode := "bounded"
	if sess.Grid().Cyclic {
		mode = "cyclic"
	}
	p := sess.Player()
	status := fmt.Sprintf(" %d,%d %s | arrows/hjkl move, q quits", p.X, p.Y, mode)
	for i, r := range []rune(status) {
		if i >= w {
			break
		}
		screen.SetContent(i, h-1, r, nil, statusStyle)
	}
	screen.Show()
}

// Run drives sess from terminal input until it quits or the screen closes.
// Input is collected between ticks; every tick applies the pending events in
// arrival order and redraws.
func Run(screen tcell.Screen, sess *session.Session, opts Options) error {
	logger := opts.Log
	if logger == nil {
		logger = log.Default()
	}

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	step := core.NewFixedStep(opts.TPS)
	timer := time.NewTimer(0)
	defer timer.Stop()

	var pending []core.Event
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if e := KeyEvent(ev); e != core.EventNone {
					pending = append(pending, e)
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				sess.Resize(Viewport(w, h))
				screen.Sync()
				logger.Debug("terminal resized", "width", w, "height", h)
			}
		case <-timer.C:
			if step.ShouldStep() {
				if len(pending) == 0 {
					pending = append(pending, core.EventNone)
				}
				for _, e := range pending {
					switch sess.Tick(e) {
					case session.Blocked:
						if opts.Bumper != nil {
							opts.Bumper.Bump()
						}
					case session.Quit:
						return nil
					}
				}
				pending = pending[:0]
				Draw(screen, sess.Frame(), sess)
			}
			timer.Reset(step.Until())
		}
	}
}
