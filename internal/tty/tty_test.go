package tty

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"flux/internal/core"
	"flux/internal/session"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newSession(t *testing.T, rows []string, cyclic bool, view core.Size) *session.Session {
	t.Helper()
	lvl, err := core.ParseLevel(rows, cyclic)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return session.New(lvl, session.Options{Screen: view, TileSize: 1}, log.New(io.Discard))
}

func TestKeyEvent(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want core.Event
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.EventMoveLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.EventMoveRight},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.EventMoveUp},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.EventMoveDown},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.EventQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.EventQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), core.EventMoveDown},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), core.EventNone},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), core.EventNone},
	}
	for _, tc := range cases {
		if got := KeyEvent(tc.ev); got != tc.want {
			t.Fatalf("key %v rune %q = %v, want %v", tc.ev.Key(), tc.ev.Rune(), got, tc.want)
		}
	}
}

func TestViewportReservesStatusRow(t *testing.T) {
	if got := Viewport(80, 24); got != (core.Size{W: 80, H: 23}) {
		t.Fatalf("viewport = %+v", got)
	}
	if got := Viewport(0, 0); got != (core.Size{W: 1, H: 1}) {
		t.Fatalf("degenerate viewport = %+v", got)
	}
}

func TestDrawWrapsCyclicMap(t *testing.T) {
	screen := newScreen(t, 6, 4)
	// A 3x3 cyclic map in a 6x3 viewport repeats horizontally.
	sess := newSession(t, []string{"..#", ".@.", "..."}, true, Viewport(6, 4))
	Draw(screen, sess.Frame(), sess)

	walls, players := 0, 0
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			switch r {
			case '#':
				walls++
			case '@':
				players++
			}
		}
	}
	if walls != 2 || players != 2 {
		t.Fatalf("walls=%d players=%d, want 2 of each", walls, players)
	}
	if r, _, _, _ := screen.GetContent(1, 3); r != '1' {
		t.Fatalf("status line starts with %q, want player x", r)
	}
}

type countingBumper struct{ n int }

func (b *countingBumper) Bump() { b.n++ }

func TestRunAppliesKeysUntilQuit(t *testing.T) {
	screen := newScreen(t, 10, 5)
	sess := newSession(t, []string{"#....", ".@...", "....."}, false, Viewport(10, 5))

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	bump := &countingBumper{}
	errc := make(chan error, 1)
	go func() {
		errc <- Run(screen, sess, Options{TPS: 120, Bumper: bump, Log: log.New(io.Discard)})
	}()

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after quit")
	}
	if sess.Player() != (core.Position{X: 0, Y: 1}) {
		t.Fatalf("player = %+v, want (0,1)", sess.Player())
	}
	if !sess.Done() {
		t.Fatal("session not marked done")
	}
	if bump.n != 1 {
		t.Fatalf("bumps = %d, want 1", bump.n)
	}
}
