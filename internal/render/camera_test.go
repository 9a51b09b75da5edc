package render

import (
	"image"
	"testing"

	"flux/internal/core"
)

var screen800x600 = core.Size{W: 800, H: 600}

func TestCameraBoundedClamps(t *testing.T) {
	cam := NewCamera(screen800x600, core.Size{W: 40, H: 30}, 50, false)

	cases := []struct {
		player core.Position
		want   image.Point
	}{
		{core.Position{X: 0, Y: 0}, image.Pt(0, 0)},
		{core.Position{X: 20, Y: 15}, image.Pt(600, 450)},
		{core.Position{X: 39, Y: 29}, image.Pt(1200, 900)},
		{core.Position{X: 8, Y: 6}, image.Pt(0, 0)},
		{core.Position{X: 9, Y: 7}, image.Pt(50, 50)},
	}
	for _, tc := range cases {
		if got := cam.Follow(tc.player); got != tc.want {
			t.Fatalf("follow %+v = %v, want %v", tc.player, got, tc.want)
		}
		if cam.Offset() != tc.want {
			t.Fatalf("offset not stored: %v", cam.Offset())
		}
	}
}

func TestCameraBoundedSmallWorldNeverScrolls(t *testing.T) {
	cam := NewCamera(screen800x600, core.Size{W: 5, H: 5}, 50, false)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := cam.Follow(core.Position{X: x, Y: y}); got != image.Pt(0, 0) {
				t.Fatalf("small world scrolled to %v at (%d,%d)", got, x, y)
			}
		}
	}
}

func TestCameraBoundedIdempotent(t *testing.T) {
	cam := NewCamera(screen800x600, core.Size{W: 37, H: 23}, 50, false)
	for y := 0; y < 23; y++ {
		for x := 0; x < 37; x++ {
			p := core.Position{X: x, Y: y}
			first := cam.Follow(p)
			second := cam.Follow(p)
			if first != second {
				t.Fatalf("offset drifted at %+v: %v then %v", p, first, second)
			}
		}
	}
}

func TestCameraCyclicWrapRange(t *testing.T) {
	cam := NewCamera(screen800x600, core.Size{W: 20, H: 14}, 50, true)
	world := cam.World()
	for y := -30; y < 30; y++ {
		for x := -30; x < 30; x++ {
			got := cam.Update(x*37, y*41)
			if got.X < 0 || got.X >= world.W || got.Y < 0 || got.Y >= world.H {
				t.Fatalf("offset %v outside [0,%v)", got, world)
			}
		}
	}
}

func TestCameraCyclicCentersPlayer(t *testing.T) {
	cam := NewCamera(screen800x600, core.Size{W: 20, H: 14}, 50, true)
	// player at (0,0): target (-400,-300) wraps to (600, 400) in a 1000x700 world.
	if got := cam.Follow(core.Position{}); got != image.Pt(600, 400) {
		t.Fatalf("offset = %v, want (600,400)", got)
	}
	if got := cam.Follow(core.Position{X: 10, Y: 8}); got != image.Pt(100, 100) {
		t.Fatalf("offset = %v, want (100,100)", got)
	}
}
