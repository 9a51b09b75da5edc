package render

import (
	"image"
	"testing"

	"flux/internal/core"
)

func TestVisiblePositionsBoundedAtMostOne(t *testing.T) {
	cam := NewCamera(screen800x600, core.Size{W: 40, H: 30}, 50, false)
	cam.Follow(core.Position{X: 20, Y: 15})
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			got := CellPositions(nil, core.Position{X: x, Y: y}, cam)
			if len(got) > 1 {
				t.Fatalf("bounded tile (%d,%d) emitted %d positions", x, y, len(got))
			}
		}
	}
}

func TestVisiblePositionsEdgeBounds(t *testing.T) {
	cam := NewCamera(screen800x600, core.Size{W: 40, H: 30}, 50, false)
	cam.Update(1000, 1000)
	off := cam.Offset()

	cases := []struct {
		world image.Point
		want  bool
	}{
		{off, true},
		{off.Add(image.Pt(-50, 0)), true},
		{off.Add(image.Pt(-51, 0)), false},
		{off.Add(image.Pt(799, 599)), true},
		{off.Add(image.Pt(800, 0)), false},
		{off.Add(image.Pt(0, 600)), false},
	}
	for _, tc := range cases {
		got := VisiblePositions(nil, tc.world, cam)
		if (len(got) == 1) != tc.want {
			t.Fatalf("world %v visible=%v, want %v", tc.world, len(got) == 1, tc.want)
		}
		if tc.want && got[0] != tc.world.Sub(off) {
			t.Fatalf("screen pos = %v, want %v", got[0], tc.world.Sub(off))
		}
	}
}

func TestVisiblePositionsCyclicSeam(t *testing.T) {
	// 1000x700 world, player at origin: offset (600,400).
	cam := NewCamera(screen800x600, core.Size{W: 20, H: 14}, 50, true)
	cam.Follow(core.Position{})

	// Tile (0,0) sits at screen (-600,-400) unwrapped; the +W,+H copy is at
	// (400,300), the centre of the screen.
	got := CellPositions(nil, core.Position{}, cam)
	if len(got) != 1 || got[0] != image.Pt(400, 300) {
		t.Fatalf("origin tile = %v, want [(400,300)]", got)
	}

	// Tile (19,13) is the last cell; only its unwrapped copy is on screen.
	got = CellPositions(nil, core.Position{X: 19, Y: 13}, cam)
	if len(got) != 1 || got[0] != image.Pt(350, 250) {
		t.Fatalf("last tile = %v, want [(350,250)]", got)
	}
}

func TestVisiblePositionsCyclicLargeWorldCoverage(t *testing.T) {
	grid := core.Size{W: 20, H: 14}
	cam := NewCamera(screen800x600, grid, 50, true)
	for _, player := range []core.Position{{X: 0, Y: 0}, {X: 5, Y: 3}, {X: 19, Y: 13}, {X: 10, Y: 0}, {X: 0, Y: 7}} {
		cam.Follow(player)
		covered := make(map[image.Point]int)
		for y := 0; y < grid.H; y++ {
			for x := 0; x < grid.W; x++ {
				got := CellPositions(nil, core.Position{X: x, Y: y}, cam)
				if len(got) > 4 {
					t.Fatalf("tile (%d,%d) emitted %d copies in a world larger than the screen", x, y, len(got))
				}
				for _, p := range got {
					covered[p]++
				}
			}
		}
		// Viewport is an exact multiple of the tile, and offsets are too, so
		// every tile-aligned slot on screen is filled exactly once.
		for sy := 0; sy < 600; sy += 50 {
			for sx := 0; sx < 800; sx += 50 {
				if covered[image.Pt(sx, sy)] != 1 {
					t.Fatalf("player %+v: screen slot (%d,%d) covered %d times", player, sx, sy, covered[image.Pt(sx, sy)])
				}
			}
		}
	}
}

func TestVisiblePositionsCyclicSmallWorldRepeats(t *testing.T) {
	// 3x3 world of 150px inside an 800x600 viewport.
	cam := NewCamera(screen800x600, core.Size{W: 3, H: 3}, 50, true)
	cam.Follow(core.Position{X: 1, Y: 1})
	got := CellPositions(nil, core.Position{X: 1, Y: 1}, cam)
	if len(got) < 2 {
		t.Fatalf("small cyclic world emitted %d copies, want several", len(got))
	}
	if len(got) > 9 {
		t.Fatalf("emitted %d copies, want at most 9", len(got))
	}
	seen := map[image.Point]bool{}
	for _, p := range got {
		if seen[p] {
			t.Fatalf("duplicate position %v", p)
		}
		seen[p] = true
	}
}
