package render

import (
	"image"

	"flux/internal/core"
)

// Camera turns the player's world pixel position into a scroll offset for a
// fixed-size viewport. The offset is recomputed from scratch on every Update.
type Camera struct {
	screen core.Size
	world  core.Size
	tile   int
	cyclic bool

	x, y int
}

// NewCamera builds a camera for a viewport of screen pixels looking at a grid
// of the given size in cells.
func NewCamera(screen, grid core.Size, tile int, cyclic bool) *Camera {
	if tile <= 0 {
		tile = 1
	}
	return &Camera{
		screen: screen,
		world:  core.Size{W: grid.W * tile, H: grid.H * tile},
		tile:   tile,
		cyclic: cyclic,
	}
}

// Update recenters the camera on a world pixel position and returns the new
// offset. Cyclic cameras wrap into [0, world); bounded cameras clamp so the
// viewport never shows past the map edge or scrolls below zero.
func (c *Camera) Update(px, py int) image.Point {
	tx := px - c.screen.W/2
	ty := py - c.screen.H/2
	if c.cyclic {
		c.x = core.Mod(tx, c.world.W)
		c.y = core.Mod(ty, c.world.H)
	} else {
		c.x = clampAxis(tx, c.world.W-c.screen.W)
		c.y = clampAxis(ty, c.world.H-c.screen.H)
	}
	return image.Pt(c.x, c.y)
}

// Follow recenters on the top-left pixel of a grid position.
func (c *Camera) Follow(p core.Position) image.Point {
	return c.Update(p.X*c.tile, p.Y*c.tile)
}

// Offset returns the last computed scroll offset.
func (c *Camera) Offset() image.Point { return image.Pt(c.x, c.y) }

// Screen returns the viewport size in pixels.
func (c *Camera) Screen() core.Size { return c.screen }

// World returns the map size in pixels.
func (c *Camera) World() core.Size { return c.world }

// Tile returns the pixel edge length of one cell.
func (c *Camera) Tile() int { return c.tile }

// Cyclic reports whether the camera wraps around the world.
func (c *Camera) Cyclic() bool { return c.cyclic }

// clampAxis limits v to [0, hi]; when hi is negative the map is smaller than
// the viewport and the floor of zero wins.
func clampAxis(v, hi int) int {
	if v > hi {
		v = hi
	}
	if v < 0 {
		v = 0
	}
	return v
}
