package render

import (
	"image"

	"flux/internal/core"
)

// VisiblePositions appends to dst the screen positions at which a tile whose
// top-left world pixel is world must be drawn. Bounded cameras yield at most
// one position. Cyclic cameras test the base position shifted by every
// combination of {-W, 0, +W} x {-H, 0, +H} so tiles near a seam also appear
// on the opposite edge.
func VisiblePositions(dst []image.Point, world image.Point, cam *Camera) []image.Point {
	base := world.Sub(cam.Offset())
	if !cam.Cyclic() {
		if cam.visible(base) {
			dst = append(dst, base)
		}
		return dst
	}
	w, h := cam.world.W, cam.world.H
	for _, oy := range [3]int{0, -h, h} {
		for _, ox := range [3]int{0, -w, w} {
			p := base.Add(image.Pt(ox, oy))
			if cam.visible(p) {
				dst = append(dst, p)
			}
		}
	}
	return dst
}

// CellPositions is VisiblePositions for a grid coordinate.
func CellPositions(dst []image.Point, p core.Position, cam *Camera) []image.Point {
	return VisiblePositions(dst, image.Pt(p.X*cam.tile, p.Y*cam.tile), cam)
}

// visible applies the inclusive -tile lower bound and exclusive viewport upper
// bound, so a tile straddling an edge is still drawn.
func (c *Camera) visible(p image.Point) bool {
	return p.X >= -c.tile && p.X < c.screen.W &&
		p.Y >= -c.tile && p.Y < c.screen.H
}
