package render

import (
	"image"

	"flux/internal/core"
)

// DrawOp is one tile blit at a screen position.
type DrawOp struct {
	Kind core.Kind
	At   image.Point
}

// Compose returns the blits for one frame. Layers are drawn in the order
// given, so later layers occlude earlier ones at the same pixel. dst is reused
// when it has capacity.
func Compose(dst []DrawOp, cam *Camera, layers ...[]core.Entity) []DrawOp {
	dst = dst[:0]
	var pts [9]image.Point
	for _, layer := range layers {
		for _, e := range layer {
			for _, p := range CellPositions(pts[:0], e.Pos, cam) {
				dst = append(dst, DrawOp{Kind: e.Kind, At: p})
			}
		}
	}
	return dst
}
