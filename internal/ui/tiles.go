//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"flux/internal/assets"
	"flux/internal/core"
	"flux/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// TileSet holds one GPU image per entity kind.
type TileSet struct {
	imgs map[core.Kind]*ebiten.Image
}

// NewTileSet uploads the scaled asset images.
func NewTileSet(tiles assets.Tiles) *TileSet {
	ts := &TileSet{imgs: make(map[core.Kind]*ebiten.Image, len(tiles))}
	uploaded := map[image.Image]*ebiten.Image{}
	for kind, img := range tiles {
		if e, ok := uploaded[img]; ok {
			ts.imgs[kind] = e
			continue
		}
		e := ebiten.NewImageFromImage(img)
		uploaded[img] = e
		ts.imgs[kind] = e
	}
	return ts
}

// Blit clears dst and draws every op in order.
func (ts *TileSet) Blit(dst *ebiten.Image, ops []render.DrawOp) {
	dst.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	for _, d := range ops {
		img, ok := ts.imgs[d.Kind]
		if !ok {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Translate(float64(d.At.X), float64(d.At.Y))
		dst.DrawImage(img, op)
	}
}
