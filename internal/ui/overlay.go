//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"flux/internal/core"
	"flux/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// State is what the overlay needs to read from a running session.
type State interface {
	Grid() *core.Grid
	Player() core.Position
	Camera() *render.Camera
}

// Overlay draws a toggleable debug panel with a minimap and camera readout.
type Overlay struct {
	show bool

	mapImg *ebiten.Image
	mapBuf []byte
	panel  *ebiten.Image
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update toggles the overlay with F1 or Tab.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) || inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, st State) {
	if !o.show {
		return
	}
	g := st.Grid()
	cam := st.Camera()
	player := st.Player()

	if o.mapImg == nil || o.mapImg.Bounds().Dx() != g.W || o.mapImg.Bounds().Dy() != g.H {
		o.mapImg = ebiten.NewImage(g.W, g.H)
		o.mapBuf = make([]byte, 4*g.W*g.H)
	}
	render.FillMinimapRGBA(o.mapBuf, g, player, render.MinimapPalette)
	o.mapImg.WritePixels(o.mapBuf)

	scale := minimapScale(g.Size())
	if o.panel == nil {
		o.panel = ebiten.NewImage(1, 1)
		o.panel.Fill(color.White)
	}
	panelW := float64(g.W*scale + 2*overlayPadding)
	if panelW < overlayTextWidth {
		panelW = overlayTextWidth
	}
	panelH := float64(g.H*scale + 3*overlayPadding + 3*overlayLine)
	bg := &ebiten.DrawImageOptions{}
	bg.GeoM.Scale(panelW, panelH)
	bg.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	screen.DrawImage(o.panel, bg)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(overlayPadding, overlayPadding)
	screen.DrawImage(o.mapImg, op)

	off := cam.Offset()
	mode := "bounded"
	if cam.Cyclic() {
		mode = "cyclic"
	}
	lines := []string{
		fmt.Sprintf("player %d,%d  %s", player.X, player.Y, mode),
		fmt.Sprintf("offset %d,%d", off.X, off.Y),
		fmt.Sprintf("world %dx%d px", cam.World().W, cam.World().H),
	}
	y := g.H*scale + 2*overlayPadding + overlayLine
	for _, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, overlayPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += overlayLine
	}
}

// minimapScale picks the largest integer zoom that keeps the map small.
func minimapScale(size core.Size) int {
	longest := size.W
	if size.H > longest {
		longest = size.H
	}
	if longest <= 0 {
		return 1
	}
	scale := overlayMapSpan / longest
	if scale < 1 {
		scale = 1
	}
	return scale
}

const (
	overlayPadding   = 8
	overlayLine      = 16
	overlayMapSpan   = 160
	overlayTextWidth = 200
)
