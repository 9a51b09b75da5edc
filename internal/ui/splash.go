//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const splashTextScale = 4

// Splash is the title screen shown until the player clicks or presses a key.
type Splash struct {
	bg      *ebiten.Image
	message string
	done    bool
}

// NewSplash builds a title screen over an already scaled background.
func NewSplash(bg image.Image, message string) *Splash {
	s := &Splash{message: message}
	if bg != nil {
		s.bg = ebiten.NewImageFromImage(bg)
	}
	return s
}

// Update reports whether the splash has been dismissed.
func (s *Splash) Update() bool {
	if s == nil {
		return true
	}
	if s.done {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		s.done = true
	}
	return s.done
}

// Draw paints the background with the message centred on top.
func (s *Splash) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if s.bg != nil {
		screen.DrawImage(s.bg, nil)
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, s.message)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	w := bounds.Dx() * splashTextScale
	h := bounds.Dy() * splashTextScale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(-bounds.Min.X), float64(-bounds.Min.Y))
	op.GeoM.Scale(splashTextScale, splashTextScale)
	op.GeoM.Translate(float64((sw-w)/2), float64((sh-h)/2))
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, s.message, face, op)
}
