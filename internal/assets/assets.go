// Package assets loads the game's images from disk and scales them to the
// size they are drawn at.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"flux/internal/core"
)

// ErrAssetNotFound is returned when an asset file is missing.
var ErrAssetNotFound = errors.New("asset not found")

// Logical asset names.
const (
	Player     = "player"
	Wall       = "wall"
	Floor      = "floor"
	Background = "background"
)

var files = map[string]string{
	Player:     "player.png",
	Wall:       "box.png",
	Floor:      "grass.png",
	Background: "background.png",
}

// Provider resolves logical names to files under a directory.
type Provider struct {
	dir  string
	tile int
}

// NewProvider returns a provider reading from dir and scaling tiles to
// tile x tile pixels.
func NewProvider(dir string, tile int) *Provider {
	return &Provider{dir: dir, tile: tile}
}

// Load returns the named image scaled to one tile.
func (p *Provider) Load(name string) (image.Image, error) {
	return p.LoadSized(name, p.tile, p.tile)
}

// LoadSized returns the named image scaled to w x h.
func (p *Provider) LoadSized(name string, w, h int) (image.Image, error) {
	file, ok := files[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown asset %q", ErrAssetNotFound, name)
	}
	path := filepath.Join(p.dir, file)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, path)
		}
		return nil, fmt.Errorf("open asset %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode asset %s: %w", path, err)
	}
	return Scale(src, w, h), nil
}

// Tiles holds one scaled image per drawable kind.
type Tiles map[core.Kind]image.Image

// LoadTiles loads every tile image. Walls and edge walls share a sprite.
func (p *Provider) LoadTiles() (Tiles, error) {
	tiles := Tiles{}
	for kind, name := range map[core.Kind]string{
		core.KindPlayer: Player,
		core.KindWall:   Wall,
		core.KindFloor:  Floor,
	} {
		img, err := p.Load(name)
		if err != nil {
			return nil, err
		}
		tiles[kind] = img
	}
	tiles[core.KindEdgeWall] = tiles[core.KindWall]
	return tiles, nil
}

// Scale resamples src to exactly w x h pixels.
func Scale(src image.Image, w, h int) *image.RGBA {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
