package core

// Cell enumerates the kinds of map cell a level can contain.
type Cell uint8

const (
	CellFloor Cell = iota
	CellWall
	CellEdgeWall
	CellPlayerStart
)

// Blocks reports whether the cell stops movement. Edge walls only block on
// bounded maps.
func (c Cell) Blocks(cyclic bool) bool {
	switch c {
	case CellWall:
		return true
	case CellEdgeWall:
		return !cyclic
	default:
		return false
	}
}

// Grid stores the cells of a level in row-major order.
type Grid struct {
	W, H   int
	Cyclic bool
	data   []Cell
}

// NewGrid allocates a floor-filled grid with the given dimensions.
func NewGrid(w, h int, cyclic bool) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, Cyclic: cyclic, data: make([]Cell, w*h)}
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y). Out-of-range coordinates read as wall.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return CellWall
	}
	return g.data[g.Index(x, y)]
}

// Set writes the cell at (x, y); out-of-range writes are dropped.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[g.Index(x, y)] = c
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	return Mod(x, g.W), Mod(y, g.H)
}

// Mod returns a modulo m, always in [0, m) for m > 0.
func Mod(a, m int) int {
	if m <= 0 {
		return 0
	}
	return (a%m + m) % m
}
