package core

// Resolve returns where a player standing at pos ends up after stepping in
// dir. Blocked moves return pos unchanged. The grid's Cyclic flag selects
// wrap-around or bounded rules; Resolve never mutates anything.
func Resolve(dir Direction, pos Position, g *Grid) Position {
	dx, dy := dir.Delta()
	if dx == 0 && dy == 0 {
		return pos
	}
	nx, ny := pos.X+dx, pos.Y+dy

	if g.Cyclic {
		nx, ny = g.Wrap(nx, ny)
		if g.At(nx, ny).Blocks(true) {
			return pos
		}
		return Position{X: nx, Y: ny}
	}

	if !g.InBounds(nx, ny) || g.At(nx, ny).Blocks(false) {
		return pos
	}
	return Position{X: nx, Y: ny}
}
