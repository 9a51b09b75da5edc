package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrLevelNotFound is returned when the named level file does not exist.
	ErrLevelNotFound = errors.New("level not found")
	// ErrNoPlayerStart is returned when a level has no '@' cell.
	ErrNoPlayerStart = errors.New("level has no player start")
	// ErrEmptyLevel is returned when a level has no rows.
	ErrEmptyLevel = errors.New("level is empty")
)

// Level source characters.
const (
	RunePlayer   = '@'
	RuneWall     = '#'
	RuneFloor    = '.'
	RuneEdgeWall = '$'
)

// Level is a parsed map together with where the player spawns.
type Level struct {
	Grid  *Grid
	Start Position

	// ExtraStarts lists '@' cells after the first; they load as floor and
	// only the first is kept as CellPlayerStart.
	ExtraStarts []Position
	// Unknown counts characters that were not part of the level alphabet.
	Unknown int
}

// LoadLevel reads dir/name and parses it.
func LoadLevel(dir, name string, cyclic bool) (*Level, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, path)
		}
		return nil, fmt.Errorf("open level %s: %w", path, err)
	}
	defer f.Close()

	lvl, err := ReadLevel(f, cyclic)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return lvl, nil
}

// ReadLevel parses one row per line from r.
func ReadLevel(r io.Reader, cyclic bool) (*Level, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return ParseLevel(rows, cyclic)
}

// ParseLevel builds a Level from text rows. Short rows are right-padded with
// floor. On cyclic maps edge walls are rewritten to floor before parsing.
func ParseLevel(rows []string, cyclic bool) (*Level, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyLevel
	}
	if cyclic {
		wrapped := make([]string, len(rows))
		for i, row := range rows {
			wrapped[i] = strings.ReplaceAll(row, string(RuneEdgeWall), string(RuneFloor))
		}
		rows = wrapped
	}
	width := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	if width == 0 {
		return nil, ErrEmptyLevel
	}

	lvl := &Level{Grid: NewGrid(width, len(rows), cyclic)}
	found := false
	for y, row := range rows {
		x := 0
		for _, ch := range row {
			switch ch {
			case RuneWall:
				lvl.Grid.Set(x, y, CellWall)
			case RuneEdgeWall:
				lvl.Grid.Set(x, y, CellEdgeWall)
			case RunePlayer:
				p := Position{X: x, Y: y}
				if found {
					lvl.ExtraStarts = append(lvl.ExtraStarts, p)
				} else {
					lvl.Grid.Set(x, y, CellPlayerStart)
					lvl.Start = p
					found = true
				}
			case RuneFloor:
			default:
				lvl.Unknown++
			}
			x++
		}
	}
	if !found {
		return nil, ErrNoPlayerStart
	}
	return lvl, nil
}
