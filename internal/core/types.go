package core

// Size describes a width/height pair, in cells or pixels depending on context.
type Size struct {
	W int
	H int
}

// Position is a 0-indexed grid coordinate.
type Position struct {
	X int
	Y int
}

// Direction enumerates the discrete moves a player can make.
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Delta returns the unit step for d. Unknown directions yield (0, 0).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Kind tags what an entity looks like on screen.
type Kind uint8

const (
	KindFloor Kind = iota
	KindWall
	KindEdgeWall
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindFloor:
		return "floor"
	case KindWall:
		return "wall"
	case KindEdgeWall:
		return "edge-wall"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Entity is anything drawn on the grid: the player or a static tile.
type Entity struct {
	Pos  Position
	Kind Kind
}

// Event is a discrete input produced by a frontend.
type Event uint8

const (
	EventNone Event = iota
	EventQuit
	EventMoveLeft
	EventMoveRight
	EventMoveUp
	EventMoveDown
)

// Direction maps a move event onto its direction; other events map to DirNone.
func (e Event) Direction() Direction {
	switch e {
	case EventMoveLeft:
		return DirLeft
	case EventMoveRight:
		return DirRight
	case EventMoveUp:
		return DirUp
	case EventMoveDown:
		return DirDown
	default:
		return DirNone
	}
}
