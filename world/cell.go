package world

// Cell is the occupancy state of a single square of the world grid.
// The numeric values are the ones sent over the wire.
type Cell int32

const (
	// Empty marks a square a player can stand on.
	Empty Cell = iota
	// Wall marks a blocked square.
	Wall
)

// String returns the single character used when rendering a map.
func (c Cell) String() string {
	if c == Wall {
		return "#"
	}
	return "."
}

// Direction is the way a player is facing.
type Direction int32

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// DefaultFacing is the facing given to freshly spawned players.
const DefaultFacing = Down

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Position is a grid coordinate plus a facing.
type Position struct {
	X      int
	Y      int
	Facing Direction
}
