package world

import (
	"slices"
	"strings"
)

// Map is a row-major occupancy grid. Cells[y*Size.Width+x] holds the state
// of the square at (x, y) and len(Cells) always equals Size.Cells().
type Map struct {
	Size  Size
	Cells []Cell
}

// NewMap allocates a map of the given size with every cell Empty.
func NewMap(size Size) Map {
	return Map{
		Size:  size,
		Cells: make([]Cell, size.Cells()),
	}
}

// Clone returns a deep copy of the map.
func (m Map) Clone() Map {
	return Map{
		Size:  m.Size,
		Cells: slices.Clone(m.Cells),
	}
}

// InBounds reports whether (x, y) lies inside the grid.
func (m Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Size.Width && y >= 0 && y < m.Size.Height
}

// Index converts a coordinate to its offset in Cells.
func (m Map) Index(x, y int) int {
	return y*m.Size.Width + x
}

// At returns the cell at (x, y). Out of bounds squares read as Wall.
func (m Map) At(x, y int) Cell {
	if !m.InBounds(x, y) {
		return Wall
	}
	return m.Cells[m.Index(x, y)]
}

// EmptyCount returns the number of Empty cells.
func (m Map) EmptyCount() int {
	n := 0
	for _, c := range m.Cells {
		if c == Empty {
			n++
		}
	}
	return n
}

// String renders the map one row per line, '#' for walls and '.' for
// empty squares.
func (m Map) String() string {
	var b strings.Builder
	b.Grow(m.Size.Cells() + m.Size.Height)
	for y := 0; y < m.Size.Height; y++ {
		for x := 0; x < m.Size.Width; x++ {
			b.WriteString(m.Cells[m.Index(x, y)].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
