/*
Package world generates the randomized grid worlds games are played on.

A world is a rectangular occupancy grid where every cell is either Empty or
Wall. The Generator scatters straight wall runs over an empty grid and then
picks a spawn square that is guaranteed to be Empty.

Randomness is always taken from a caller supplied Rand so that generation can
be reproduced in tests; production callers pass a freshly seeded source per
world (see package random).
*/
package world

import (
	"errors"
	"fmt"
)

const (
	defaultWallCountMin  = 10
	defaultWallCountMax  = 40
	defaultWallLengthMin = 4

	// spawnAttemptFactor caps rejection sampling at this many tries per cell
	// before falling back to a direct pick among the empty cells.
	spawnAttemptFactor = 4
)

// Generation errors.
var (
	ErrDegenerateMap    = errors.New("world has no empty cell to spawn on")
	ErrInvalidGenerator = errors.New("invalid generator config")
)

// Rand is the source of randomness consumed by the generator.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n). n is always positive.
	IntN(n int) int
}

// Config controls the size limits and the wall layout of generated worlds.
type Config struct {
	Bounds        Bounds
	WallCountMin  int // Inclusive lower bound on the number of wall runs.
	WallCountMax  int // Exclusive upper bound on the number of wall runs.
	WallLengthMin int // Shortest wall run.
}

// Generator builds worlds within a fixed set of bounds. It holds no mutable
// state and is safe for concurrent use.
type Generator struct {
	bounds        Bounds
	wallCountMin  int
	wallCountMax  int
	wallLengthMin int
}

// NewGenerator validates c and returns a Generator. Zero wall settings fall
// back to the defaults (10 to 39 walls, runs of at least 4 cells).
func NewGenerator(c Config) (*Generator, error) {
	if err := c.Bounds.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		bounds:        c.Bounds,
		wallCountMin:  c.WallCountMin,
		wallCountMax:  c.WallCountMax,
		wallLengthMin: c.WallLengthMin,
	}
	if g.wallCountMin == 0 && g.wallCountMax == 0 {
		g.wallCountMin, g.wallCountMax = defaultWallCountMin, defaultWallCountMax
	}
	if g.wallLengthMin == 0 {
		g.wallLengthMin = defaultWallLengthMin
	}

	if g.wallCountMin < 0 || g.wallCountMax <= g.wallCountMin {
		return nil, fmt.Errorf("%w: wall count range [%d, %d) is empty", ErrInvalidGenerator, g.wallCountMin, g.wallCountMax)
	}
	if g.wallLengthMin <= 0 {
		return nil, fmt.Errorf("%w: wall length must be positive", ErrInvalidGenerator)
	}
	// Run lengths are drawn from [wallLengthMin, dim/2), so the smallest
	// allowed world must leave that range non-empty.
	if minDim := min(c.Bounds.MinWidth, c.Bounds.MinHeight); minDim/2 <= g.wallLengthMin {
		return nil, fmt.Errorf("%w: minimum dimension %d too small for walls of length %d", ErrInvalidGenerator, minDim, g.wallLengthMin)
	}

	return g, nil
}

// Bounds returns the size limits enforced by the generator.
func (g *Generator) Bounds() Bounds {
	return g.bounds
}

// Generate validates size, lays out random walls and picks a spawn position
// on an Empty cell. The size check runs before rng is consumed.
func (g *Generator) Generate(size Size, rng Rand) (Map, Position, error) {
	if err := g.bounds.Check(size); err != nil {
		return Map{}, Position{}, err
	}

	m := NewMap(size)
	empty := len(m.Cells)

	walls := g.wallCountMin + rng.IntN(g.wallCountMax-g.wallCountMin)
	for range walls {
		empty -= g.placeWall(m, rng)
	}

	pos, err := spawn(m, empty, rng)
	if err != nil {
		return Map{}, Position{}, err
	}
	return m, pos, nil
}

// placeWall marks one straight run of walls and returns how many cells
// turned from Empty to Wall.
func (g *Generator) placeWall(m Map, rng Rand) int {
	w, h := m.Size.Width, m.Size.Height
	vertical := rng.IntN(2) == 0

	var x, y, dx, dy, length int
	if vertical {
		length = g.wallLengthMin + rng.IntN(h/2-g.wallLengthMin)
		x = rng.IntN(w)
		y = rng.IntN(h - length)
		dy = 1
	} else {
		length = g.wallLengthMin + rng.IntN(w/2-g.wallLengthMin)
		x = rng.IntN(w - length)
		y = rng.IntN(h)
		dx = 1
	}

	marked := 0
	for i := range length {
		idx := m.Index(x+i*dx, y+i*dy)
		if m.Cells[idx] == Empty {
			m.Cells[idx] = Wall
			marked++
		}
	}
	return marked
}

// spawn picks a uniformly random Empty cell. empty must be the number of
// Empty cells in m.
func spawn(m Map, empty int, rng Rand) (Position, error) {
	if empty <= 0 {
		return Position{}, ErrDegenerateMap
	}

	w, h := m.Size.Width, m.Size.Height
	for range len(m.Cells) * spawnAttemptFactor {
		x, y := rng.IntN(w), rng.IntN(h)
		if m.Cells[m.Index(x, y)] == Empty {
			return Position{X: x, Y: y, Facing: DefaultFacing}, nil
		}
	}

	k := rng.IntN(empty)
	for idx, c := range m.Cells {
		if c != Empty {
			continue
		}
		if k == 0 {
			return Position{X: idx % w, Y: idx / w, Facing: DefaultFacing}, nil
		}
		k--
	}
	return Position{}, ErrDegenerateMap
}
