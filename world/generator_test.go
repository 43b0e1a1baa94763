package world

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBounds = Bounds{MinWidth: 10, MaxWidth: 100, MinHeight: 10, MaxHeight: 100}

// countingRand records how many values were drawn.
type countingRand struct {
	calls int
	r     *rand.Rand
}

func (c *countingRand) IntN(n int) int {
	c.calls++
	return c.r.IntN(n)
}

// zeroRand always answers 0.
type zeroRand struct{}

func (zeroRand) IntN(int) int { return 0 }

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator(Config{Bounds: testBounds})
	require.NoError(t, err)
	return g
}

func TestNewGenerator(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		g, err := NewGenerator(Config{Bounds: testBounds})
		require.NoError(t, err)
		assert.Equal(t, defaultWallCountMin, g.wallCountMin)
		assert.Equal(t, defaultWallCountMax, g.wallCountMax)
		assert.Equal(t, defaultWallLengthMin, g.wallLengthMin)
		assert.Equal(t, testBounds, g.Bounds())
	})

	t.Run("rejects inverted bounds", func(t *testing.T) {
		_, err := NewGenerator(Config{Bounds: Bounds{MinWidth: 20, MaxWidth: 10, MinHeight: 10, MaxHeight: 10}})
		assert.ErrorIs(t, err, ErrInvalidBounds)
	})

	t.Run("rejects non-positive bounds", func(t *testing.T) {
		_, err := NewGenerator(Config{Bounds: Bounds{MinWidth: 0, MaxWidth: 10, MinHeight: 10, MaxHeight: 10}})
		assert.ErrorIs(t, err, ErrInvalidBounds)
	})

	t.Run("rejects worlds too small for a wall run", func(t *testing.T) {
		_, err := NewGenerator(Config{Bounds: Bounds{MinWidth: 8, MaxWidth: 20, MinHeight: 10, MaxHeight: 20}})
		assert.ErrorIs(t, err, ErrInvalidGenerator)
	})

	t.Run("rejects empty wall count range", func(t *testing.T) {
		_, err := NewGenerator(Config{Bounds: testBounds, WallCountMin: 5, WallCountMax: 5})
		assert.ErrorIs(t, err, ErrInvalidGenerator)
	})
}

func TestGenerate(t *testing.T) {
	g := newTestGenerator(t)

	sizes := []Size{
		{Width: 10, Height: 10},
		{Width: 20, Height: 20},
		{Width: 10, Height: 100},
		{Width: 100, Height: 10},
		{Width: 37, Height: 53},
		{Width: 100, Height: 100},
	}

	for _, size := range sizes {
		for seed := uint64(0); seed < 50; seed++ {
			rng := rand.New(rand.NewPCG(seed, seed*31+7))
			m, pos, err := g.Generate(size, rng)
			require.NoError(t, err)

			assert.Equal(t, size, m.Size)
			require.Len(t, m.Cells, size.Width*size.Height)
			require.True(t, m.InBounds(pos.X, pos.Y), "spawn %+v outside %+v", pos, size)
			assert.Equal(t, Empty, m.Cells[pos.Y*size.Width+pos.X])
			assert.Equal(t, DefaultFacing, pos.Facing)
			assert.Less(t, m.EmptyCount(), len(m.Cells), "expected at least one wall")
		}
	}
}

func TestGenerate20x20(t *testing.T) {
	g := newTestGenerator(t)

	m, pos, err := g.Generate(Size{Width: 20, Height: 20}, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	assert.Len(t, m.Cells, 400)
	assert.GreaterOrEqual(t, pos.X, 0)
	assert.Less(t, pos.X, 20)
	assert.GreaterOrEqual(t, pos.Y, 0)
	assert.Less(t, pos.Y, 20)
	assert.Equal(t, Empty, m.Cells[pos.Y*20+pos.X])
}

func TestGenerateIsReproducible(t *testing.T) {
	g := newTestGenerator(t)
	size := Size{Width: 30, Height: 25}

	m1, p1, err := g.Generate(size, rand.New(rand.NewPCG(42, 99)))
	require.NoError(t, err)
	m2, p2, err := g.Generate(size, rand.New(rand.NewPCG(42, 99)))
	require.NoError(t, err)

	assert.Equal(t, m1, m2)
	assert.Equal(t, p1, p2)
}

func TestGenerateInvalidSize(t *testing.T) {
	g := newTestGenerator(t)

	sizes := map[string]Size{
		"width below min":  {Width: 9, Height: 20},
		"width above max":  {Width: 101, Height: 20},
		"height below min": {Width: 20, Height: 9},
		"height above max": {Width: 20, Height: 101},
		"zero":             {},
		"negative":         {Width: -5, Height: -5},
	}

	for name, size := range sizes {
		t.Run(name, func(t *testing.T) {
			rng := &countingRand{r: rand.New(rand.NewPCG(1, 1))}
			_, _, err := g.Generate(size, rng)
			assert.ErrorIs(t, err, ErrInvalidSize)
			assert.Zero(t, rng.calls, "randomness consumed before validation")
		})
	}
}

func TestPlaceWallStaysInside(t *testing.T) {
	g := newTestGenerator(t)
	rng := rand.New(rand.NewPCG(7, 7))

	for range 1000 {
		m := NewMap(Size{Width: 10, Height: 10})
		marked := g.placeWall(m, rng)
		assert.GreaterOrEqual(t, marked, defaultWallLengthMin)
		assert.Equal(t, len(m.Cells)-marked, m.EmptyCount())
	}
}

func TestSpawn(t *testing.T) {
	t.Run("fails on a fully walled map", func(t *testing.T) {
		m := NewMap(Size{Width: 10, Height: 10})
		for i := range m.Cells {
			m.Cells[i] = Wall
		}

		_, err := spawn(m, m.EmptyCount(), rand.New(rand.NewPCG(1, 1)))
		assert.ErrorIs(t, err, ErrDegenerateMap)
	})

	t.Run("falls back to the remaining empty cell", func(t *testing.T) {
		m := NewMap(Size{Width: 10, Height: 10})
		for i := range m.Cells {
			m.Cells[i] = Wall
		}
		m.Cells[m.Index(7, 3)] = Empty

		pos, err := spawn(m, 1, zeroRand{})
		require.NoError(t, err)
		assert.Equal(t, Position{X: 7, Y: 3, Facing: DefaultFacing}, pos)
	})
}
