package world

import (
	"errors"
	"fmt"
)

// World size related errors.
var (
	ErrInvalidSize   = errors.New("world size is out of bounds")
	ErrInvalidBounds = errors.New("invalid world bounds")
)

// Size is the width and height of a world in cells.
type Size struct {
	Width  int
	Height int
}

// Cells returns the number of cells a world of this size holds.
func (s Size) Cells() int {
	return s.Width * s.Height
}

// Bounds holds the inclusive limits a requested Size must respect.
type Bounds struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Validate checks that the bounds describe a non-empty range on both axes.
func (b Bounds) Validate() error {
	if min(b.MinWidth, b.MinHeight) <= 0 {
		return fmt.Errorf("%w: minimum dimensions must be positive", ErrInvalidBounds)
	}
	if b.MinWidth > b.MaxWidth {
		return fmt.Errorf("%w: width min %d is above max %d", ErrInvalidBounds, b.MinWidth, b.MaxWidth)
	}
	if b.MinHeight > b.MaxHeight {
		return fmt.Errorf("%w: height min %d is above max %d", ErrInvalidBounds, b.MinHeight, b.MaxHeight)
	}
	return nil
}

// Check returns ErrInvalidSize when s falls outside the bounds.
func (b Bounds) Check(s Size) error {
	if s.Width < b.MinWidth || s.Width > b.MaxWidth {
		return fmt.Errorf("%w: width %d not in [%d, %d]", ErrInvalidSize, s.Width, b.MinWidth, b.MaxWidth)
	}
	if s.Height < b.MinHeight || s.Height > b.MaxHeight {
		return fmt.Errorf("%w: height %d not in [%d, %d]", ErrInvalidSize, s.Height, b.MinHeight, b.MaxHeight)
	}
	return nil
}
