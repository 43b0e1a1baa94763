// Package random provides entropy-seeded pseudo-random sources.
//
// Seeds come from crypto/rand so that every world generated in production
// gets an independent PCG stream, while tests can still build deterministic
// sources with rand.New(rand.NewPCG(a, b)).
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// New returns a PCG-backed source seeded from crypto/rand.
func New() (*rand.Rand, error) {
	hi, err := NewSeed()
	if err != nil {
		return nil, err
	}
	lo, err := NewSeed()
	if err != nil {
		return nil, err
	}

	return rand.New(rand.NewPCG(hi, lo)), nil
}
