package util

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Uniform returns a [0,1) source backed by a seeded generator.
func Uniform(seed int64) func() float64 {
	return New(seed).Float64
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Sequence replays vals in order and then repeats the last one. Used to
// script draws in tests.
func Sequence(vals ...float64) func() float64 {
	i := 0
	return func() float64 {
		if len(vals) == 0 {
			return 0
		}
		v := vals[i]
		if i < len(vals)-1 {
			i++
		}
		return v
	}
}
