package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniform_SameSeedSameStream(t *testing.T) {
	a, b := Uniform(42), Uniform(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a(), b())
	}
}

func TestUniform_ZeroSeedMatchesOne(t *testing.T) {
	assert.Equal(t, Uniform(1)(), Uniform(0)())
}

func TestUniform_StaysInUnitInterval(t *testing.T) {
	rng := Uniform(7)
	for i := 0; i < 1000; i++ {
		v := rng()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestSequence_RepeatsLastValue(t *testing.T) {
	rng := Sequence(0.1, 0.5)
	assert.Equal(t, 0.1, rng())
	assert.Equal(t, 0.5, rng())
	assert.Equal(t, 0.5, rng())
	assert.Equal(t, 0.0, Sequence()())
}

func TestNewSeed(t *testing.T) {
	_, err := NewSeed()
	require.NoError(t, err)
}
