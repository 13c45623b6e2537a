package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func weighted(pairs ...any) []Weighted[string] {
	var out []Weighted[string]
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, Weighted[string]{Item: pairs[i].(string), Weight: pairs[i+1].(float64)})
	}
	return out
}

func TestWeightedRandom_ZeroRollPicksFirst(t *testing.T) {
	items := weighted("a", 1.0, "b", 2.0, "c", 3.0)
	assert.Equal(t, "a", WeightedRandom(items, func() float64 { return 0 }))
}

func TestWeightedRandom_HighRollPicksLast(t *testing.T) {
	items := weighted("a", 1.0, "b", 2.0, "c", 3.0)
	assert.Equal(t, "c", WeightedRandom(items, func() float64 { return 0.9999999 }))
}

func TestWeightedRandom_ZeroTotalPicksLast(t *testing.T) {
	items := weighted("a", 0.0, "b", 0.0, "c", 0.0)
	for _, roll := range []float64{0, 0.5, 0.9999999} {
		r := roll
		assert.Equal(t, "c", WeightedRandom(items, func() float64 { return r }))
	}
}

func TestWeightedRandom_FollowsWeights(t *testing.T) {
	items := weighted("a", 1.0, "b", 3.0)
	// total 4: rolls up to 0.25 land on a, the rest on b
	assert.Equal(t, "a", WeightedRandom(items, func() float64 { return 0.25 }))
	assert.Equal(t, "b", WeightedRandom(items, func() float64 { return 0.26 }))
}

func TestWeightedRandom_EmptyReturnsZero(t *testing.T) {
	assert.Equal(t, "", WeightedRandom[string](nil, func() float64 { return 0.5 }))
}
