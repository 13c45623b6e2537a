package sim

// Weighted pairs an item with a non-negative draw weight.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// WeightedRandom draws one item using rng, which must return values in [0,1).
//
// A non-positive total weight falls back to the last item, as does a roll
// that survives the walk through floating-point rounding. An empty input
// returns the zero value.
func WeightedRandom[T any](items []Weighted[T], rng func() float64) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	last := items[len(items)-1].Item
	total := 0.0
	for _, it := range items {
		total += it.Weight
	}
	if total <= 0 {
		return last
	}
	roll := rng() * total
	for _, it := range items {
		roll -= it.Weight
		if roll <= 0 {
			return it.Item
		}
	}
	return last
}
