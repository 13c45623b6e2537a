// Package draft builds the opening of a run: which talents are offered, which
// are kept and how the starting points are spread.
package draft

import (
	"sort"

	"lifesim/internal/config"
	"lifesim/internal/sim"
)

const (
	DrawCount   = 10
	SelectLimit = 3
)

// gradeRates weights each talent grade when drawing. Grades not listed
// weigh 1.
var gradeRates = map[int]float64{
	4: 6,
	3: 18,
	2: 40,
	1: 120,
	0: 200,
}

func gradeRate(g int) float64 {
	if r, ok := gradeRates[g]; ok {
		return r
	}
	return 1
}

// Draw offers up to n distinct non-exclusive talents. Each draw first picks a
// grade by rate among grades with talents left, then a talent uniformly
// within it.
func Draw(talents []config.Talent, rng func() float64, n int) []config.Talent {
	byGrade := map[int][]config.Talent{}
	for _, t := range talents {
		if t.Exclusive {
			continue
		}
		byGrade[t.Grade] = append(byGrade[t.Grade], t)
	}

	var out []config.Talent
	for i := 0; i < n; i++ {
		grades := make([]int, 0, len(byGrade))
		for g, list := range byGrade {
			if len(list) > 0 {
				grades = append(grades, g)
			}
		}
		if len(grades) == 0 {
			break
		}
		sort.Sort(sort.Reverse(sort.IntSlice(grades)))

		pool := make([]sim.Weighted[int], len(grades))
		for j, g := range grades {
			pool[j] = sim.Weighted[int]{Item: g, Weight: gradeRate(g)}
		}
		g := sim.WeightedRandom(pool, rng)
		list := byGrade[g]
		k := int(rng() * float64(len(list)))
		if k >= len(list) {
			k = len(list) - 1
		}
		out = append(out, list[k])
		byGrade[g] = append(list[:k:k], list[k+1:]...)
	}
	return out
}

// Pick keeps up to limit talents from drawn in order, skipping any that
// conflict with one already kept.
func Pick(drawn []config.Talent, limit int) []string {
	var kept []config.Talent
	for _, t := range drawn {
		if len(kept) >= limit {
			break
		}
		if conflicts(t, kept) {
			continue
		}
		kept = append(kept, t)
	}
	ids := make([]string, len(kept))
	for i, t := range kept {
		ids[i] = t.ID
	}
	return ids
}

func conflicts(t config.Talent, kept []config.Talent) bool {
	for _, k := range kept {
		if k.ID == t.ID || k.Excludes(t.ID) || t.Excludes(k.ID) {
			return true
		}
	}
	return false
}

// PointBonus sums the status of the chosen talents. Unknown ids add nothing.
func PointBonus(b *config.Bundle, ids []string) int {
	byID := make(map[string]int, len(b.Talents))
	for _, t := range b.Talents {
		byID[t.ID] = t.Status
	}
	sum := 0
	for _, id := range ids {
		sum += byID[id]
	}
	return sum
}

// Allocate spreads points one at a time over keys, choosing uniformly among
// the stats that still have room below their max. Unknown keys never receive
// points. Leftover points are dropped once every stat is full.
func Allocate(b *config.Bundle, keys []string, points int, rng func() float64) map[string]int {
	alloc := make(map[string]int, len(keys))
	var defs []config.StatDef
	for _, k := range keys {
		if def, ok := b.Stat(k); ok {
			defs = append(defs, def)
			alloc[k] = 0
		}
	}
	for ; points > 0; points-- {
		var open []config.StatDef
		for _, d := range defs {
			if d.Base+alloc[d.ID] < d.Max {
				open = append(open, d)
			}
		}
		if len(open) == 0 {
			break
		}
		k := int(rng() * float64(len(open)))
		if k >= len(open) {
			k = len(open) - 1
		}
		alloc[open[k].ID]++
	}
	return alloc
}
