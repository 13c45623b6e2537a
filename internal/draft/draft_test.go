package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifesim/internal/config"
	"lifesim/internal/util"
)

func pool() []config.Talent {
	return []config.Talent{
		{ID: "a", Grade: 0},
		{ID: "b", Grade: 0},
		{ID: "c", Grade: 1, Exclude: []string{"a"}},
		{ID: "d", Grade: 3},
		{ID: "crown", Grade: 4, Exclusive: true},
	}
}

func TestDraw_SkipsExclusiveAndRepeats(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		got := Draw(pool(), util.Uniform(seed), DrawCount)
		require.Len(t, got, 4, "seed %d", seed)
		seen := map[string]bool{}
		for _, tl := range got {
			assert.NotEqual(t, "crown", tl.ID)
			assert.False(t, seen[tl.ID], "seed %d drew %s twice", seed, tl.ID)
			seen[tl.ID] = true
		}
	}
}

func TestDraw_ZeroRollTakesHighestGrade(t *testing.T) {
	// grades are weighed highest first, so a zero roll lands on grade 3
	got := Draw(pool(), func() float64 { return 0 }, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "d", got[0].ID)
}

func TestDraw_ScriptedRolls(t *testing.T) {
	// grade 3, its only talent, then grade 0 (rates 120+200), first of a/b
	got := Draw(pool(), util.Sequence(0, 0.99, 0.99, 0), 2)
	require.Len(t, got, 2)
	assert.Equal(t, "d", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}

func TestDraw_StopsAtN(t *testing.T) {
	assert.Len(t, Draw(pool(), util.Uniform(3), 2), 2)
	assert.Empty(t, Draw(nil, util.Uniform(3), 5))
}

func TestPick_SkipsConflicts(t *testing.T) {
	p := pool()
	drawn := []config.Talent{p[0], p[2], p[1], p[3]}
	assert.Equal(t, []string{"a", "b", "d"}, Pick(drawn, SelectLimit))
	assert.Equal(t, []string{"a"}, Pick(drawn, 1))
}

func TestPointBonus_SumsStatus(t *testing.T) {
	b := &config.Bundle{Talents: []config.Talent{
		{ID: "rich", Status: 3},
		{ID: "cursed", Status: -1},
	}}
	assert.Equal(t, 2, PointBonus(b, []string{"rich", "cursed", "ghost"}))
}

func TestAllocate_RespectsMaxAndBudget(t *testing.T) {
	b := &config.Bundle{Config: config.GameConfig{Stats: []config.StatDef{
		{ID: "tech", Max: 3},
		{ID: "social", Max: 10, Base: 8},
	}}}

	alloc := Allocate(b, []string{"tech", "social", "luck"}, 4, util.Uniform(9))
	assert.Equal(t, 4, alloc["tech"]+alloc["social"])
	assert.LessOrEqual(t, alloc["tech"], 3)
	assert.LessOrEqual(t, alloc["social"], 2)
	assert.NotContains(t, alloc, "luck")

	full := Allocate(b, []string{"tech", "social"}, 50, util.Uniform(9))
	assert.Equal(t, map[string]int{"tech": 3, "social": 2}, full)
}
