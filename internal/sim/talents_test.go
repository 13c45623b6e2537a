package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifesim/internal/config"
	"lifesim/internal/util"
)

func talentBundle(talents ...config.Talent) *config.Bundle {
	b := testBundle()
	b.Talents = talents
	return b
}

func TestResolveTalents_DropsUnknownAndDuplicates(t *testing.T) {
	e := New(talentBundle(
		config.Talent{ID: "a"},
		config.Talent{ID: "b"},
	), nil)

	res := e.ResolveTalents([]string{"a", "ghost", "a", "b"})
	assert.Equal(t, []string{"a", "b"}, res.Talents)
	assert.Empty(t, res.Replacements)
}

func TestResolveTalents_ExclusionEitherSide(t *testing.T) {
	e := New(talentBundle(
		config.Talent{ID: "a", Exclude: []string{"b"}},
		config.Talent{ID: "b"},
		config.Talent{ID: "c"},
		config.Talent{ID: "d", Exclude: []string{"c"}},
	), nil)

	res := e.ResolveTalents([]string{"a", "b", "c", "d"})
	assert.Equal(t, []string{"a", "c"}, res.Talents)
}

func TestResolveTalents_ReplacementKeepsSource(t *testing.T) {
	e := New(talentBundle(
		config.Talent{ID: "x", Replacement: &config.Replacement{Talent: []config.Token{"y*2"}}},
		config.Talent{ID: "y", Name: "Why"},
	), func() float64 { return 0 })

	res := e.ResolveTalents([]string{"x"})
	assert.Equal(t, []string{"x", "y"}, res.Talents)
	assert.Equal(t, []Replacement{{Source: "x", Target: "y"}}, res.Replacements)
}

func TestResolveTalents_ReplacementSkipsExcluded(t *testing.T) {
	e := New(talentBundle(
		config.Talent{ID: "a", Exclude: []string{"y"}},
		config.Talent{ID: "x", Replacement: &config.Replacement{Common: []config.WeightedID{{ID: "y", Weight: 1}}}},
		config.Talent{ID: "y"},
	), func() float64 { return 0 })

	res := e.ResolveTalents([]string{"a", "x"})
	assert.Equal(t, []string{"a", "x"}, res.Talents)
	assert.Empty(t, res.Replacements)
}

func TestResolveTalents_GradeTokenSkipsExclusive(t *testing.T) {
	e := New(talentBundle(
		config.Talent{ID: "g", Replacement: &config.Replacement{Grade: []config.Token{"2"}}},
		config.Talent{ID: "rare", Grade: 2, Exclusive: true},
		config.Talent{ID: "fine", Grade: 2},
		config.Talent{ID: "plain", Grade: 1},
	), func() float64 { return 0 })

	res := e.ResolveTalents([]string{"g"})
	assert.Equal(t, []string{"g", "fine"}, res.Talents)
}

func TestResolveTalents_DepthIsCapped(t *testing.T) {
	var chain []config.Talent
	for i := 0; i < 8; i++ {
		chain = append(chain, config.Talent{
			ID:          fmt.Sprintf("t%d", i),
			Replacement: &config.Replacement{Talent: []config.Token{config.Token(fmt.Sprintf("t%d", i+1))}},
		})
	}
	chain = append(chain, config.Talent{ID: "t8"})
	e := New(talentBundle(chain...), func() float64 { return 0 })

	res := e.ResolveTalents([]string{"t0"})
	require.Len(t, res.Replacements, 1)
	assert.Equal(t, "t4", res.Replacements[0].Target)
}

func TestResolveTalents_CyclicPoolsTerminate(t *testing.T) {
	e := New(talentBundle(
		config.Talent{ID: "p", Replacement: &config.Replacement{Talent: []config.Token{"q"}}},
		config.Talent{ID: "q", Replacement: &config.Replacement{Talent: []config.Token{"p"}}},
	), func() float64 { return 0 })

	res := e.ResolveTalents([]string{"p"})
	assert.Equal(t, []string{"p", "q"}, res.Talents)
}

func TestResolveTalents_NeverMutuallyExclusive(t *testing.T) {
	talents := []config.Talent{
		{ID: "a", Exclude: []string{"b", "e"}, Replacement: &config.Replacement{Grade: []config.Token{"1"}}},
		{ID: "b", Grade: 1, Replacement: &config.Replacement{Talent: []config.Token{"c", "d*3"}}},
		{ID: "c", Grade: 1, Exclude: []string{"d"}},
		{ID: "d", Grade: 1, Replacement: &config.Replacement{Grade: []config.Token{"1"}}},
		{ID: "e", Grade: 1, Replacement: &config.Replacement{Common: []config.WeightedID{{ID: "a", Weight: 1}, {ID: "c", Weight: 1}}}},
	}
	ids := []string{"a", "b", "c", "d", "e"}
	for seed := int64(1); seed <= 50; seed++ {
		e := New(talentBundle(talents...), util.Uniform(seed))
		r := util.New(seed)
		req := append([]string(nil), ids...)
		r.Shuffle(len(req), func(i, j int) { req[i], req[j] = req[j], req[i] })

		res := e.ResolveTalents(req)
		for _, x := range res.Talents {
			tx, _ := e.index.Talent(x)
			for _, y := range res.Talents {
				if x == y {
					continue
				}
				assert.False(t, tx.Excludes(y), "seed %d: %s excludes %s in %v", seed, x, y, res.Talents)
			}
		}
	}
}

func TestApplyTalents_CapAndRefire(t *testing.T) {
	b := talentBundle(config.Talent{
		ID:          "grit",
		Condition:   "tech<3",
		MaxTriggers: config.Triggers(2),
		Effects:     &config.Effects{Stats: map[string]int{"tech": 1}},
	})
	e := New(b, func() float64 { return 0 })
	e.Start(StartOptions{Talents: []string{"grit"}})

	fired := 0
	for i := 0; i < 5; i++ {
		fired += countType(e.Next().Entries, EntryTalent)
	}
	assert.Equal(t, 2, fired)
	assert.Equal(t, 2, e.State().Stats["tech"])
	assert.Equal(t, 2, e.State().TalentTriggers["grit"])
}

func TestApplyTalents_ScheduledTalentFires(t *testing.T) {
	b := talentBundle(config.Talent{ID: "late_bloomer", Name: "Late bloomer"})
	b.Age[2].Talents = []string{"late_bloomer"}
	e := New(b, func() float64 { return 0 })
	e.Start(StartOptions{})

	e.Next()
	e.Next()
	res := e.Next()
	require.Equal(t, 2, res.Age)
	assert.Equal(t, 1, countType(res.Entries, EntryTalent))
	assert.NotContains(t, e.State().Talents, "late_bloomer")
}
