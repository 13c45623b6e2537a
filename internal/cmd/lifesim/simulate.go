package lifesim

import (
	"context"

	"lifesim/internal/config"
	"lifesim/internal/draft"
	"lifesim/internal/sim"
	"lifesim/internal/util"
)

// runResult is what a single run writes out.
type runResult struct {
	RecordID    string         `json:"record_id,omitempty"`
	Seed        int64          `json:"seed"`
	Talents     []string       `json:"talents"`
	Allocations map[string]int `json:"allocations"`
	PointBonus  int            `json:"point_bonus"`
	Age         int            `json:"age"`
	Finished    bool           `json:"finished"`
	Summary     sim.Summary    `json:"summary"`
}

// simulate plays one life from seed. Empty talents are drafted. onYear may
// be nil.
func simulate(ctx context.Context, b *config.Bundle, seed int64, talents []string, maxYears int, onYear func(sim.YearResult)) (runResult, error) {
	rng := util.Uniform(seed)
	if len(talents) == 0 {
		talents = draft.Pick(draft.Draw(b.Talents, rng, draft.DrawCount), draft.SelectLimit)
	}
	bonus := draft.PointBonus(b, talents)
	alloc := draft.Allocate(b, b.AllocatableStats(), b.Config.InitialPoints+bonus, rng)

	e := sim.New(b, rng)
	st := e.Start(sim.StartOptions{Allocations: alloc, Talents: talents, PointBonus: bonus})
	for years := 0; years < maxYears && !st.Ended; years++ {
		if err := ctx.Err(); err != nil {
			return runResult{}, err
		}
		res := e.Next()
		if onYear != nil {
			onYear(res)
		}
	}

	sum := e.Summary()
	sum.Log = e.Snapshot().Log
	return runResult{
		Seed:        seed,
		Talents:     st.Talents,
		Allocations: alloc,
		PointBonus:  bonus,
		Age:         st.Age,
		Finished:    st.Ended,
		Summary:     sum,
	}, nil
}
