package sim

import "lifesim/internal/config"

// testBundle is a small life: ages 0..9, three stats and a few plain events.
func testBundle() *config.Bundle {
	b := &config.Bundle{
		Config: config.GameConfig{
			AgeStart:        0,
			AgeEnd:          10,
			InitialPoints:   10,
			DefaultEndingID: "ordinary",
			Stats: []config.StatDef{
				{ID: "health", Min: 0, Max: 10, Base: 10},
				{ID: "happiness", Min: 0, Max: 10, Base: 5},
				{ID: "tech", Min: 0, Max: 20, Base: 0},
			},
		},
		Events: []config.Event{
			{ID: "quiet_day", Title: "A quiet day"},
		},
		Endings: config.Endings{
			List: []config.Ending{
				{ID: "ordinary", Title: "An ordinary life"},
			},
		},
	}
	for age := 0; age < 10; age++ {
		b.Age = append(b.Age, config.AgeEntry{
			Age:    age,
			Events: []config.WeightedID{{ID: "quiet_day", Weight: 1}},
		})
	}
	return b
}

func countType(entries []LogEntry, typ EntryType) int {
	n := 0
	for _, e := range entries {
		if e.Type == typ {
			n++
		}
	}
	return n
}
