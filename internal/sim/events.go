package sim

import "lifesim/internal/config"

// pickEvent filters a year's candidates and draws one by weight.
func (e *Engine) pickEvent(candidates []config.WeightedID) (config.WeightedID, bool) {
	var pool []Weighted[config.WeightedID]
	for _, c := range candidates {
		ev, ok := e.index.Event(c.ID)
		if !ok || ev.NoRandom {
			continue
		}
		if ev.Include != "" && !e.check(ev.Include) {
			continue
		}
		if ev.Exclude != "" && e.check(ev.Exclude) {
			continue
		}
		pool = append(pool, Weighted[config.WeightedID]{Item: c, Weight: c.Weight})
	}
	if len(pool) == 0 {
		return config.WeightedID{}, false
	}
	return WeightedRandom(pool, e.rng), true
}

// applyEventChain runs id and then follows the first matching branch of each
// event. Branch conditions see the state after the event's own effects. A
// revisit inside one chain stops it with a system entry.
func (e *Engine) applyEventChain(id string) []LogEntry {
	var entries []LogEntry
	visited := map[string]bool{}
	for id != "" {
		ev, ok := e.index.Event(id)
		if !ok {
			break
		}
		if visited[id] {
			entries = append(entries, LogEntry{
				Age:   e.state.Age,
				Type:  EntrySystem,
				Title: "Event loop",
				Text:  "The event chain looped back on itself and was stopped.",
			})
			break
		}
		visited[id] = true
		e.state.SeenEvents.Add(id)
		e.applyEffects(ev.Effects)
		entries = append(entries, LogEntry{
			Age:   e.state.Age,
			Type:  EntryEvent,
			Title: ev.Title,
			Text:  ev.Text,
			Grade: ev.Grade,
		})

		id = ""
		for _, br := range ev.Branch {
			if e.check(br.Condition) {
				id = br.Next
				break
			}
		}
	}
	return entries
}
