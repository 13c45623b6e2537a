package sim

import "lifesim/internal/config"

func (e *Engine) applyEffects(ef *config.Effects) {
	if ef == nil {
		return
	}
	e.adjustStats(ef.Stats)
	for _, f := range ef.FlagsAdd {
		e.state.Flags.Add(f)
	}
	for _, f := range ef.FlagsRemove {
		e.state.Flags.Remove(f)
	}
	for _, t := range ef.TagsAdd {
		e.state.Tags.Add(t)
	}
	for _, t := range ef.TagsRemove {
		e.state.Tags.Remove(t)
	}
}

// adjustStats adds deltas to known stats, clamping each to its range.
// Unknown stat ids are ignored.
func (e *Engine) adjustStats(deltas map[string]int) {
	for id, d := range deltas {
		cur, ok := e.state.Stats[id]
		if !ok {
			continue
		}
		e.state.Stats[id] = e.clamp(id, cur+d)
	}
}

func (e *Engine) clamp(id string, v int) int {
	def, ok := e.index.Stat(id)
	if !ok {
		return v
	}
	return def.Clamp(v)
}

// applyAgingDecay wears health down from 60 on, harder at 80 and 100.
func (e *Engine) applyAgingDecay(age int) {
	if age < 60 {
		return
	}
	decay := 1
	if age >= 80 {
		decay = 3
	}
	if age >= 100 {
		decay = 5
	}
	e.adjustStats(map[string]int{statHealth: -decay, statHappiness: -1})
}
