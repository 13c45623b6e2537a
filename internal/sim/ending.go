package sim

import (
	"sort"

	"lifesim/internal/config"
)

// SelectEnding returns the highest-priority ending whose condition holds now.
// Equal priorities keep authoring order. With no match it falls back to the
// default ending, then to the first authored ending.
func (e *Engine) SelectEnding() config.Ending {
	list := e.bundle.Endings.List
	var matches []config.Ending
	for _, end := range list {
		if e.check(end.Condition) {
			matches = append(matches, end)
		}
	}
	if len(matches) > 0 {
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Priority > matches[j].Priority
		})
		return matches[0]
	}
	if def, ok := e.index.Ending(e.bundle.DefaultEndingID()); ok {
		return *def
	}
	if len(list) > 0 {
		return list[0]
	}
	return config.Ending{}
}
