package sim

import "lifesim/internal/config"

func (e *Engine) evaluateAchievements(op config.Opportunity) []LogEntry {
	var entries []LogEntry
	for i := range e.bundle.Achievements {
		a := &e.bundle.Achievements[i]
		if a.Opportunity != op || e.state.Achievements.Has(a.ID) {
			continue
		}
		if !e.check(a.Condition) {
			continue
		}
		e.state.Achievements.Add(a.ID)
		entries = append(entries, LogEntry{
			Age:   e.state.Age,
			Type:  EntryAchievement,
			Title: a.Name,
			Text:  a.Description,
			Grade: a.Grade,
		})
	}
	return entries
}
