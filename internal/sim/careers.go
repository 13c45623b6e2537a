package sim

import "lifesim/internal/config"

// unlockCareers grants every career node whose requirements now hold. Nodes
// are visited in authoring order, so a node may unlock off a flag granted by
// an earlier node in the same pass. Unlocks are never revoked.
func (e *Engine) unlockCareers() []LogEntry {
	var entries []LogEntry
	for i := range e.bundle.Careers.Nodes {
		node := &e.bundle.Careers.Nodes[i]
		if e.state.CareerNodes.Has(node.ID) {
			continue
		}
		if !e.meets(node.Requires) {
			continue
		}
		e.state.CareerNodes.Add(node.ID)
		e.applyEffects(node.Effects)
		entries = append(entries, LogEntry{
			Age:   e.state.Age,
			Type:  EntryCareer,
			Title: node.Title,
			Text:  "Career node unlocked.",
			Grade: node.Tier,
		})
	}
	return entries
}

func (e *Engine) meets(req *config.Requirement) bool {
	if req == nil {
		return true
	}
	if req.AgeMin > 0 && e.state.Age < req.AgeMin {
		return false
	}
	for id, min := range req.Stats {
		// unknown stats count as zero
		if e.state.Stats[id] < min {
			return false
		}
	}
	for _, f := range req.Flags {
		if !e.state.Flags.Has(f) {
			return false
		}
	}
	for _, a := range req.Achievements {
		if !e.state.Achievements.Has(a) {
			return false
		}
	}
	return true
}
