package config

// Bundle is the full authored content set. It is read-only once loaded.
type Bundle struct {
	Config       GameConfig
	Age          []AgeEntry
	Events       []Event
	Talents      []Talent
	Achievements []Achievement
	Careers      Careers
	Endings      Endings
}

// DefaultEndingID prefers the endings file and falls back to config.yaml.
func (b *Bundle) DefaultEndingID() string {
	if b.Endings.DefaultEndingID != "" {
		return b.Endings.DefaultEndingID
	}
	return b.Config.DefaultEndingID
}

// Stat returns the definition for id.
func (b *Bundle) Stat(id string) (StatDef, bool) {
	for _, s := range b.Config.Stats {
		if s.ID == id {
			return s, true
		}
	}
	return StatDef{}, false
}

// AllocatableStats returns the stat ids that take starting points.
func (b *Bundle) AllocatableStats() []string {
	if len(b.Config.AllocatableStats) > 0 {
		return append([]string(nil), b.Config.AllocatableStats...)
	}
	ids := make([]string, len(b.Config.Stats))
	for i, s := range b.Config.Stats {
		ids[i] = s.ID
	}
	return ids
}
