package config

type GameConfig struct {
	Version         int       `yaml:"version" json:"version"`
	AgeStart        int       `yaml:"age_start" json:"age_start"`
	AgeEnd          int       `yaml:"age_end" json:"age_end"`
	InitialPoints   int       `yaml:"initial_points" json:"initial_points"`
	DefaultEndingID string    `yaml:"default_ending_id" json:"default_ending_id"`
	Stats           []StatDef `yaml:"stats" json:"stats"`
	// AllocatableStats limits which stats take starting points. Empty means
	// every stat.
	AllocatableStats []string `yaml:"allocatable_stats" json:"allocatable_stats,omitempty"`
}

type StatDef struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
	Min   int    `yaml:"min" json:"min"`
	Max   int    `yaml:"max" json:"max"`
	Base  int    `yaml:"base" json:"base"`
	Group string `yaml:"group" json:"group"`
}

// Clamp bounds v to [Min, Max].
func (s StatDef) Clamp(v int) int {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

type AgeConfig struct {
	Ages []AgeEntry `yaml:"ages"`
}

// AgeEntry is the content scheduled for one age.
type AgeEntry struct {
	Age     int          `yaml:"age" json:"age"`
	Events  []WeightedID `yaml:"events" json:"events"`
	Talents []string     `yaml:"talents" json:"talents"`
}

type WeightedID struct {
	ID     string  `yaml:"id" json:"id"`
	Weight float64 `yaml:"weight" json:"weight"`
}
