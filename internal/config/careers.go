package config

type Careers struct {
	Tracks []CareerTrack `yaml:"tracks" json:"tracks"`
	Nodes  []CareerNode  `yaml:"nodes" json:"nodes"`
}

type CareerTrack struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Color       string `yaml:"color" json:"color"`
}

type CareerNode struct {
	ID       string       `yaml:"id" json:"id"`
	TrackID  string       `yaml:"track_id" json:"track_id"`
	Tier     int          `yaml:"tier" json:"tier"`
	Title    string       `yaml:"title" json:"title"`
	Requires *Requirement `yaml:"requires" json:"requires,omitempty"`
	Effects  *Effects     `yaml:"effects" json:"effects,omitempty"`
}

type Requirement struct {
	AgeMin       int            `yaml:"age_min" json:"age_min,omitempty"`
	Stats        map[string]int `yaml:"stats" json:"stats,omitempty"`
	Flags        []string       `yaml:"flags" json:"flags,omitempty"`
	Achievements []string       `yaml:"achievements" json:"achievements,omitempty"`
}
