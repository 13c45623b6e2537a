package config

type EventsConfig struct {
	Events []Event `yaml:"events"`
}

type Event struct {
	ID       string   `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Text     string   `yaml:"text" json:"text"`
	PostText string   `yaml:"post_text" json:"post_text,omitempty"`
	Grade    int      `yaml:"grade" json:"grade"`
	Include  string   `yaml:"include" json:"include,omitempty"`
	Exclude  string   `yaml:"exclude" json:"exclude,omitempty"`
	NoRandom bool     `yaml:"no_random" json:"no_random,omitempty"`
	Effects  *Effects `yaml:"effects" json:"effects,omitempty"`
	Branch   []Branch `yaml:"branch" json:"branch,omitempty"`
	Tags     []string `yaml:"tags" json:"tags,omitempty"`
}

// Branch continues an event chain into Next when Condition holds.
type Branch struct {
	Condition string `yaml:"condition" json:"condition"`
	Next      string `yaml:"next" json:"next"`
}

// Effects is shared by events, talents and career nodes.
type Effects struct {
	Stats       map[string]int `yaml:"stats" json:"stats,omitempty"`
	FlagsAdd    []string       `yaml:"flags_add" json:"flags_add,omitempty"`
	FlagsRemove []string       `yaml:"flags_remove" json:"flags_remove,omitempty"`
	TagsAdd     []string       `yaml:"tags_add" json:"tags_add,omitempty"`
	TagsRemove  []string       `yaml:"tags_remove" json:"tags_remove,omitempty"`
}
