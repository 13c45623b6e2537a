package config

type Endings struct {
	DefaultEndingID string   `yaml:"default_ending_id" json:"default_ending_id"`
	List            []Ending `yaml:"list" json:"list"`
}

type Ending struct {
	ID        string   `yaml:"id" json:"id"`
	Title     string   `yaml:"title" json:"title"`
	Summary   string   `yaml:"summary" json:"summary"`
	Grade     int      `yaml:"grade" json:"grade"`
	Priority  int      `yaml:"priority" json:"priority"`
	Condition string   `yaml:"condition" json:"condition"`
	Category  string   `yaml:"category" json:"category,omitempty"`
	Tags      []string `yaml:"tags" json:"tags,omitempty"`
}

var endingCategories = map[string]bool{
	"career": true,
	"family": true,
	"risk":   true,
	"honor":  true,
	"fate":   true,
}
