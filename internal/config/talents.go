package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type TalentsConfig struct {
	Talents []Talent `yaml:"talents"`
}

type Talent struct {
	ID          string       `yaml:"id" json:"id"`
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description" json:"description"`
	Grade       int          `yaml:"grade" json:"grade"`
	Condition   string       `yaml:"condition" json:"condition,omitempty"`
	MaxTriggers *int         `yaml:"max_triggers" json:"max_triggers,omitempty"`
	Effects     *Effects     `yaml:"effects" json:"effects,omitempty"`
	Status      int          `yaml:"status" json:"status,omitempty"`
	Exclude     []string     `yaml:"exclude" json:"exclude,omitempty"`
	Replacement *Replacement `yaml:"replacement" json:"replacement,omitempty"`
	Exclusive   bool         `yaml:"exclusive" json:"exclusive,omitempty"`
}

// TriggerCap is MaxTriggers with the default of 1 applied when the field is
// absent. An authored 0 means the talent never fires.
func (t Talent) TriggerCap() int {
	if t.MaxTriggers == nil {
		return 1
	}
	return *t.MaxTriggers
}

// Triggers returns a MaxTriggers value for n.
func Triggers(n int) *int { return &n }

// Excludes reports whether id is on this talent's exclude list.
func (t Talent) Excludes(id string) bool {
	for _, x := range t.Exclude {
		if x == id {
			return true
		}
	}
	return false
}

// Replacement lists the pools a talent may convert into at run start.
type Replacement struct {
	Common []WeightedID `yaml:"common" json:"common,omitempty"`
	Talent []Token      `yaml:"talent" json:"talent,omitempty"`
	Grade  []Token      `yaml:"grade" json:"grade,omitempty"`
}

// Token is a "key" or "key*weight" entry. Authors may write plain numbers for
// grade tokens, so any scalar is accepted.
type Token string

func (t *Token) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: replacement token must be a scalar", n.Line)
	}
	*t = Token(n.Value)
	return nil
}

// Split returns the key and weight, defaulting the weight to 1 when missing
// or unparsable.
func (t Token) Split() (string, float64) {
	key, raw, found := strings.Cut(string(t), "*")
	key = strings.TrimSpace(key)
	if !found {
		return key, 1
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return key, 1
	}
	return key, w
}
