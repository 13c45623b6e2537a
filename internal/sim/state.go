package sim

import "lifesim/internal/condition"

type EntryType string

const (
	EntryTalent      EntryType = "TLT"
	EntryEvent       EntryType = "EVT"
	EntryAchievement EntryType = "ACHV"
	EntryCareer      EntryType = "CAREER"
	EntrySystem      EntryType = "SYSTEM"
)

type LogEntry struct {
	Age   int       `json:"age"`
	Type  EntryType `json:"type"`
	Title string    `json:"title"`
	Text  string    `json:"text"`
	Grade int       `json:"grade"`
}

// State is the single mutable aggregate of a run. The engine mutates it in
// place; hosts that keep a copy must use Clone.
type State struct {
	Age            int            `json:"age"`
	Stats          map[string]int `json:"stats"`
	Flags          Set            `json:"flags"`
	Tags           Set            `json:"tags"`
	Talents        []string       `json:"talents"`
	TalentTriggers map[string]int `json:"talent_triggers"`
	Achievements   Set            `json:"achievements"`
	CareerNodes    Set            `json:"career_nodes"`
	SeenEvents     Set            `json:"seen_events"`
	Log            []LogEntry     `json:"log"`
	Ended          bool           `json:"ended"`
}

// Clone returns a deep copy; no container is shared with s.
func (s *State) Clone() *State {
	c := &State{
		Age:            s.Age,
		Stats:          make(map[string]int, len(s.Stats)),
		Flags:          s.Flags.Clone(),
		Tags:           s.Tags.Clone(),
		Talents:        append([]string(nil), s.Talents...),
		TalentTriggers: make(map[string]int, len(s.TalentTriggers)),
		Achievements:   s.Achievements.Clone(),
		CareerNodes:    s.CareerNodes.Clone(),
		SeenEvents:     s.SeenEvents.Clone(),
		Log:            append([]LogEntry(nil), s.Log...),
		Ended:          s.Ended,
	}
	for k, v := range s.Stats {
		c.Stats[k] = v
	}
	for k, v := range s.TalentTriggers {
		c.TalentTriggers[k] = v
	}
	return c
}

func (s *State) CurrentAge() int { return s.Age }

func (s *State) StatValue(id string) (int, bool) {
	v, ok := s.Stats[id]
	return v, ok
}

func (s *State) Contains(set condition.Set, value string) bool {
	switch set {
	case condition.SetFlag:
		return s.Flags.Has(value)
	case condition.SetTag:
		return s.Tags.Has(value)
	case condition.SetAchievement:
		return s.Achievements.Has(value)
	case condition.SetEvent:
		return s.SeenEvents.Has(value)
	case condition.SetTalent:
		for _, t := range s.Talents {
			if t == value {
				return true
			}
		}
	}
	return false
}
