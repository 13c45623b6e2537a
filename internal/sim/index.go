package sim

import "lifesim/internal/config"

// Index holds id lookups over a bundle. It is built once per engine and never
// mutated afterwards.
type Index struct {
	stats   map[string]config.StatDef
	events  map[string]*config.Event
	talents map[string]*config.Talent
	ages    map[int]*config.AgeEntry
	endings map[string]*config.Ending

	// talentOrder keeps authoring order for grade-bucket expansion.
	talentOrder []*config.Talent
	ageEnd      int
}

func NewIndex(b *config.Bundle) *Index {
	ix := &Index{
		stats:   make(map[string]config.StatDef, len(b.Config.Stats)),
		events:  make(map[string]*config.Event, len(b.Events)),
		talents: make(map[string]*config.Talent, len(b.Talents)),
		ages:    make(map[int]*config.AgeEntry, len(b.Age)),
		endings: make(map[string]*config.Ending, len(b.Endings.List)),
		ageEnd:  b.Config.AgeEnd,
	}
	for _, s := range b.Config.Stats {
		ix.stats[s.ID] = s
	}
	for i := range b.Events {
		ix.events[b.Events[i].ID] = &b.Events[i]
	}
	for i := range b.Talents {
		t := &b.Talents[i]
		ix.talents[t.ID] = t
		ix.talentOrder = append(ix.talentOrder, t)
	}
	for i := range b.Age {
		ix.ages[b.Age[i].Age] = &b.Age[i]
	}
	for i := range b.Endings.List {
		ix.endings[b.Endings.List[i].ID] = &b.Endings.List[i]
	}
	return ix
}

func (ix *Index) Stat(id string) (config.StatDef, bool) {
	s, ok := ix.stats[id]
	return s, ok
}

func (ix *Index) Event(id string) (*config.Event, bool) {
	e, ok := ix.events[id]
	return e, ok
}

func (ix *Index) Talent(id string) (*config.Talent, bool) {
	t, ok := ix.talents[id]
	return t, ok
}

func (ix *Index) Ending(id string) (*config.Ending, bool) {
	e, ok := ix.endings[id]
	return e, ok
}

// Pool returns the schedule for age. Ages at or past the configured end age
// have no pool.
func (ix *Index) Pool(age int) (*config.AgeEntry, bool) {
	if age >= ix.ageEnd {
		return nil, false
	}
	a, ok := ix.ages[age]
	return a, ok
}
