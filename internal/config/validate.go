package config

import (
	"errors"
	"fmt"
)

var (
	ErrMissingID   = errors.New("missing id")
	ErrDuplicateID = errors.New("duplicate id")
)

// Validate checks the structural rules the engine relies on. It reports every
// problem found, joined, rather than stopping at the first.
func (b *Bundle) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	gc := b.Config
	if gc.AgeEnd < gc.AgeStart {
		add("config: age_end %d is before age_start %d", gc.AgeEnd, gc.AgeStart)
	}
	if gc.InitialPoints < 0 {
		add("config: initial_points must be non-negative, got %d", gc.InitialPoints)
	}
	if len(gc.Stats) == 0 {
		add("config: at least one stat is required")
	}
	stats := newIDSet("stat", &errs)
	for _, s := range gc.Stats {
		stats.add(s.ID)
		if s.Min > s.Max {
			add("stat %q: min %d is above max %d", s.ID, s.Min, s.Max)
			continue
		}
		if s.Base < s.Min || s.Base > s.Max {
			add("stat %q: base %d outside [%d,%d]", s.ID, s.Base, s.Min, s.Max)
		}
	}

	for _, id := range gc.AllocatableStats {
		if _, ok := b.Stat(id); !ok {
			add("config: allocatable stat %q is not defined", id)
		}
	}

	ages := map[int]bool{}
	for _, a := range b.Age {
		if ages[a.Age] {
			add("age %d: scheduled twice", a.Age)
		}
		ages[a.Age] = true
		for _, e := range a.Events {
			if e.ID == "" {
				add("age %d: event entry: %w", a.Age, ErrMissingID)
			}
			if e.Weight < 0 {
				add("age %d: event %q has negative weight %v", a.Age, e.ID, e.Weight)
			}
		}
	}

	events := newIDSet("event", &errs)
	for _, e := range b.Events {
		events.add(e.ID)
		for i, br := range e.Branch {
			if br.Next == "" {
				add("event %q: branch %d has no next event", e.ID, i)
			}
		}
	}

	talents := newIDSet("talent", &errs)
	for _, t := range b.Talents {
		talents.add(t.ID)
		if t.MaxTriggers != nil && *t.MaxTriggers < 0 {
			add("talent %q: max_triggers must be non-negative", t.ID)
		}
		if t.Replacement != nil {
			for _, c := range t.Replacement.Common {
				if c.Weight < 0 {
					add("talent %q: replacement %q has negative weight", t.ID, c.ID)
				}
			}
		}
	}

	achvs := newIDSet("achievement", &errs)
	for _, a := range b.Achievements {
		achvs.add(a.ID)
		if !a.Opportunity.Valid() {
			add("achievement %q: unknown opportunity %q", a.ID, a.Opportunity)
		}
	}

	tracks := newIDSet("career track", &errs)
	for _, t := range b.Careers.Tracks {
		tracks.add(t.ID)
	}
	nodes := newIDSet("career node", &errs)
	for _, n := range b.Careers.Nodes {
		nodes.add(n.ID)
	}

	endings := newIDSet("ending", &errs)
	for _, e := range b.Endings.List {
		endings.add(e.ID)
		if e.Category != "" && !endingCategories[e.Category] {
			add("ending %q: unknown category %q", e.ID, e.Category)
		}
	}
	if len(b.Endings.List) == 0 {
		add("endings: at least one ending is required")
	}

	return errors.Join(errs...)
}

type idSet struct {
	kind string
	seen map[string]bool
	errs *[]error
}

func newIDSet(kind string, errs *[]error) *idSet {
	return &idSet{kind: kind, seen: map[string]bool{}, errs: errs}
}

func (s *idSet) add(id string) {
	if id == "" {
		*s.errs = append(*s.errs, fmt.Errorf("%s: %w", s.kind, ErrMissingID))
		return
	}
	if s.seen[id] {
		*s.errs = append(*s.errs, fmt.Errorf("%s %q: %w", s.kind, id, ErrDuplicateID))
		return
	}
	s.seen[id] = true
}
