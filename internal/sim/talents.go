package sim

import (
	"fmt"
	"strconv"
)

const maxReplacementDepth = 4

// Replacement records a talent that was converted at run start.
type Replacement struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type Resolution struct {
	Talents      []string      `json:"talents"`
	Replacements []Replacement `json:"replacements,omitempty"`
}

// ResolveTalents filters a requested talent list and runs replacement
// chains. Unknown ids and ids that conflict with an earlier accepted id are
// dropped. The result never holds two ids that exclude each other.
func (e *Engine) ResolveTalents(ids []string) Resolution {
	seen := map[string]bool{}
	var selected []string
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := e.index.Talent(id); !ok {
			continue
		}
		if e.talentConflict(id, selected) {
			continue
		}
		selected = append(selected, id)
	}

	res := Resolution{Talents: append([]string(nil), selected...)}
	for _, id := range selected {
		target := e.resolveReplacement(id, res.Talents)
		if target == id || contains(res.Talents, target) {
			continue
		}
		res.Talents = append(res.Talents, target)
		res.Replacements = append(res.Replacements, Replacement{Source: id, Target: target})
	}
	return res
}

// resolveReplacement follows replacement pools from id. Pools may be cyclic,
// so the walk stops after maxReplacementDepth hops regardless.
func (e *Engine) resolveReplacement(id string, current []string) string {
	working := append([]string(nil), current...)
	for depth := 0; depth < maxReplacementDepth; depth++ {
		pool := e.replacementPool(id, working)
		if len(pool) == 0 {
			return id
		}
		next := WeightedRandom(pool, e.rng)
		if next == id {
			return id
		}
		working = append(working, next)
		id = next
	}
	return id
}

func (e *Engine) replacementPool(id string, current []string) []Weighted[string] {
	t, ok := e.index.Talent(id)
	if !ok || t.Replacement == nil {
		return nil
	}
	var pool []Weighted[string]
	for _, c := range t.Replacement.Common {
		if e.talentConflict(c.ID, current) {
			continue
		}
		pool = append(pool, Weighted[string]{Item: c.ID, Weight: c.Weight})
	}
	for _, tok := range t.Replacement.Talent {
		key, w := tok.Split()
		if e.talentConflict(key, current) {
			continue
		}
		pool = append(pool, Weighted[string]{Item: key, Weight: w})
	}
	for _, tok := range t.Replacement.Grade {
		key, w := tok.Split()
		grade, err := strconv.ParseFloat(key, 64)
		if err != nil {
			continue
		}
		for _, cand := range e.index.talentOrder {
			if cand.Exclusive || float64(cand.Grade) != grade {
				continue
			}
			if e.talentConflict(cand.ID, current) {
				continue
			}
			pool = append(pool, Weighted[string]{Item: cand.ID, Weight: w})
		}
	}
	return pool
}

// talentConflict reports whether candidate is unknown, already present, or
// excluded by (or excludes) anything in current.
func (e *Engine) talentConflict(candidate string, current []string) bool {
	c, ok := e.index.Talent(candidate)
	if !ok {
		return true
	}
	for _, id := range current {
		if id == candidate || c.Excludes(id) {
			return true
		}
		if other, ok := e.index.Talent(id); ok && other.Excludes(candidate) {
			return true
		}
	}
	return false
}

// applyTalents fires every talent in ids whose condition holds and whose
// trigger count is still below its cap.
func (e *Engine) applyTalents(ids []string) []LogEntry {
	var entries []LogEntry
	for _, id := range ids {
		t, ok := e.index.Talent(id)
		if !ok {
			continue
		}
		if !e.check(t.Condition) {
			continue
		}
		n := e.state.TalentTriggers[id]
		if n >= t.TriggerCap() {
			continue
		}
		e.state.TalentTriggers[id] = n + 1
		e.applyEffects(t.Effects)
		entries = append(entries, LogEntry{
			Age:   e.state.Age,
			Type:  EntryTalent,
			Title: t.Name,
			Text:  t.Description,
			Grade: t.Grade,
		})
	}
	return entries
}

func (e *Engine) replacementEntry(r Replacement) LogEntry {
	return LogEntry{
		Age:   e.bundle.Config.AgeStart,
		Type:  EntrySystem,
		Title: "Talent replaced",
		Text:  fmt.Sprintf("%q was replaced by %q.", e.talentName(r.Source), e.talentName(r.Target)),
	}
}

func (e *Engine) talentName(id string) string {
	if t, ok := e.index.Talent(id); ok && t.Name != "" {
		return t.Name
	}
	return id
}

func contains(list []string, v string) bool {
	for _, it := range list {
		if it == v {
			return true
		}
	}
	return false
}

// union keeps first-seen order.
func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, id := range list {
			if seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
