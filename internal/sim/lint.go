package sim

import (
	"fmt"
	"sort"

	"lifesim/internal/condition"
	"lifesim/internal/config"
)

// Lint reports authoring mistakes the engine would silently skip: conditions
// that never parse and references to ids that do not exist. A clean bundle
// returns nil.
func Lint(b *config.Bundle) []string {
	ix := NewIndex(b)
	var out []string
	warn := func(format string, args ...any) {
		out = append(out, fmt.Sprintf(format, args...))
	}
	cond := func(where, src string) {
		if src == "" {
			return
		}
		for _, p := range condition.Problems(condition.Parse(src)) {
			warn("%s: condition %s", where, p)
		}
	}

	for _, a := range b.Age {
		for _, ev := range a.Events {
			if _, ok := ix.Event(ev.ID); !ok {
				warn("age %d: unknown event %q", a.Age, ev.ID)
			}
		}
		for _, id := range a.Talents {
			if _, ok := ix.Talent(id); !ok {
				warn("age %d: unknown talent %q", a.Age, id)
			}
		}
	}
	for _, ev := range b.Events {
		where := "event " + ev.ID
		cond(where+" include", ev.Include)
		cond(where+" exclude", ev.Exclude)
		for i, br := range ev.Branch {
			cond(fmt.Sprintf("%s branch %d", where, i), br.Condition)
			if _, ok := ix.Event(br.Next); !ok {
				warn("%s branch %d: unknown event %q", where, i, br.Next)
			}
		}
		lintStats(ix, where, effectStats(ev.Effects), warn)
	}
	for _, t := range b.Talents {
		where := "talent " + t.ID
		cond(where, t.Condition)
		for _, id := range t.Exclude {
			if _, ok := ix.Talent(id); !ok {
				warn("%s: excludes unknown talent %q", where, id)
			}
		}
		if t.Replacement != nil {
			for _, c := range t.Replacement.Common {
				if _, ok := ix.Talent(c.ID); !ok {
					warn("%s: replacement to unknown talent %q", where, c.ID)
				}
			}
			for _, tok := range t.Replacement.Talent {
				if id, _ := tok.Split(); !hasTalent(ix, id) {
					warn("%s: replacement to unknown talent %q", where, id)
				}
			}
		}
		lintStats(ix, where, effectStats(t.Effects), warn)
	}
	for _, a := range b.Achievements {
		cond("achievement "+a.ID, a.Condition)
	}
	tracks := map[string]bool{}
	for _, tr := range b.Careers.Tracks {
		tracks[tr.ID] = true
	}
	achv := map[string]bool{}
	for _, a := range b.Achievements {
		achv[a.ID] = true
	}
	for _, n := range b.Careers.Nodes {
		where := "career " + n.ID
		if n.TrackID != "" && !tracks[n.TrackID] {
			warn("%s: unknown track %q", where, n.TrackID)
		}
		if n.Requires != nil {
			lintStats(ix, where+" requires", n.Requires.Stats, warn)
			for _, id := range n.Requires.Achievements {
				if !achv[id] {
					warn("%s: requires unknown achievement %q", where, id)
				}
			}
		}
		lintStats(ix, where, effectStats(n.Effects), warn)
	}
	for _, end := range b.Endings.List {
		cond("ending "+end.ID, end.Condition)
	}
	if id := b.DefaultEndingID(); id != "" {
		if _, ok := ix.Ending(id); !ok {
			warn("default ending %q not found", id)
		}
	}
	return out
}

func hasTalent(ix *Index, id string) bool {
	_, ok := ix.Talent(id)
	return ok
}

func effectStats(ef *config.Effects) map[string]int {
	if ef == nil {
		return nil
	}
	return ef.Stats
}

// lintStats reports unknown stat keys in sorted order so output is stable.
func lintStats(ix *Index, where string, stats map[string]int, warn func(string, ...any)) {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := ix.Stat(k); !ok {
			warn("%s: unknown stat %q", where, k)
		}
	}
}
