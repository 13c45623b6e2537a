package sim

import (
	"math/rand"

	"lifesim/internal/condition"
	"lifesim/internal/config"
)

const (
	statHealth    = "health"
	statHappiness = "happiness"
)

type Phase int

const (
	NotStarted Phase = iota
	Active
	Ended
)

func (p Phase) String() string {
	switch p {
	case Active:
		return "active"
	case Ended:
		return "ended"
	}
	return "not_started"
}

type StartOptions struct {
	Allocations map[string]int
	Talents     []string
	PointBonus  int
}

type YearResult struct {
	Age     int        `json:"age"`
	Entries []LogEntry `json:"entries"`
	Ended   bool       `json:"ended"`
}

type Summary struct {
	Ending       config.Ending  `json:"ending"`
	Stats        map[string]int `json:"stats"`
	Achievements []string       `json:"achievements"`
	CareerNodes  []string       `json:"career_nodes"`
	TotalYears   int            `json:"total_years"`
	Log          []LogEntry     `json:"log,omitempty"`
}

// Engine runs one life at a time over an immutable bundle. It is not safe for
// concurrent use; run one engine per goroutine instead.
type Engine struct {
	bundle *config.Bundle
	index  *Index
	conds  *condition.Cache
	rng    func() float64

	state   *State
	started bool
}

// New builds an engine over b. A nil rng falls back to math/rand.
func New(b *config.Bundle, rng func() float64) *Engine {
	if rng == nil {
		rng = rand.Float64
	}
	e := &Engine{
		bundle: b,
		index:  NewIndex(b),
		conds:  condition.NewCache(),
		rng:    rng,
	}
	e.state = e.baseline()
	return e
}

func (e *Engine) baseline() *State {
	s := &State{
		Age:            e.bundle.Config.AgeStart - 1,
		Stats:          make(map[string]int, len(e.bundle.Config.Stats)),
		Flags:          NewSet(),
		Tags:           NewSet(),
		TalentTriggers: map[string]int{},
		Achievements:   NewSet(),
		CareerNodes:    NewSet(),
		SeenEvents:     NewSet(),
	}
	for _, def := range e.bundle.Config.Stats {
		s.Stats[def.ID] = def.Clamp(def.Base)
	}
	return s
}

// Start resets the run. It may be called again at any time to restart.
func (e *Engine) Start(opts StartOptions) *State {
	e.state = e.baseline()
	e.started = true

	res := e.ResolveTalents(opts.Talents)
	e.state.Talents = res.Talents
	for _, r := range res.Replacements {
		e.state.Log = append(e.state.Log, e.replacementEntry(r))
	}

	e.allocate(opts.Allocations, e.bundle.Config.InitialPoints+opts.PointBonus)
	e.state.Log = append(e.state.Log, e.evaluateAchievements(config.OpportunityStart)...)
	return e.state
}

// allocate applies the whole request or nothing.
func (e *Engine) allocate(alloc map[string]int, budget int) bool {
	sum := 0
	for _, v := range alloc {
		sum += v
	}
	if sum > budget {
		return false
	}
	e.adjustStats(alloc)
	return true
}

// Next advances the run by one year. Once the run has ended it returns the
// current age with no entries.
func (e *Engine) Next() YearResult {
	if e.state.Ended {
		return YearResult{Age: e.state.Age, Ended: true}
	}
	e.started = true
	e.state.Age++
	age := e.state.Age

	pool, ok := e.index.Pool(age)
	if !ok || len(pool.Events) == 0 {
		return e.finish(nil)
	}

	var entries []LogEntry
	entries = append(entries, e.applyTalents(union(e.state.Talents, pool.Talents))...)

	pick, ok := e.pickEvent(pool.Events)
	if !ok {
		return e.finish(entries)
	}
	entries = append(entries, e.applyEventChain(pick.ID)...)
	entries = append(entries, e.unlockCareers()...)
	entries = append(entries, e.evaluateAchievements(config.OpportunityTrajectory)...)

	e.applyAgingDecay(age)
	if hp, ok := e.state.Stats[statHealth]; ok && hp <= 0 {
		e.state.Ended = true
		entries = append(entries, e.evaluateAchievements(config.OpportunitySummary)...)
		entries = append(entries, e.evaluateAchievements(config.OpportunityEnd)...)
	}

	e.state.Log = append(e.state.Log, entries...)
	return YearResult{Age: age, Entries: entries, Ended: e.state.Ended}
}

// finish ends the run quietly when a year has no content left.
func (e *Engine) finish(entries []LogEntry) YearResult {
	entries = append(entries, LogEntry{
		Age:   e.state.Age,
		Type:  EntrySystem,
		Title: "A quiet ending",
		Text:  "Nothing else happened. Life drew to a quiet close.",
	})
	e.state.Ended = true
	entries = append(entries, e.evaluateAchievements(config.OpportunitySummary)...)
	entries = append(entries, e.evaluateAchievements(config.OpportunityEnd)...)
	e.state.Log = append(e.state.Log, entries...)
	return YearResult{Age: e.state.Age, Entries: entries, Ended: true}
}

// Summary reports the run as if it ended now. The log is left out; callers
// that persist runs attach it themselves.
func (e *Engine) Summary() Summary {
	stats := make(map[string]int, len(e.state.Stats))
	for k, v := range e.state.Stats {
		stats[k] = v
	}
	years := e.state.Age - e.bundle.Config.AgeStart
	if years < 0 {
		years = 0
	}
	return Summary{
		Ending:       e.SelectEnding(),
		Stats:        stats,
		Achievements: e.state.Achievements.Items(),
		CareerNodes:  e.state.CareerNodes.Items(),
		TotalYears:   years,
	}
}

// State returns the live state. It changes on every Next; use Snapshot to
// keep a copy.
func (e *Engine) State() *State { return e.state }

func (e *Engine) Snapshot() *State { return e.state.Clone() }

func (e *Engine) Phase() Phase {
	switch {
	case e.state.Ended:
		return Ended
	case e.started:
		return Active
	}
	return NotStarted
}

func (e *Engine) Bundle() *config.Bundle { return e.bundle }

func (e *Engine) check(src string) bool {
	return e.conds.Check(e.state, src)
}
