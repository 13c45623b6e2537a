package condition

import (
	"strconv"
	"strings"
)

// Set names a membership collection on the evaluated state.
type Set string

const (
	SetFlag        Set = "FLAG"
	SetTag         Set = "TAG"
	SetAchievement Set = "ACHV"
	SetTalent      Set = "TLT"
	SetEvent       Set = "EVT"
)

const keyAge = "AGE"

// State is the read-only view a condition is evaluated against.
type State interface {
	CurrentAge() int
	StatValue(id string) (int, bool)
	Contains(set Set, value string) bool
}

type Expr interface {
	Eval(s State) bool
	String() string
}

type Op string

const (
	OpGE Op = ">="
	OpLE Op = "<="
	OpNE Op = "!="
	OpEQ Op = "="
	OpGT Op = ">"
	OpLT Op = "<"
)

// Compare is KEY OP NUMBER.
type Compare struct {
	Key   string
	Op    Op
	Value float64
}

func (c Compare) Eval(s State) bool {
	var current float64
	if c.Key == keyAge {
		current = float64(s.CurrentAge())
	} else {
		v, ok := s.StatValue(c.Key)
		if !ok {
			return false
		}
		current = float64(v)
	}
	switch c.Op {
	case OpGE:
		return current >= c.Value
	case OpLE:
		return current <= c.Value
	case OpGT:
		return current > c.Value
	case OpLT:
		return current < c.Value
	case OpEQ:
		return current == c.Value
	case OpNE:
		return current != c.Value
	}
	return false
}

func (c Compare) String() string {
	return c.Key + string(c.Op) + strconv.FormatFloat(c.Value, 'f', -1, 64)
}

// Membership is KEY?[values] or KEY![values]. Key is AGE or one of the Set
// names.
type Membership struct {
	Key    string
	Negate bool
	Values []string
}

func (m Membership) Eval(s State) bool {
	matched := false
	for _, v := range m.Values {
		if m.Key == keyAge {
			n, err := strconv.ParseFloat(v, 64)
			if err == nil && n == float64(s.CurrentAge()) {
				matched = true
				break
			}
			continue
		}
		if s.Contains(Set(m.Key), v) {
			matched = true
			break
		}
	}
	if m.Negate {
		return !matched
	}
	return matched
}

func (m Membership) String() string {
	op := "?"
	if m.Negate {
		op = "!"
	}
	return m.Key + op + "[" + strings.Join(m.Values, ",") + "]"
}

type Logic byte

const (
	And Logic = '&'
	Or  Logic = '|'
)

// Group folds Terms left to right; Ops[i] joins Terms[i] and Terms[i+1].
// An empty group is true.
type Group struct {
	Terms []Expr
	Ops   []Logic
}

func (g Group) Eval(s State) bool {
	if len(g.Terms) == 0 {
		return true
	}
	result := g.Terms[0].Eval(s)
	for i, op := range g.Ops {
		next := g.Terms[i+1]
		switch op {
		case And:
			result = result && next.Eval(s)
		case Or:
			result = result || next.Eval(s)
		default:
			return false
		}
	}
	return result
}

func (g Group) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range g.Terms {
		if i > 0 {
			b.WriteByte(' ')
			b.WriteByte(byte(g.Ops[i-1]))
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Invalid stands in for anything that failed to parse. It is always false.
type Invalid struct {
	Text   string
	Reason string
}

func (Invalid) Eval(State) bool { return false }

func (i Invalid) String() string { return "<invalid " + strconv.Quote(i.Text) + ": " + i.Reason + ">" }

// Problems lists every invalid fragment inside e.
func Problems(e Expr) []string {
	var out []string
	var walk func(Expr)
	walk = func(e Expr) {
		switch n := e.(type) {
		case Invalid:
			out = append(out, strconv.Quote(n.Text)+": "+n.Reason)
		case Group:
			for _, t := range n.Terms {
				walk(t)
			}
		}
	}
	walk(e)
	return out
}
