package sim

import "encoding/json"

// Set is an insertion-ordered string set. Order matters for reproducible
// summaries; the zero value is ready to use.
type Set struct {
	items []string
	has   map[string]bool
}

func NewSet(items ...string) Set {
	var s Set
	for _, it := range items {
		s.Add(it)
	}
	return s
}

func (s *Set) Add(v string) bool {
	if s.has == nil {
		s.has = map[string]bool{}
	}
	if s.has[v] {
		return false
	}
	s.has[v] = true
	s.items = append(s.items, v)
	return true
}

func (s *Set) Remove(v string) {
	if !s.has[v] {
		return
	}
	delete(s.has, v)
	for i, it := range s.items {
		if it == v {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
}

func (s Set) Has(v string) bool { return s.has[v] }
func (s Set) Len() int          { return len(s.items) }

// Items returns a copy in insertion order.
func (s Set) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

func (s Set) Clone() Set {
	c := Set{items: s.Items(), has: make(map[string]bool, len(s.has))}
	for k := range s.has {
		c.has[k] = true
	}
	return c
}

func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items())
}

func (s *Set) UnmarshalJSON(b []byte) error {
	var items []string
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	*s = NewSet(items...)
	return nil
}
