package condition

// Cache memoizes parsed conditions by their exact source string. Content
// strings are static for the life of a bundle, so entries are never evicted.
// A Cache is not safe for concurrent use.
type Cache struct {
	parsed map[string]Expr
	parse  func(string) Expr
}

func NewCache() *Cache {
	return &Cache{parsed: map[string]Expr{}, parse: Parse}
}

// Get returns the parsed tree for src, parsing it on first use.
func (c *Cache) Get(src string) Expr {
	if e, ok := c.parsed[src]; ok {
		return e
	}
	e := c.parse(src)
	c.parsed[src] = e
	return e
}

// Check evaluates src against s. An empty condition always holds.
func (c *Cache) Check(s State, src string) bool {
	if src == "" {
		return true
	}
	return c.Get(src).Eval(s)
}

func (c *Cache) Len() int { return len(c.parsed) }
