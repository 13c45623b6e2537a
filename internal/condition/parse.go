package condition

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	listToken    = regexp.MustCompile(`^([A-Za-z_]+)(\?|!)\[(.*)\]$`)
	compareToken = regexp.MustCompile(`^([A-Za-z_]+)\s*(>=|<=|!=|=|>|<)\s*(-?\d+(?:\.\d+)?)$`)
)

var listKeys = map[string]bool{
	keyAge:                 true,
	string(SetFlag):        true,
	string(SetTag):         true,
	string(SetAchievement): true,
	string(SetTalent):      true,
	string(SetEvent):       true,
}

// node is the untyped shape produced by the scanner: either a token or a
// nested group.
type node struct {
	token string
	group *group
}

type group struct {
	items []node
}

// Parse turns src into an expression tree. It never fails; malformed input
// yields Invalid nodes.
func Parse(src string) Expr {
	root, ok := scan(src)
	if !ok {
		return Invalid{Text: src, Reason: "unbalanced parentheses"}
	}
	return compileGroup(root.items)
}

func scan(src string) (*group, bool) {
	root := &group{}
	stack := []*group{root}
	cursor := 0
	push := func(i int) {
		tok := strings.TrimSpace(src[cursor:i])
		cursor = i
		if tok != "" {
			top := stack[len(stack)-1]
			top.items = append(top.items, node{token: tok})
		}
	}
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '(':
			push(i)
			cursor++
			g := &group{}
			top := stack[len(stack)-1]
			top.items = append(top.items, node{group: g})
			stack = append(stack, g)
		case ')':
			push(i)
			cursor++
			if len(stack) == 1 {
				return nil, false
			}
			stack = stack[:len(stack)-1]
		case '&', '|':
			push(i)
			push(i + 1)
		}
	}
	push(len(src))
	return root, len(stack) == 1
}

func compileGroup(items []node) Expr {
	switch len(items) {
	case 0:
		return Group{}
	case 1:
		return compileNode(items[0])
	}
	g := Group{Terms: []Expr{compileNode(items[0])}}
	for i := 1; i < len(items); i += 2 {
		op, ok := logicOf(items[i])
		if !ok {
			return Invalid{Text: describe(items), Reason: "expected & or | between terms"}
		}
		if i+1 >= len(items) {
			return Invalid{Text: describe(items), Reason: "operator without right-hand term"}
		}
		g.Ops = append(g.Ops, op)
		g.Terms = append(g.Terms, compileNode(items[i+1]))
	}
	return g
}

func compileNode(n node) Expr {
	if n.group != nil {
		return compileGroup(n.group.items)
	}
	return compileToken(n.token)
}

func compileToken(tok string) Expr {
	if m := listToken.FindStringSubmatch(tok); m != nil {
		key := m[1]
		if !listKeys[key] {
			return Invalid{Text: tok, Reason: "unknown list key " + key}
		}
		var values []string
		for _, v := range strings.Split(m[3], ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
		return Membership{Key: key, Negate: m[2] == "!", Values: values}
	}
	if m := compareToken.FindStringSubmatch(tok); m != nil {
		v, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return Invalid{Text: tok, Reason: err.Error()}
		}
		return Compare{Key: m[1], Op: Op(m[2]), Value: v}
	}
	return Invalid{Text: tok, Reason: "unrecognized token"}
}

func logicOf(n node) (Logic, bool) {
	if n.group != nil {
		return 0, false
	}
	switch n.token {
	case "&":
		return And, true
	case "|":
		return Or, true
	}
	return 0, false
}

func describe(items []node) string {
	parts := make([]string, 0, len(items))
	for _, n := range items {
		if n.group != nil {
			parts = append(parts, "("+describe(n.group.items)+")")
			continue
		}
		parts = append(parts, n.token)
	}
	return strings.Join(parts, " ")
}
