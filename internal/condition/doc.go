// Package condition implements the small boolean language content authors use
// to gate events, talents, achievements, branches and endings.
//
// A condition is a flat sequence of tokens joined by & (and) or | (or),
// evaluated left to right with no precedence between the two. Parentheses
// group sub-expressions. Two token shapes exist:
//
//	tech>=30          comparison against AGE or a stat id
//	FLAG?[a,b]        membership in AGE, FLAG, TAG, ACHV, TLT or EVT
//	TLT![t1]          negated membership
//
// Anything that does not parse evaluates to false. Parsed trees are cached by
// source string in a Cache; each engine owns its own Cache.
package condition
