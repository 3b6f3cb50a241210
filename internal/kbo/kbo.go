package kbo

import "github.com/gologic/satprove/internal/term"

// Result is the outcome of comparing two terms under KBO.
type Result int

const (
	Uncomparable Result = iota
	Greater
	Lesser
	Equal
)

func (r Result) String() string {
	switch r {
	case Greater:
		return "greater"
	case Lesser:
		return "lesser"
	case Equal:
		return "equal"
	default:
		return "uncomparable"
	}
}

// varCondition reports whether, for every variable, its occurrence
// count in s is at least that in t (the condition required for
// s to possibly be greater than t).
func varCondition(s, t term.Term) bool {
	seen := make(map[string]bool)
	var order []string
	term.CollectVars(s, seen, &order)
	term.CollectVars(t, seen, &order)
	for _, v := range order {
		if term.CountVarOccurrences(s, v) < term.CountVarOccurrences(t, v) {
			return false
		}
	}
	return true
}

// guard applies the variable-condition check to a proposed strict
// outcome: Greater requires varCondition(s,t); Lesser requires
// varCondition(t,s). Any other proposed result (Equal) is untouched.
// If the guard fails, the outcome collapses to Uncomparable.
func guard(proposed Result, s, t term.Term) Result {
	switch proposed {
	case Greater:
		if varCondition(s, t) {
			return Greater
		}
		return Uncomparable
	case Lesser:
		if varCondition(t, s) {
			return Lesser
		}
		return Uncomparable
	default:
		return proposed
	}
}

// Compare returns how s compares to t under the Knuth-Bendix ordering
// defined by ocb.
func Compare(ocb *OCB, s, t term.Term) Result {
	if s.IsVar() || t.IsVar() {
		return compareVars(s, t)
	}

	ws, wt := weight(ocb, s), weight(ocb, t)

	if ws != wt {
		if ws > wt {
			return guard(Greater, s, t)
		}
		return guard(Lesser, s, t)
	}

	precCmp := ocb.ComparePrecedence(s.Head(), t.Head())
	if precCmp != 0 {
		if precCmp > 0 {
			return guard(Greater, s, t)
		}
		return guard(Lesser, s, t)
	}

	// Equal head symbol (since weight and precedence both tie, and a
	// mismatched head with equal precedence cannot occur for a total
	// precedence): recurse lexicographically on arguments.
	sargs, targs := s.Args(), t.Args()
	for i := range sargs {
		if i >= len(targs) {
			break
		}
		sub := Compare(ocb, sargs[i], targs[i])
		if sub != Equal {
			return guard(sub, s, t)
		}
	}
	return Equal
}

func compareVars(s, t term.Term) Result {
	if s.IsVar() && t.IsVar() {
		if s.Head() == t.Head() {
			return Equal
		}
		return Uncomparable
	}
	if s.IsVar() {
		if term.IsSubterm(s, t) {
			return Lesser
		}
		return Uncomparable
	}
	// t.IsVar()
	if term.IsSubterm(t, s) {
		return Greater
	}
	return Uncomparable
}

func weight(ocb *OCB, t term.Term) int {
	if t.IsVar() {
		return ocb.VarWeight
	}
	w := ocb.Weight(t.Head())
	for _, a := range t.Args() {
		w += weight(ocb, a)
	}
	return w
}
