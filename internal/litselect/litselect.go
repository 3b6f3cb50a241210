// Package litselect implements literal-selection strategies: each
// strategy picks a subset of a clause's negative literals to mark as
// the clause's inference literals, and a KBO-ordered mode for clauses
// without negative literals.
package litselect

import (
	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/kbo"
)

// Func selects a sublist (typically one element) of negLits to mark
// as inference literals.
type Func func(negLits []*clause.Literal) []*clause.Literal

// First selects the first negative literal.
func First(negLits []*clause.Literal) []*clause.Literal {
	if len(negLits) == 0 {
		return nil
	}
	return negLits[:1]
}

func weightOf(l *clause.Literal) int { return l.Weight(1, 1) }

// Smallest selects the lightest negative literal.
func Smallest(negLits []*clause.Literal) []*clause.Literal {
	return []*clause.Literal{extreme(negLits, func(a, b int) bool { return a < b })}
}

// Largest selects the heaviest negative literal.
func Largest(negLits []*clause.Literal) []*clause.Literal {
	return []*clause.Literal{extreme(negLits, func(a, b int) bool { return a > b })}
}

func extreme(lits []*clause.Literal, better func(a, b int) bool) *clause.Literal {
	best := lits[0]
	bestW := weightOf(best)
	for _, l := range lits[1:] {
		w := weightOf(l)
		if better(w, bestW) {
			best, bestW = l, w
		}
	}
	return best
}

func varCount(l *clause.Literal) int {
	seen := make(map[string]bool)
	var order []string
	l.CollectVars(seen, &order)
	return len(order)
}

// LeastVars selects the literal with fewest distinct variables, ties
// broken by larger weight.
func LeastVars(negLits []*clause.Literal) []*clause.Literal {
	best := negLits[0]
	bestVars, bestW := varCount(best), weightOf(best)
	for _, l := range negLits[1:] {
		vc, w := varCount(l), weightOf(l)
		if vc < bestVars || (vc == bestVars && w > bestW) {
			best, bestVars, bestW = l, vc, w
		}
	}
	return []*clause.Literal{best}
}

// EqLeastVars behaves like LeastVars but prefers a pure-variable
// equality literal X=Y first, if one exists.
func EqLeastVars(negLits []*clause.Literal) []*clause.Literal {
	for _, l := range negLits {
		if l.IsPureVarLit() {
			return []*clause.Literal{l}
		}
	}
	return LeastVars(negLits)
}

// Selectors maps the CLI-facing strategy names to their Func.
var Selectors = map[string]Func{
	"first":      First,
	"smallest":   Smallest,
	"largest":    Largest,
	"leastvars":  LeastVars,
	"eqleastvars": EqLeastVars,
}

// Apply runs sel over c's negative literals, marking the selected
// literals as inference literals and every other literal as
// non-inference. A clause with no negative literals is left with
// every literal as an inference literal (ordinary resolution is still
// possible on positive literals in that case).
func Apply(c *clause.Clause, sel Func) {
	neg := c.GetNegativeLits()
	if len(neg) == 0 {
		for _, l := range c.Literals {
			l.SetInferenceLit(true)
		}
		return
	}
	chosen := sel(neg)
	chosenSet := make(map[*clause.Literal]bool, len(chosen))
	for _, l := range chosen {
		chosenSet[l] = true
	}
	for _, l := range c.Literals {
		if l.IsNegative() {
			l.SetInferenceLit(chosenSet[l])
		} else {
			l.SetInferenceLit(false)
		}
	}
}

// ApplyOrdered implements KBO-ordered literal selection, compatible
// with negative-literal selection: every literal starts marked as an
// inference literal, then for every pair the KBO comparison of their
// atoms clears the inference flag on the smaller side; incomparable
// mixed-polarity pairs clear the positive side.
func ApplyOrdered(ocb *kbo.OCB, c *clause.Clause) {
	for _, l := range c.Literals {
		l.SetInferenceLit(true)
	}
	if c.Len() == 1 {
		return
	}
	for i := c.Len() - 1; i > 0; i-- {
		a := c.Literals[i]
		for j := 0; j < i; j++ {
			b := c.Literals[j]
			switch kbo.Compare(ocb, a.Atom, b.Atom) {
			case kbo.Greater:
				b.SetInferenceLit(false)
			case kbo.Lesser:
				a.SetInferenceLit(false)
			case kbo.Uncomparable, kbo.Equal:
				if a.IsNegative() && !b.IsNegative() {
					b.SetInferenceLit(false)
				} else if b.IsNegative() && !a.IsNegative() {
					a.SetInferenceLit(false)
				}
			}
		}
	}
}
