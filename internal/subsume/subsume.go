// Package subsume implements multiset clause subsumption: C subsumes
// D if some substitution maps C onto a multi-subset of D.
package subsume

import (
	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/term"
)

// Subsumes reports whether c subsumes d.
func Subsumes(c, d *clause.Clause) bool {
	if c.Len() > d.Len() {
		return false
	}
	bt := term.NewBTSubst()
	return subsumeLitLists(c.Literals, d.Literals, bt)
}

// subsumeLitLists recursively matches every literal in clits against
// some not-yet-used literal in dlits, backtracking the shared
// substitution on failure.
func subsumeLitLists(clits, dlits []*clause.Literal, bt *term.BTSubst) bool {
	if len(clits) == 0 {
		return true
	}
	l := clits[0]
	rest := clits[1:]
	for i, m := range dlits {
		state := bt.State()
		if l.Match(m, bt) {
			if subsumeLitLists(rest, without(dlits, i), bt) {
				return true
			}
		}
		bt.BacktrackToState(state)
	}
	return false
}

func without(lits []*clause.Literal, i int) []*clause.Literal {
	res := make([]*clause.Literal, 0, len(lits)-1)
	res = append(res, lits[:i]...)
	res = append(res, lits[i+1:]...)
	return res
}

// Candidates abstracts the lookup a clause set exposes for
// subsumption queries: index-backed sets return a filtered subset,
// plain sets return everything.
type Candidates interface {
	GetSubsumingCandidates(d *clause.Clause) []*clause.Clause
	GetSubsumedCandidates(c *clause.Clause) []*clause.Clause
}

// ForwardSubsumption reports whether some clause already in cands
// subsumes newClause, in which case newClause is redundant.
func ForwardSubsumption(cands Candidates, newClause *clause.Clause) bool {
	for _, c := range cands.GetSubsumingCandidates(newClause) {
		if Subsumes(c, newClause) {
			return true
		}
	}
	return false
}

// BackwardSubsumption returns every clause in cands that newClause
// subsumes: these are now redundant and must be removed from the
// processed set.
func BackwardSubsumption(cands Candidates, newClause *clause.Clause) []*clause.Clause {
	var removed []*clause.Clause
	for _, c := range cands.GetSubsumedCandidates(newClause) {
		if Subsumes(newClause, c) {
			removed = append(removed, c)
		}
	}
	return removed
}
