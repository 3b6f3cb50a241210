// Package index implements the resolution index (top-symbol hashing)
// and the subsumption index (predicate-abstraction sequence
// matching) used to speed up candidate lookup in the saturation loop.
package index

import "github.com/gologic/satprove/internal/clause"

// Candidate is a (clause, literal-position) pair.
type Candidate struct {
	Clause *clause.Clause
	Pos    int
}

// ResolutionIndex maps predicate symbols to the set of (clause,
// position) pairs of inference literals with that head, split by
// polarity. It is a top-symbol hash only: callers must still perform
// the unifiability check on any candidate it returns.
type ResolutionIndex struct {
	pos map[string]map[Candidate]bool
	neg map[string]map[Candidate]bool
}

func NewResolutionIndex() *ResolutionIndex {
	return &ResolutionIndex{
		pos: make(map[string]map[Candidate]bool),
		neg: make(map[string]map[Candidate]bool),
	}
}

func (r *ResolutionIndex) bucket(negative bool) map[string]map[Candidate]bool {
	if negative {
		return r.neg
	}
	return r.pos
}

// InsertClause indexes every inference literal of c.
func (r *ResolutionIndex) InsertClause(c *clause.Clause) {
	for i, l := range c.Literals {
		if !l.IsInferenceLit() {
			continue
		}
		m := r.bucket(l.IsNegative())
		head := l.Atom.Head()
		if m[head] == nil {
			m[head] = make(map[Candidate]bool)
		}
		m[head][Candidate{Clause: c, Pos: i}] = true
	}
}

// RemoveClause un-indexes every inference literal of c.
func (r *ResolutionIndex) RemoveClause(c *clause.Clause) {
	for i, l := range c.Literals {
		m := r.bucket(l.IsNegative())
		head := l.Atom.Head()
		if m[head] != nil {
			delete(m[head], Candidate{Clause: c, Pos: i})
		}
	}
}

// GetResolutionLiterals returns every (clause, position) pair whose
// literal could potentially resolve against lit: same head symbol,
// opposite polarity.
func (r *ResolutionIndex) GetResolutionLiterals(lit *clause.Literal) []Candidate {
	m := r.bucket(!lit.IsNegative())
	set := m[lit.Atom.Head()]
	res := make([]Candidate, 0, len(set))
	for c := range set {
		res = append(res, c)
	}
	return res
}
