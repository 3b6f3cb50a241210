// Package clauseset implements the clause containers used by the
// given-clause saturation loop: a plain unordered set, a
// heuristically-evaluated set that can extract its best member, and
// an indexed set that layers resolution and subsumption indices over
// a plain set.
package clauseset

import (
	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/index"
)

// Set is a plain, unordered collection of clauses.
type Set struct {
	clauses map[*clause.Clause]bool
	order   []*clause.Clause
}

func NewSet() *Set {
	return &Set{clauses: make(map[*clause.Clause]bool)}
}

func (s *Set) Add(c *clause.Clause) {
	if s.clauses[c] {
		return
	}
	s.clauses[c] = true
	s.order = append(s.order, c)
}

func (s *Set) Remove(c *clause.Clause) {
	if !s.clauses[c] {
		return
	}
	delete(s.clauses, c)
	for i, o := range s.order {
		if o == c {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Set) Contains(c *clause.Clause) bool { return s.clauses[c] }
func (s *Set) Len() int                       { return len(s.order) }

// Clauses returns the set's members in insertion order.
func (s *Set) Clauses() []*clause.Clause {
	res := make([]*clause.Clause, len(s.order))
	copy(res, s.order)
	return res
}

// GetSubsumingCandidates and GetSubsumedCandidates satisfy
// subsume.Candidates for a plain set by returning every member: with
// no index available, every clause is a candidate and the exact
// subsumption check does the filtering.
func (s *Set) GetSubsumingCandidates(d *clause.Clause) []*clause.Clause { return s.Clauses() }
func (s *Set) GetSubsumedCandidates(c *clause.Clause) []*clause.Clause  { return s.Clauses() }

// GetResolutionLiterals returns every inference-literal position in
// the set, unfiltered: the naive, obviously-correct implementation
// for a plain (unindexed) set, leaving the unifiability check to the
// resolution rule itself.
func (s *Set) GetResolutionLiterals(lit *clause.Literal) []index.Candidate {
	var res []index.Candidate
	for _, c := range s.order {
		for i, l := range c.Literals {
			if l.IsInferenceLit() {
				res = append(res, index.Candidate{Clause: c, Pos: i})
			}
		}
	}
	return res
}
