package index

import (
	"strings"

	"github.com/gologic/satprove/internal/clause"
)

func abstrKey(abs []clause.PredAbs) string {
	var b strings.Builder
	for _, a := range abs {
		if a.Negative {
			b.WriteByte('-')
		} else {
			b.WriteByte('+')
		}
		b.WriteString(a.Head)
		b.WriteByte(';')
	}
	return b.String()
}

// isSubsequence reports whether short is a subsequence of long: every
// element of short appears in long, in the same relative order. Both
// slices come from Clause.PredicateAbstraction, which sorts its
// output, so a two-pointer scan suffices.
func isSubsequence(short, long []clause.PredAbs) bool {
	i := 0
	for _, item := range long {
		if i >= len(short) {
			break
		}
		if item == short[i] {
			i++
		}
	}
	return i == len(short)
}

type abstrBucket struct {
	length  int
	abs     []clause.PredAbs
	clauses map[*clause.Clause]bool
}

// SubsumptionIndex maps a clause's predicate abstraction to the set
// of clauses sharing it, plus a length-sorted array of buckets used
// to filter subsumption candidates by the length and
// subsequence-of-abstraction necessary conditions.
type SubsumptionIndex struct {
	buckets map[string]*abstrBucket
	sorted  []*abstrBucket
}

func NewSubsumptionIndex() *SubsumptionIndex {
	return &SubsumptionIndex{buckets: make(map[string]*abstrBucket)}
}

func (s *SubsumptionIndex) insertSorted(b *abstrBucket) {
	i := 0
	for i < len(s.sorted) && s.sorted[i].length <= b.length {
		i++
	}
	s.sorted = append(s.sorted, nil)
	copy(s.sorted[i+1:], s.sorted[i:])
	s.sorted[i] = b
}

func (s *SubsumptionIndex) InsertClause(c *clause.Clause) {
	abs := c.PredicateAbstraction()
	key := abstrKey(abs)
	b, ok := s.buckets[key]
	if !ok {
		b = &abstrBucket{length: len(abs), abs: abs, clauses: make(map[*clause.Clause]bool)}
		s.buckets[key] = b
		s.insertSorted(b)
	}
	b.clauses[c] = true
}

func (s *SubsumptionIndex) RemoveClause(c *clause.Clause) {
	key := abstrKey(c.PredicateAbstraction())
	if b, ok := s.buckets[key]; ok {
		delete(b.clauses, c)
	}
}

func (s *SubsumptionIndex) IsIndexed(c *clause.Clause) bool {
	key := abstrKey(c.PredicateAbstraction())
	b, ok := s.buckets[key]
	return ok && b.clauses[c]
}

// GetSubsumingCandidates returns every indexed clause whose
// abstraction has length <= that of d and is a subsequence of it -
// the two necessary conditions for subsuming d.
func (s *SubsumptionIndex) GetSubsumingCandidates(d *clause.Clause) []*clause.Clause {
	dAbs := d.PredicateAbstraction()
	var res []*clause.Clause
	for _, b := range s.sorted {
		if b.length > len(dAbs) {
			break
		}
		if isSubsequence(b.abs, dAbs) {
			for c := range b.clauses {
				res = append(res, c)
			}
		}
	}
	return res
}

// GetSubsumedCandidates returns every indexed clause whose
// abstraction has length >= that of c and whose abstraction contains
// c's abstraction as a subsequence.
func (s *SubsumptionIndex) GetSubsumedCandidates(c *clause.Clause) []*clause.Clause {
	cAbs := c.PredicateAbstraction()
	var res []*clause.Clause
	for i := len(s.sorted) - 1; i >= 0; i-- {
		b := s.sorted[i]
		if b.length < len(cAbs) {
			break
		}
		if isSubsequence(cAbs, b.abs) {
			for cand := range b.clauses {
				res = append(res, cand)
			}
		}
	}
	return res
}
