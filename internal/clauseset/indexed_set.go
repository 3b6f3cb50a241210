package clauseset

import (
	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/index"
)

// IndexedSet is the processed set: a plain backing set plus a
// resolution index and a subsumption index kept in sync on every
// insertion and removal, so the saturation loop can look up
// resolution/factoring/subsumption candidates in sub-linear time
// instead of scanning every processed clause.
type IndexedSet struct {
	*Set
	Resolution *index.ResolutionIndex
	Subsumption *index.SubsumptionIndex
}

func NewIndexedSet() *IndexedSet {
	return &IndexedSet{
		Set:         NewSet(),
		Resolution:  index.NewResolutionIndex(),
		Subsumption: index.NewSubsumptionIndex(),
	}
}

func (s *IndexedSet) Add(c *clause.Clause) {
	s.Set.Add(c)
	s.Resolution.InsertClause(c)
	s.Subsumption.InsertClause(c)
}

func (s *IndexedSet) Remove(c *clause.Clause) {
	s.Set.Remove(c)
	s.Resolution.RemoveClause(c)
	s.Subsumption.RemoveClause(c)
}

// GetSubsumingCandidates and GetSubsumedCandidates satisfy
// subsume.Candidates using the subsumption index rather than a full
// scan.
func (s *IndexedSet) GetSubsumingCandidates(d *clause.Clause) []*clause.Clause {
	return s.Subsumption.GetSubsumingCandidates(d)
}

func (s *IndexedSet) GetSubsumedCandidates(c *clause.Clause) []*clause.Clause {
	return s.Subsumption.GetSubsumedCandidates(c)
}

// GetResolutionLiterals delegates to the resolution index, overriding
// the brute-force Set implementation.
func (s *IndexedSet) GetResolutionLiterals(lit *clause.Literal) []index.Candidate {
	return s.Resolution.GetResolutionLiterals(lit)
}
