package clauseset

import (
	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/heuristic"
	"github.com/gologic/satprove/internal/sos"
)

// HeuristicClauseSet is the unprocessed set: every member carries an
// evaluation vector from an EvalStructure, and ExtractBest applies the
// scheduler's current slot together with the set-of-support ratio
// policy to pick the next given clause.
type HeuristicClauseSet struct {
	*Set
	evalStructure *heuristic.EvalStructure
	sosStrategy   sos.Strategy
	numSOSClauses int
}

func NewHeuristicClauseSet(evalStructure *heuristic.EvalStructure, sosStrategy sos.Strategy) *HeuristicClauseSet {
	if sosStrategy == nil {
		sosStrategy = sos.NewNoSos()
	}
	return &HeuristicClauseSet{Set: NewSet(), evalStructure: evalStructure, sosStrategy: sosStrategy}
}

// Add indexes c by its evaluation vector and, if the configured SOS
// strategy claims it, marks it as part of the set-of-support.
func (h *HeuristicClauseSet) Add(c *clause.Clause) {
	if c.Evaluation == nil {
		c.AddEval(h.evalStructure.Evaluate(c))
	}
	if h.sosStrategy.ShouldMarkClause(c) {
		c.PartOfSOS = true
	}
	if c.PartOfSOS {
		h.numSOSClauses++
	}
	h.Set.Add(c)
}

func (h *HeuristicClauseSet) Remove(c *clause.Clause) {
	if h.Contains(c) && c.PartOfSOS {
		h.numSOSClauses--
	}
	h.Set.Remove(c)
}

// ExtractBest removes and returns the minimal clause under the
// scheduler's current evaluation slot, restricted to the
// set-of-support when the ratio policy says to prefer it and the SOS
// is non-empty.
func (h *HeuristicClauseSet) ExtractBest() (*clause.Clause, bool) {
	if h.Len() == 0 {
		return nil, false
	}
	idx := h.evalStructure.NextEval()
	preferSOS := h.numSOSClauses > 0 && h.sosStrategy.ShouldApply()
	return h.extractBestByEval(idx, preferSOS)
}

func (h *HeuristicClauseSet) extractBestByEval(idx int, sosOnly bool) (*clause.Clause, bool) {
	var best *clause.Clause
	for _, c := range h.order {
		if sosOnly && !c.PartOfSOS {
			continue
		}
		if best == nil || (len(c.Evaluation) > idx && c.Evaluation[idx] < best.Evaluation[idx]) {
			best = c
		}
	}
	if best == nil {
		// SOS preferred but empty after all: fall back to the full set.
		return h.extractBestByEval(idx, false)
	}
	h.Remove(best)
	return best, true
}
