package infer

import (
	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/index"
)

// ResolutionSource is anything ComputeAllResolvents can query for
// candidate resolution partners: either a plain set (full scan) or an
// indexed set (top-symbol hash lookup).
type ResolutionSource interface {
	GetResolutionLiterals(lit *clause.Literal) []index.Candidate
}

// ComputeAllResolvents generates every binary resolvent of c against
// clauses reachable through src. Only inference literals of c
// participate, mirroring the literal-selection restriction: a
// non-selected literal may not be resolved upon. c is renamed to a
// fresh variable copy before use so its variables never clash with a
// candidate clause's.
func ComputeAllResolvents(c *clause.Clause, src ResolutionSource) []*clause.Clause {
	fresh := c.FreshVarCopy()
	var res []*clause.Clause
	for i, l := range fresh.Literals {
		if !l.IsInferenceLit() {
			continue
		}
		for _, cand := range src.GetResolutionLiterals(l) {
			if cand.Clause == c {
				continue
			}
			other := cand.Clause.FreshVarCopy()
			if r, ok := Resolution(fresh, i, other, cand.Pos); ok {
				res = append(res, r)
			}
		}
	}
	return res
}

// ComputeAllFactors generates every factor of c: every pair of
// same-polarity literals where at least one is an inference literal.
// Pure-inference-literal pairs (both i and j selected) are the common
// case; the relaxed at-least-one guard also permits collapsing a
// selected literal into a non-selected duplicate.
func ComputeAllFactors(c *clause.Clause) []*clause.Clause {
	var res []*clause.Clause
	for i := 0; i < c.Len(); i++ {
		for j := i + 1; j < c.Len(); j++ {
			li := c.GetLiteral(i)
			lj := c.GetLiteral(j)
			if !li.IsInferenceLit() && !lj.IsInferenceLit() {
				continue
			}
			if f, ok := Factor(c, i, j); ok {
				res = append(res, f)
			}
		}
	}
	return res
}
