// Package infer implements the two generating inference rules of the
// calculus: ordered binary resolution and factoring, plus the
// all-candidates computation the given-clause loop uses to generate
// every inference with a newly processed clause.
package infer

import (
	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/term"
)

// Resolution computes the binary resolvent of the literal at position
// i in c1 against the literal at position j in c2. It fails unless
// the two literals have opposite polarity and their atoms unify.
// Callers must ensure c1 and c2 are variable-disjoint (clause.FreshVarCopy
// on one of the two premises before calling) since resolution unifies
// across both clauses at once.
func Resolution(c1 *clause.Clause, i int, c2 *clause.Clause, j int) (*clause.Clause, bool) {
	l1 := c1.GetLiteral(i)
	l2 := c2.GetLiteral(j)
	if l1.IsNegative() == l2.IsNegative() {
		return nil, false
	}
	mgu, ok := term.MGU(l1.Atom, l2.Atom)
	if !ok {
		return nil, false
	}
	env := mgu.Bindings()

	lits := make([]*clause.Literal, 0, c1.Len()+c2.Len()-2)
	for k, l := range c1.Literals {
		if k == i {
			continue
		}
		lits = append(lits, l.Instantiate(env))
	}
	for k, l := range c2.Literals {
		if k == j {
			continue
		}
		lits = append(lits, l.Instantiate(env))
	}

	res := clause.NewClause("", clause.TypePlain, lits)
	res.RemoveDupLits()
	res.SetDerivation(clause.FlatDerivation("resolution", []*clause.Clause{c1, c2}))
	res.PartOfSOS = c1.PartOfSOS || c2.PartOfSOS
	return res, true
}
