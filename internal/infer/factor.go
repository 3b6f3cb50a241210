package infer

import (
	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/term"
)

// Factor computes the factor of c obtained by unifying the literals
// at positions i and j (i < j, same polarity) and dropping the
// redundant occurrence at j. Factoring is the rule that lets a
// disjunction like p(X)|p(a) collapse to p(a), which resolution alone
// cannot do since it always consumes one literal from each premise.
func Factor(c *clause.Clause, i, j int) (*clause.Clause, bool) {
	li := c.GetLiteral(i)
	lj := c.GetLiteral(j)
	if li.IsNegative() != lj.IsNegative() {
		return nil, false
	}
	mgu, ok := term.MGU(li.Atom, lj.Atom)
	if !ok {
		return nil, false
	}
	env := mgu.Bindings()

	lits := make([]*clause.Literal, 0, c.Len()-1)
	for k, l := range c.Literals {
		if k == j {
			continue
		}
		lits = append(lits, l.Instantiate(env))
	}

	res := clause.NewClause("", c.Type, lits)
	res.RemoveDupLits()
	res.SetDerivation(clause.FlatDerivation("factor", []*clause.Clause{c}))
	res.PartOfSOS = c.PartOfSOS
	return res, true
}
