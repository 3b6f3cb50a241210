// Package eqaxioms generates the clausal equality axioms: the three
// equivalence-relation axioms (reflexivity, symmetry, transitivity)
// plus, for every function and predicate symbol in a signature, the
// compatibility ("congruence") axiom stating that equality of
// arguments implies equality (or logical equivalence) of the
// application.
package eqaxioms

import (
	"strconv"

	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/term"
)

func eq(lhs, rhs term.Term) term.Term { return term.NewApp("=", lhs, rhs) }

// GenerateEquivAxioms returns the three axioms describing equality as
// an equivalence relation: X=X, X!=Y|Y=X, X!=Y|Y!=Z|X=Z.
func GenerateEquivAxioms() []*clause.Clause {
	x, y, z := term.NewVar("X"), term.NewVar("Y"), term.NewVar("Z")

	refl := clause.NewClause("reflexivity", clause.TypeAxiom, []*clause.Literal{
		clause.NewLiteral(eq(x, x), false),
	})
	sym := clause.NewClause("symmetry", clause.TypeAxiom, []*clause.Literal{
		clause.NewLiteral(eq(x, y), true),
		clause.NewLiteral(eq(y, x), false),
	})
	trans := clause.NewClause("transitivity", clause.TypeAxiom, []*clause.Literal{
		clause.NewLiteral(eq(x, y), true),
		clause.NewLiteral(eq(y, z), true),
		clause.NewLiteral(eq(x, z), false),
	})
	for _, c := range []*clause.Clause{refl, sym, trans} {
		c.SetDerivation(clause.EqAxiomDerivation())
	}
	return []*clause.Clause{refl, sym, trans}
}

// generateVarList builds n variables named prefix1..prefixN.
func generateVarList(prefix string, n int) []term.Term {
	res := make([]term.Term, n)
	for i := 0; i < n; i++ {
		res[i] = term.NewVar(prefix + strconv.Itoa(i+1))
	}
	return res
}

// generateEqPremise builds the negated-equality antecedent literals
// X1!=Y1|...|Xn!=Yn.
func generateEqPremise(arity int) []*clause.Literal {
	xs := generateVarList("X", arity)
	ys := generateVarList("Y", arity)
	res := make([]*clause.Literal, arity)
	for i := 0; i < arity; i++ {
		res[i] = clause.NewLiteral(eq(xs[i], ys[i]), true)
	}
	return res
}

// GenerateFunCompatAx builds the congruence axiom for a function
// symbol f of the given arity:
// X1!=Y1|...|Xn!=Yn|f(X1,...,Xn)=f(Y1,...,Yn).
func GenerateFunCompatAx(f string, arity int) *clause.Clause {
	lits := generateEqPremise(arity)
	xs := generateVarList("X", arity)
	ys := generateVarList("Y", arity)
	lits = append(lits, clause.NewLiteral(eq(term.NewApp(f, xs...), term.NewApp(f, ys...)), false))
	c := clause.NewClause("", clause.TypeAxiom, lits)
	c.SetDerivation(clause.EqAxiomDerivation())
	return c
}

// GeneratePredCompatAx builds the congruence axiom for a predicate
// symbol p of the given arity:
// X1!=Y1|...|Xn!=Yn|~p(X1,...,Xn)|p(Y1,...,Yn).
func GeneratePredCompatAx(p string, arity int) *clause.Clause {
	lits := generateEqPremise(arity)
	xs := generateVarList("X", arity)
	ys := generateVarList("Y", arity)
	lits = append(lits, clause.NewLiteral(term.NewApp(p, xs...), true))
	lits = append(lits, clause.NewLiteral(term.NewApp(p, ys...), false))
	c := clause.NewClause("", clause.TypeAxiom, lits)
	c.SetDerivation(clause.EqAxiomDerivation())
	return c
}

// GenerateCompatAxioms builds the full set of congruence axioms for
// every function and predicate symbol of positive arity in sig. The
// builtin "=" predicate is skipped, and nullary symbols (constants)
// need no congruence axiom since they have no arguments to vary.
func GenerateCompatAxioms(sig *term.Signature) []*clause.Clause {
	var res []*clause.Clause
	for _, f := range sig.Funs() {
		if arity := sig.Arity(f); arity > 0 {
			res = append(res, GenerateFunCompatAx(f, arity))
		}
	}
	for _, p := range sig.Preds() {
		if p == "=" {
			continue
		}
		if arity := sig.Arity(p); arity > 0 {
			res = append(res, GeneratePredCompatAx(p, arity))
		}
	}
	return res
}

// GenerateAll returns the full equality axiomatization for sig: the
// three equivalence-relation axioms plus every compatibility axiom.
func GenerateAll(sig *term.Signature) []*clause.Clause {
	res := GenerateEquivAxioms()
	res = append(res, GenerateCompatAxioms(sig)...)
	return res
}
