package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/index"
	"github.com/gologic/satprove/internal/term"
)

func lit(sym string, negative bool, args ...term.Term) *clause.Literal {
	return clause.NewLiteral(term.NewApp(sym, args...), negative)
}

func TestResolutionProducesEmptyClauseFromComplementaryUnits(t *testing.T) {
	// p(a). ~p(a). resolve to the empty clause.
	c1 := clause.NewClause("c1", "", []*clause.Literal{lit("p", false, term.Const("a"))})
	c2 := clause.NewClause("c2", "", []*clause.Literal{lit("p", true, term.Const("a"))})
	r, ok := Resolution(c1, 0, c2, 0)
	require.True(t, ok)
	assert.True(t, r.IsEmpty())
}

func TestResolutionFailsOnSamePolarity(t *testing.T) {
	c1 := clause.NewClause("c1", "", []*clause.Literal{lit("p", false, term.Const("a"))})
	c2 := clause.NewClause("c2", "", []*clause.Literal{lit("p", false, term.Const("a"))})
	_, ok := Resolution(c1, 0, c2, 0)
	assert.False(t, ok)
}

func TestResolutionSoundnessGeneralCase(t *testing.T) {
	// p(X)|q(X).  ~p(a)|r(b).  resolve on p(X)/~p(a), mgu {X->a}.
	// Expected resolvent literals (up to order): q(a), r(b).
	c1 := clause.NewClause("c1", "", []*clause.Literal{
		lit("p", false, term.NewVar("X")),
		lit("q", false, term.NewVar("X")),
	})
	c2 := clause.NewClause("c2", "", []*clause.Literal{
		lit("p", true, term.Const("a")),
		lit("r", false, term.Const("b")),
	})
	r, ok := Resolution(c1, 0, c2, 0)
	require.True(t, ok)
	require.Equal(t, 2, r.Len())

	wantQA := lit("q", false, term.Const("a"))
	wantRB := lit("r", false, term.Const("b"))
	found := map[string]bool{}
	for _, l := range r.Literals {
		found[l.String()] = true
	}
	assert.True(t, found[wantQA.String()])
	assert.True(t, found[wantRB.String()])
}

func TestFactorCollapsesDuplicateAfterUnification(t *testing.T) {
	// p(X)|p(a) factors (on the two p-literals) to p(a).
	c := clause.NewClause("c1", "", []*clause.Literal{
		lit("p", false, term.NewVar("X")),
		lit("p", false, term.Const("a")),
	})
	f, ok := Factor(c, 0, 1)
	require.True(t, ok)
	require.Equal(t, 1, f.Len())
	assert.Equal(t, "p(a)", f.Literals[0].String())
}

func TestFactorFailsOnOpposingPolarity(t *testing.T) {
	c := clause.NewClause("c1", "", []*clause.Literal{
		lit("p", false, term.NewVar("X")),
		lit("p", true, term.Const("a")),
	})
	_, ok := Factor(c, 0, 1)
	assert.False(t, ok)
}

func TestFactoringRequiredScenario(t *testing.T) {
	// cnf(c1, axiom, p(X)|p(a)). cnf(c2, axiom, ~p(a)).
	// A factor of c1 (p(a)) resolves with c2 to the empty clause;
	// c1 alone does not resolve with c2 to the empty clause directly
	// because p(X)|p(a) resolving on p(a)/~p(a) still leaves p(X)
	// behind, or resolving on p(X)/~p(a) still leaves p(a) behind.
	c1 := clause.NewClause("c1", clause.TypeAxiom, []*clause.Literal{
		lit("p", false, term.NewVar("X")),
		lit("p", false, term.Const("a")),
	})
	c2 := clause.NewClause("c2", clause.TypeAxiom, []*clause.Literal{lit("p", true, term.Const("a"))})

	factored, ok := Factor(c1, 0, 1)
	require.True(t, ok)
	require.Equal(t, 1, factored.Len())

	empty, ok := Resolution(factored, 0, c2, 0)
	require.True(t, ok)
	assert.True(t, empty.IsEmpty())
}

func TestComputeAllResolventsFindsIndexedComplement(t *testing.T) {
	ri := index.NewResolutionIndex()
	c2 := clause.NewClause("c2", "", []*clause.Literal{lit("p", true, term.Const("a"))})
	ri.InsertClause(c2)

	c1 := clause.NewClause("c1", "", []*clause.Literal{lit("p", false, term.Const("a"))})
	resolvents := ComputeAllResolvents(c1, ri)
	require.Len(t, resolvents, 1)
	assert.True(t, resolvents[0].IsEmpty())
}

func TestComputeAllFactorsRequiresAtLeastOneInferenceLit(t *testing.T) {
	c := clause.NewClause("c1", "", []*clause.Literal{
		lit("p", false, term.NewVar("X")),
		lit("p", false, term.Const("a")),
	})
	c.Literals[0].SetInferenceLit(false)
	c.Literals[1].SetInferenceLit(false)
	assert.Empty(t, ComputeAllFactors(c))
}
