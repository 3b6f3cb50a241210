package litselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/kbo"
	"github.com/gologic/satprove/internal/term"
)

func negLit(sym string, args ...term.Term) *clause.Literal {
	return clause.NewLiteral(term.NewApp(sym, args...), true)
}

func TestFirstSelectsFirst(t *testing.T) {
	l1 := negLit("p")
	l2 := negLit("q")
	chosen := First([]*clause.Literal{l1, l2})
	require.Len(t, chosen, 1)
	assert.Same(t, l1, chosen[0])
}

func TestSmallestPrefersLighterAtom(t *testing.T) {
	light := negLit("p")
	heavy := negLit("q", term.Const("a"), term.Const("b"))
	chosen := Smallest([]*clause.Literal{heavy, light})
	assert.Same(t, light, chosen[0])
}

func TestEqLeastVarsPrefersPureVarEquality(t *testing.T) {
	eq := clause.NewLiteral(term.NewApp("=", term.NewVar("X"), term.NewVar("Y")), true)
	other := negLit("p", term.NewVar("X"))
	chosen := EqLeastVars([]*clause.Literal{other, eq})
	assert.Same(t, eq, chosen[0])
}

func TestApplyMarksOnlySelected(t *testing.T) {
	pos := clause.NewLiteral(term.Const("r"), false)
	l1 := negLit("p")
	l2 := negLit("q")
	c := clause.NewClause("", "", []*clause.Literal{pos, l1, l2})

	Apply(c, First)

	assert.False(t, pos.IsInferenceLit())
	assert.True(t, l1.IsInferenceLit())
	assert.False(t, l2.IsInferenceLit())
}

func TestApplyOrderedKeepsMaximalLiterals(t *testing.T) {
	ocb := kbo.NewOCB(1)
	ocb.SetWeight("p", 1)
	ocb.SetWeight("q", 3)
	ocb.Register("p")
	ocb.Register("q")

	small := clause.NewLiteral(term.Const("p"), false)
	big := clause.NewLiteral(term.Const("q"), false)
	c := clause.NewClause("", "", []*clause.Literal{small, big})

	ApplyOrdered(ocb, c)

	assert.False(t, small.IsInferenceLit())
	assert.True(t, big.IsInferenceLit())
}
