package kbo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gologic/satprove/internal/term"
)

func buildOCB() *OCB {
	ocb := NewOCB(1)
	ocb.SetWeight("a", 1)
	ocb.SetWeight("b", 1)
	ocb.SetWeight("f", 1)
	ocb.SetWeight("g", 1)
	ocb.Register("a")
	ocb.Register("b")
	ocb.Register("f")
	ocb.Register("g")
	return ocb
}

func TestGroundTotality(t *testing.T) {
	ocb := buildOCB()
	a, b := term.Const("a"), term.Const("b")
	res := Compare(ocb, a, b)
	assert.NotEqual(t, Uncomparable, res)
}

func TestEqualGroundTerms(t *testing.T) {
	ocb := buildOCB()
	f1 := term.NewApp("f", term.Const("a"))
	f2 := term.NewApp("f", term.Const("a"))
	assert.Equal(t, Equal, Compare(ocb, f1, f2))
}

func TestWeightDominates(t *testing.T) {
	ocb := buildOCB()
	heavy := term.NewApp("f", term.Const("a"), term.Const("b"))
	light := term.Const("a")
	assert.Equal(t, Greater, Compare(ocb, heavy, light))
	assert.Equal(t, Lesser, Compare(ocb, light, heavy))
}

func TestDistinctVariablesAreUncomparable(t *testing.T) {
	ocb := buildOCB()
	x := term.NewVar("X")
	y := term.NewVar("Y")
	assert.Equal(t, Uncomparable, Compare(ocb, x, y))
}

func TestVariableConditionBlocksStrictOutcome(t *testing.T) {
	ocb := buildOCB()
	x := term.NewVar("X")
	y := term.NewVar("Y")
	// f(X,X) carries two occurrences of X and none of Y; g(Y) carries
	// one occurrence of Y. Neither side's variable occurrences
	// dominate the other's, so despite differing weights the terms
	// must be uncomparable rather than strictly ordered.
	fxx := term.NewApp("f", x, x)
	gy := term.NewApp("g", y)
	assert.Equal(t, Uncomparable, Compare(ocb, fxx, gy))
}

func TestVariableIsLesserThanTermContainingIt(t *testing.T) {
	ocb := buildOCB()
	x := term.NewVar("X")
	wrapped := term.NewApp("f", x)
	assert.Equal(t, Lesser, Compare(ocb, x, wrapped))
	assert.Equal(t, Greater, Compare(ocb, wrapped, x))
}
