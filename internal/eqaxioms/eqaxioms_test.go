package eqaxioms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gologic/satprove/internal/term"
)

func TestGenerateEquivAxiomsReturnsThree(t *testing.T) {
	ax := GenerateEquivAxioms()
	require.Len(t, ax, 3)
	assert.Equal(t, 1, ax[0].Len())
	assert.Equal(t, 2, ax[1].Len())
	assert.Equal(t, 3, ax[2].Len())
}

func TestGenerateFunCompatAxHasArityPlusOneLiterals(t *testing.T) {
	ax := GenerateFunCompatAx("f", 3)
	assert.Equal(t, 4, ax.Len())
}

func TestGeneratePredCompatAxHasArityPlusTwoLiterals(t *testing.T) {
	ax := GeneratePredCompatAx("p", 5)
	assert.Equal(t, 7, ax.Len())
}

func TestGenerateCompatAxiomsSkipsConstantsAndEquality(t *testing.T) {
	sig := term.NewSignature()
	sig.AddFun("f", 2)
	sig.AddPred("p", 3)
	sig.AddFun("a", 0)

	ax := GenerateCompatAxioms(sig)
	// One for f, one for p; "a" (arity 0) and "=" are excluded.
	assert.Len(t, ax, 2)
}
