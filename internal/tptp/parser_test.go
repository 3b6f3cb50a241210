package tptp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gologic/satprove/internal/clause"
)

func TestParseCnfUnitClause(t *testing.T) {
	clauses, err := ParseString(`cnf(c1, axiom, p(a)).`, "test", ".")
	require.NoError(t, err)
	require.Len(t, clauses, 1)
	c := clauses[0]
	assert.Equal(t, "c1", c.Name)
	assert.Equal(t, clause.TypeAxiom, c.Type)
	require.Len(t, c.Literals, 1)
	assert.Equal(t, "p", c.Literals[0].Atom.Head())
	assert.False(t, c.Literals[0].IsNegative())
}

func TestParseCnfMultiLiteralWithNegationAndParens(t *testing.T) {
	clauses, err := ParseString(`cnf(c2, plain, (~p(X) | q(X,a))).`, "test", ".")
	require.NoError(t, err)
	require.Len(t, clauses, 1)
	require.Len(t, clauses[0].Literals, 2)
	assert.True(t, clauses[0].Literals[0].IsNegative())
	assert.False(t, clauses[0].Literals[1].IsNegative())
}

func TestParseCnfFalseLiteralDropped(t *testing.T) {
	clauses, err := ParseString(`cnf(c3, axiom, ($false)).`, "test", ".")
	require.NoError(t, err)
	require.Len(t, clauses, 1)
	assert.True(t, clauses[0].IsEmpty())
}

func TestParseCnfEqualityAndDisequality(t *testing.T) {
	clauses, err := ParseString(`cnf(c4, axiom, (a=b | a!=c)).`, "test", ".")
	require.NoError(t, err)
	require.Len(t, clauses[0].Literals, 2)
	assert.True(t, clauses[0].Literals[0].IsEquational())
	assert.False(t, clauses[0].Literals[0].IsNegative())
	assert.True(t, clauses[0].Literals[1].IsEquational())
	assert.True(t, clauses[0].Literals[1].IsNegative())
}

func TestParseFofConjunctionDistributesToTwoClauses(t *testing.T) {
	clauses, err := ParseString(`fof(f1, axiom, p(a) & q(a)).`, "test", ".")
	require.NoError(t, err)
	assert.Len(t, clauses, 2)
	for _, c := range clauses {
		assert.Equal(t, clause.TypeAxiom, c.Type)
	}
}

func TestParseFofConjectureIsNegated(t *testing.T) {
	clauses, err := ParseString(`fof(f2, conjecture, p(a)).`, "test", ".")
	require.NoError(t, err)
	require.Len(t, clauses, 1)
	assert.Equal(t, clause.TypeNegatedConjecture, clauses[0].Type)
	assert.True(t, clauses[0].Literals[0].IsNegative())
}

func TestParseFofQuantifiedImplication(t *testing.T) {
	clauses, err := ParseString(`fof(f3, axiom, ![X]: (p(X) => q(X))).`, "test", ".")
	require.NoError(t, err)
	require.Len(t, clauses, 1)
	require.Len(t, clauses[0].Literals, 2)
}

func TestParseIncludeResolvesRelativeToIncludingFile(t *testing.T) {
	dir := t.TempDir()
	included := filepath.Join(dir, "axioms.ax")
	require.NoError(t, os.WriteFile(included, []byte(`cnf(ax1, axiom, p(a)).`), 0o644))
	main := filepath.Join(dir, "main.p")
	require.NoError(t, os.WriteFile(main, []byte(`include('axioms.ax').
cnf(c1, axiom, q(a)).`), 0o644))

	clauses, err := ParseFile(main)
	require.NoError(t, err)
	require.Len(t, clauses, 2)
	assert.Equal(t, "ax1", clauses[0].Name)
	assert.Equal(t, "c1", clauses[1].Name)
}

func TestParseIncludeMissingFileReturnsIncludeError(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "main.p")
	require.NoError(t, os.WriteFile(main, []byte(`include('nonexistent.ax').`), 0o644))

	_, err := ParseFile(main)
	require.Error(t, err)
	var incErr *IncludeError
	assert.ErrorAs(t, err, &incErr)
}

func TestParseUnknownTopLevelFormReturnsParseError(t *testing.T) {
	_, err := ParseString(`bogus(c1, axiom, p(a)).`, "test", ".")
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLexerRejectsIllegalCharacter(t *testing.T) {
	_, err := ParseString("cnf(c1, axiom, p(a)) ^.", "test", ".")
	require.Error(t, err)
	var lexErr *LexError
	assert.ErrorAs(t, err, &lexErr)
}
