package sos

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/term"
)

func unit(typ string, negative bool) *clause.Clause {
	lit := clause.NewLiteral(term.Const("p"), negative)
	return clause.NewClause("", typ, []*clause.Literal{lit})
}

func TestNoSosMarksNothing(t *testing.T) {
	s := NewNoSos()
	c := unit(clause.TypeNegatedConjecture, true)
	assert.False(t, s.ShouldMarkClause(c))
	assert.False(t, s.ShouldApply())
}

func TestConjectureMarksNegatedConjectureOnly(t *testing.T) {
	s := NewConjecture(0)
	nc := unit(clause.TypeNegatedConjecture, true)
	ax := unit(clause.TypeAxiom, true)
	assert.True(t, s.ShouldMarkClause(nc))
	assert.False(t, s.ShouldMarkClause(ax))
}

func TestRatioZeroAlwaysApplies(t *testing.T) {
	s := NewConjecture(0)
	for i := 0; i < 5; i++ {
		assert.True(t, s.ShouldApply())
	}
}

func TestRatioTwoAppliesTwiceThenSkips(t *testing.T) {
	s := NewConjecture(2)
	assert.True(t, s.ShouldApply())
	assert.True(t, s.ShouldApply())
	assert.False(t, s.ShouldApply())
	assert.True(t, s.ShouldApply())
}

func TestOnlyNegLitRequiresAllNegative(t *testing.T) {
	s := NewOnlyNegLit(0)
	allNeg := clause.NewClause("", "", []*clause.Literal{
		clause.NewLiteral(term.Const("p"), true),
		clause.NewLiteral(term.Const("q"), true),
	})
	mixed := clause.NewClause("", "", []*clause.Literal{
		clause.NewLiteral(term.Const("p"), true),
		clause.NewLiteral(term.Const("q"), false),
	})
	assert.True(t, s.ShouldMarkClause(allNeg))
	assert.False(t, s.ShouldMarkClause(mixed))
}

func TestOnlyPosLitRequiresAllPositive(t *testing.T) {
	s := NewOnlyPosLit(0)
	allPos := clause.NewClause("", "", []*clause.Literal{
		clause.NewLiteral(term.Const("p"), false),
	})
	mixed := clause.NewClause("", "", []*clause.Literal{
		clause.NewLiteral(term.Const("p"), false),
		clause.NewLiteral(term.Const("q"), true),
	})
	assert.True(t, s.ShouldMarkClause(allPos))
	assert.False(t, s.ShouldMarkClause(mixed))
}

func TestMarkSOSSetsFlagsAndCounts(t *testing.T) {
	s := NewConjecture(0)
	nc := unit(clause.TypeNegatedConjecture, true)
	ax := unit(clause.TypeAxiom, true)
	count := MarkSOS(s, []*clause.Clause{nc, ax})
	assert.Equal(t, 1, count)
	assert.True(t, nc.PartOfSOS)
	assert.False(t, ax.PartOfSOS)
}

func TestGivenSOSStrategiesConstructsByName(t *testing.T) {
	ctor, ok := GivenSOSStrategies["Conjecture"]
	assert.True(t, ok)
	s := ctor(0)
	assert.Equal(t, 0, s.Ratio())
}
