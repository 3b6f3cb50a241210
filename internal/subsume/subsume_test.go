package subsume

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/term"
)

func lit(sym string, negative bool, args ...term.Term) *clause.Literal {
	return clause.NewLiteral(term.NewApp(sym, args...), negative)
}

func TestSubsumesSimpleInstance(t *testing.T) {
	// p(X) subsumes p(a)|q(b).
	c := clause.NewClause("", "", []*clause.Literal{lit("p", false, term.NewVar("X"))})
	d := clause.NewClause("", "", []*clause.Literal{
		lit("p", false, term.Const("a")),
		lit("q", false, term.Const("b")),
	})
	assert.True(t, Subsumes(c, d))
}

func TestSubsumesFailsOnPolarityMismatch(t *testing.T) {
	c := clause.NewClause("", "", []*clause.Literal{lit("p", true, term.NewVar("X"))})
	d := clause.NewClause("", "", []*clause.Literal{lit("p", false, term.Const("a"))})
	assert.False(t, Subsumes(c, d))
}

func TestSubsumesFailsWhenLonger(t *testing.T) {
	c := clause.NewClause("", "", []*clause.Literal{
		lit("p", false, term.NewVar("X")),
		lit("q", false, term.NewVar("Y")),
	})
	d := clause.NewClause("", "", []*clause.Literal{lit("p", false, term.Const("a"))})
	assert.False(t, Subsumes(c, d))
}

func TestSubsumesMultisetRequiresDistinctPartners(t *testing.T) {
	// p(X)|p(Y) does not subsume p(a) alone (needs two D literals).
	c := clause.NewClause("", "", []*clause.Literal{
		lit("p", false, term.NewVar("X")),
		lit("p", false, term.NewVar("Y")),
	})
	d := clause.NewClause("", "", []*clause.Literal{lit("p", false, term.Const("a"))})
	assert.False(t, Subsumes(c, d))
}
