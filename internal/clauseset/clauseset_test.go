package clauseset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/heuristic"
	"github.com/gologic/satprove/internal/sos"
	"github.com/gologic/satprove/internal/term"
)

func unit(sym string) *clause.Clause {
	lit := clause.NewLiteral(term.Const(sym), false)
	return clause.NewClause("", "", []*clause.Literal{lit})
}

func TestSetAddRemoveContains(t *testing.T) {
	s := NewSet()
	c := unit("p")
	s.Add(c)
	assert.True(t, s.Contains(c))
	assert.Equal(t, 1, s.Len())
	s.Remove(c)
	assert.False(t, s.Contains(c))
	assert.Equal(t, 0, s.Len())
}

func TestHeuristicClauseSetExtractsLightestFirst(t *testing.T) {
	es := heuristic.NewEvalStructure(struct {
		Fn   heuristic.EvalFunc
		Freq int
	}{heuristic.NewSymbolCountEvaluation(1, 1), 1})
	h := NewHeuristicClauseSet(es, sos.NewNoSos())

	light := unit("p")
	heavyLit := clause.NewLiteral(term.NewApp("q", term.Const("a"), term.Const("b")), false)
	heavy := clause.NewClause("", "", []*clause.Literal{heavyLit})

	h.Add(heavy)
	h.Add(light)

	best, ok := h.ExtractBest()
	require.True(t, ok)
	assert.Same(t, light, best)
	assert.Equal(t, 1, h.Len())
}

func TestHeuristicClauseSetPrefersSOSWhenRatioZero(t *testing.T) {
	es := heuristic.NewEvalStructure(struct {
		Fn   heuristic.EvalFunc
		Freq int
	}{heuristic.NewFIFOEvaluation(), 1})
	h := NewHeuristicClauseSet(es, sos.NewConjecture(0))

	nc := clause.NewClause("", clause.TypeNegatedConjecture, []*clause.Literal{
		clause.NewLiteral(term.Const("p"), true),
	})
	ax := unit("q")

	h.Add(ax)
	h.Add(nc)

	best, ok := h.ExtractBest()
	require.True(t, ok)
	assert.Same(t, nc, best)
	assert.True(t, best.PartOfSOS)
}

func TestIndexedSetKeepsIndicesInSync(t *testing.T) {
	s := NewIndexedSet()
	c := clause.NewClause("c1", "", []*clause.Literal{
		clause.NewLiteral(term.Const("p"), false),
	})
	s.Add(c)
	assert.True(t, s.Subsumption.IsIndexed(c))
	s.Remove(c)
	assert.False(t, s.Subsumption.IsIndexed(c))
}
