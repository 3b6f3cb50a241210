package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(args ...Term) Term { return NewApp("f", args...) }
func g(args ...Term) Term { return NewApp("g", args...) }
func a() Term              { return Const("a") }
func b() Term              { return Const("b") }
func X() Term               { return NewVar("X") }
func Y() Term               { return NewVar("Y") }

func TestWeight(t *testing.T) {
	assert.Equal(t, 3, f(a(), b()).Weight(1, 1))
	assert.Equal(t, 6, g(a()).Weight(3, 1))
	assert.Equal(t, 1, X().Weight(1, 1))
}

func TestGroundAndVars(t *testing.T) {
	term := f(X(), g(a(), Y()))
	assert.False(t, term.IsGround())
	assert.True(t, f(a(), b()).IsGround())
	assert.Equal(t, []string{"X", "Y"}, VarSet(term))
}

func TestEqualAndCopy(t *testing.T) {
	t1 := f(X(), a())
	t2 := f(X(), a())
	assert.True(t, t1.Equal(t2))

	cp := t1.Copy()
	assert.True(t, t1.Equal(cp))
	cp.(*App).Arg[1] = b()
	assert.False(t, t1.Equal(cp), "copy must not alias the original's arguments")
}

func TestMGUSolvesSimpleCase(t *testing.T) {
	// f(X, a) unifies with f(b, a) via X -> b.
	s, ok := MGU(f(X(), a()), f(b(), a()))
	require.True(t, ok)
	bound, ok := s.Value("X")
	require.True(t, ok)
	assert.True(t, bound.Equal(b()))
}

func TestMGUOccursCheckFails(t *testing.T) {
	_, ok := MGU(X(), f(X()))
	assert.False(t, ok)
}

func TestMGUHeadMismatchFails(t *testing.T) {
	_, ok := MGU(f(a()), g(a()))
	assert.False(t, ok)
}

func TestMGUSoundness(t *testing.T) {
	s1, s2 := f(X(), a()), f(b(), Y())
	s, ok := MGU(s1, s2)
	require.True(t, ok)
	assert.True(t, s.Apply(s1).Equal(s.Apply(s2)))
}

func TestMatchOneSided(t *testing.T) {
	bt := NewBTSubst()
	ok := Match(f(X(), a()), f(b(), a()), bt)
	require.True(t, ok)
	bound, _ := bt.Value("X")
	assert.True(t, bound.Equal(b()))

	// Matching never instantiates the target: re-applying bt to the
	// target term must be a no-op.
	assert.True(t, bt.Apply(f(b(), a())).Equal(f(b(), a())))
}

func TestMatchFailureLeavesNoBindings(t *testing.T) {
	bt := NewBTSubst()
	bt.AddBinding("Z", a())
	state := bt.State()

	ok := Match(f(X(), a()), f(b(), b()), bt)
	assert.False(t, ok)
	assert.Equal(t, state, bt.State())
	bound, _ := bt.Value("Z")
	assert.True(t, bound.Equal(a()), "unrelated prior binding must survive a failed match")
}

func TestBacktrackRoundTrip(t *testing.T) {
	bt := NewBTSubst()
	bt.AddBinding("X", a())
	state := bt.State()
	bt.AddBinding("Y", b())
	bt.BacktrackToState(state)

	assert.False(t, bt.IsBound("Y"))
	assert.True(t, bt.IsBound("X"))
}

func TestSignatureBasics(t *testing.T) {
	sig := NewSignature()
	sig.AddFun("mult", 2)
	sig.AddFun("a", 0)
	sig.AddPred("weird", 4)

	assert.True(t, sig.IsPred("weird"))
	assert.False(t, sig.IsPred("unknown"))
	assert.False(t, sig.IsPred("a"))
	assert.True(t, sig.IsFun("a"))
	assert.True(t, sig.IsConstant("a"))
	assert.False(t, sig.IsFun("unknown"))
	assert.Equal(t, 0, sig.Arity("a"))
	assert.Equal(t, 4, sig.Arity("weird"))
}
