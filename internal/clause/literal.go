// Package clause implements literals, clauses, and their derivation
// justifications.
package clause

import (
	"strings"

	"github.com/gologic/satprove/internal/term"
)

// Literal is a signed atom: an atom (an application term whose head
// is a predicate symbol) together with a polarity flag and an
// inference-literal flag (true by default).
type Literal struct {
	Atom         term.Term
	Negative     bool
	InferenceLit bool
}

// NewLiteral builds a literal from a parsed atom, normalising the
// surface "!=" operator to an equality atom with inverted polarity.
// After normalisation, an atom's head is never "!=".
func NewLiteral(atom term.Term, negative bool) *Literal {
	if atom.Head() == "!=" {
		atom = term.NewApp("=", atom.Args()...)
		negative = !negative
	}
	return &Literal{Atom: atom, Negative: negative, InferenceLit: true}
}

func (l *Literal) IsNegative() bool { return l.Negative }
func (l *Literal) IsPositive() bool { return !l.Negative }

func (l *Literal) IsEquational() bool { return l.Atom.Head() == "=" }

// IsPureVarLit reports whether the literal is an equality between two
// variables, X=Y.
func (l *Literal) IsPureVarLit() bool {
	if !l.IsEquational() {
		return false
	}
	args := l.Atom.Args()
	return len(args) == 2 && args[0].IsVar() && args[1].IsVar()
}

func (l *Literal) SetInferenceLit(v bool) { l.InferenceLit = v }
func (l *Literal) IsInferenceLit() bool   { return l.InferenceLit }

// IsPropTrue reports whether the literal is a propositionally true
// occurrence: positive $true, or negative $false.
func (l *Literal) IsPropTrue() bool {
	head := l.Atom.Head()
	return (head == "$true" && l.IsPositive()) || (head == "$false" && l.IsNegative())
}

// IsPropFalse reports whether the literal is a propositionally false
// occurrence: positive $false, or negative $true.
func (l *Literal) IsPropFalse() bool {
	head := l.Atom.Head()
	return (head == "$false" && l.IsPositive()) || (head == "$true" && l.IsNegative())
}

// IsEqual reports whether l and other have the same atom and polarity.
func (l *Literal) IsEqual(other *Literal) bool {
	return l.Negative == other.Negative && l.Atom.Equal(other.Atom)
}

// IsOpposite reports whether l and other have the same atom and
// opposite polarity.
func (l *Literal) IsOpposite(other *Literal) bool {
	return l.Negative != other.Negative && l.Atom.Equal(other.Atom)
}

// Negate returns the logical negation of l.
func (l *Literal) Negate() *Literal {
	return &Literal{Atom: l.Atom, Negative: !l.Negative, InferenceLit: l.InferenceLit}
}

func (l *Literal) CollectVars(seen map[string]bool, order *[]string) {
	term.CollectVars(l.Atom, seen, order)
}

func (l *Literal) CollectFuns(seen map[string]bool) {
	term.CollectFuns(l.Atom, seen)
}

func (l *Literal) Weight(funWeight, varWeight int) int {
	return l.Atom.Weight(funWeight, varWeight)
}

// Instantiate applies env to the literal's atom, preserving polarity
// and inference-literal flag.
func (l *Literal) Instantiate(env map[string]term.Term) *Literal {
	return &Literal{Atom: term.Apply(l.Atom, env), Negative: l.Negative, InferenceLit: l.InferenceLit}
}

// Match attempts to extend bt so that bt(l.Atom) equals other.Atom,
// requiring equal polarity as a guard before delegating to term
// matching.
func (l *Literal) Match(other *Literal, bt *term.BTSubst) bool {
	if l.Negative != other.Negative {
		return false
	}
	return term.Match(l.Atom, other.Atom, bt)
}

// PredAbs is one entry of a clause's predicate abstraction: the
// polarity and head symbol of one literal.
type PredAbs struct {
	Negative bool
	Head     string
}

func (l *Literal) predAbs() PredAbs {
	return PredAbs{Negative: l.Negative, Head: l.Atom.Head()}
}

func (l *Literal) String() string {
	var b strings.Builder
	if l.Negative {
		b.WriteByte('~')
	}
	b.WriteString(l.Atom.String())
	return b.String()
}
