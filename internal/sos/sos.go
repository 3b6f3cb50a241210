// Package sos implements the set-of-support strategies: a partition
// of the initial clause set into a model-consistent base set and the
// set-of-support, plus a ratio-based policy for how often the
// given-clause loop should prefer drawing from one side or the other.
package sos

import "github.com/gologic/satprove/internal/clause"

// Strategy partitions a clause set into SOS and non-SOS members and
// decides, via Ratio, how often the saturation loop should prefer
// drawing the next given clause from the SOS.
type Strategy interface {
	// ShouldMarkClause reports whether c belongs in the SOS under this
	// strategy's partition rule.
	ShouldMarkClause(c *clause.Clause) bool
	// ShouldApply reports whether the *next* given-clause selection
	// should prefer the SOS, consuming one step of the ratio counter.
	ShouldApply() bool
	// Ratio returns the configured ratio (0 means strict SOS).
	Ratio() int
}

// MarkSOS iterates every clause in clauses, setting its PartOfSOS
// flag according to strategy, and returns the count marked.
func MarkSOS(strategy Strategy, clauses []*clause.Clause) int {
	count := 0
	for _, c := range clauses {
		if strategy.ShouldMarkClause(c) {
			c.PartOfSOS = true
			count++
		} else {
			c.PartOfSOS = false
		}
	}
	return count
}

type base struct {
	ratio   int
	current int
}

func (b *base) Ratio() int { return b.ratio }

func (b *base) shouldApplyRatio() bool {
	if b.ratio == 0 {
		return true
	}
	b.current++
	if b.current > b.ratio {
		b.current = 0
		return false
	}
	return true
}

// NoSos marks no clause as SOS and never prefers the SOS side; it is
// the placeholder strategy when set-of-support is disabled.
type NoSos struct{ base }

func NewNoSos() *NoSos                                  { return &NoSos{} }
func (n *NoSos) ShouldMarkClause(c *clause.Clause) bool { return false }
func (n *NoSos) ShouldApply() bool                      { return false }

// Conjecture puts every negated_conjecture clause into the SOS.
type Conjecture struct {
	base
}

func NewConjecture(ratio int) *Conjecture { return &Conjecture{base{ratio: ratio}} }

func (c *Conjecture) ShouldMarkClause(cl *clause.Clause) bool {
	return cl.Type == clause.TypeNegatedConjecture
}
func (c *Conjecture) ShouldApply() bool { return c.shouldApplyRatio() }

// OnlyNegLit puts every all-negative clause into the SOS.
type OnlyNegLit struct{ base }

func NewOnlyNegLit(ratio int) *OnlyNegLit { return &OnlyNegLit{base{ratio: ratio}} }

func (o *OnlyNegLit) ShouldMarkClause(cl *clause.Clause) bool {
	for _, l := range cl.Literals {
		if l.IsPositive() {
			return false
		}
	}
	return true
}
func (o *OnlyNegLit) ShouldApply() bool { return o.shouldApplyRatio() }

// OnlyPosLit puts every all-positive clause into the SOS.
type OnlyPosLit struct{ base }

func NewOnlyPosLit(ratio int) *OnlyPosLit { return &OnlyPosLit{base{ratio: ratio}} }

func (o *OnlyPosLit) ShouldMarkClause(cl *clause.Clause) bool {
	for _, l := range cl.Literals {
		if l.IsNegative() {
			return false
		}
	}
	return true
}
func (o *OnlyPosLit) ShouldApply() bool { return o.shouldApplyRatio() }

// GivenSOSStrategies maps the CLI-facing strategy names to their
// constructor, each taking the configured ratio.
var GivenSOSStrategies = map[string]func(ratio int) Strategy{
	"NoSos":      func(ratio int) Strategy { return NewNoSos() },
	"Conjecture": func(ratio int) Strategy { return NewConjecture(ratio) },
	"OnlyNegLit": func(ratio int) Strategy { return NewOnlyNegLit(ratio) },
	"OnlyPosLit": func(ratio int) Strategy { return NewOnlyPosLit(ratio) },
}
