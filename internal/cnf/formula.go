// Package cnf implements a thin first-order formula clausifier: NNF
// conversion, Skolemization, and CNF distribution for the common
// (non-pathological) case the TPTP fof syntax produces in practice.
// It deliberately does not implement every optimization a full
// clausifier would (renaming to avoid exponential blowup, miniscoping
// heuristics); it covers the straightforward path well enough to turn
// an everyday fof conjecture/axiom into clausal form.
package cnf

import "github.com/gologic/satprove/internal/term"

// Formula is a first-order formula as produced by the fof parser.
type Formula interface {
	isFormula()
}

// Atomic wraps a literal atom (an application term, possibly headed
// by "=").
type Atomic struct {
	Atom     term.Term
	Negative bool
}

// Not negates a sub-formula.
type Not struct{ Sub Formula }

// BinOp is a binary connective: one of &, |, =>, <=, <=>, <~>, ~&, ~|.
type BinOp struct {
	Op          string
	Left, Right Formula
}

// Quant is a quantified formula: ![X,...]:Body or ?[X,...]:Body.
type Quant struct {
	Universal bool
	Vars      []string
	Body      Formula
}

func (Atomic) isFormula() {}
func (Not) isFormula()    {}
func (BinOp) isFormula()  {}
func (Quant) isFormula()  {}
