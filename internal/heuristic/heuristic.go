// Package heuristic implements clause evaluation functions and the
// weighted round-robin scheduler ("evaluation structure") that picks
// which evaluator governs the next given-clause extraction.
package heuristic

import "github.com/gologic/satprove/internal/clause"

// EvalFunc scores a clause; lower is better.
type EvalFunc interface {
	Eval(c *clause.Clause) float64
	Name() string
}

// FIFOEvaluation assigns a monotonically increasing score on every
// call, implementing pure insertion-order (breadth-first) scheduling.
type FIFOEvaluation struct {
	counter float64
}

func NewFIFOEvaluation() *FIFOEvaluation { return &FIFOEvaluation{} }

func (f *FIFOEvaluation) Name() string { return "FIFO" }

func (f *FIFOEvaluation) Eval(c *clause.Clause) float64 {
	f.counter++
	return f.counter
}

// SymbolCountEvaluation scores a clause by its weight under
// configurable function- and variable-symbol weights (defaults 2 and
// 1, matching the spec's default SymbolCount preset).
type SymbolCountEvaluation struct {
	FunWeight int
	VarWeight int
}

func NewSymbolCountEvaluation(funWeight, varWeight int) *SymbolCountEvaluation {
	return &SymbolCountEvaluation{FunWeight: funWeight, VarWeight: varWeight}
}

func (s *SymbolCountEvaluation) Name() string { return "SymbolCount" }

func (s *SymbolCountEvaluation) Eval(c *clause.Clause) float64 {
	return float64(c.Weight(s.FunWeight, s.VarWeight))
}

// evalSlot is one (evaluator, frequency) pair in an evaluation
// structure.
type evalSlot struct {
	fn    EvalFunc
	freq  int
}

// EvalStructure is an ordered list of (evaluator, frequency) pairs
// used both to compute a clause's evaluation vector on insertion, and
// to pick, round-robin fashion weighted by frequency, which
// evaluator's score governs the next best-clause extraction.
type EvalStructure struct {
	slots        []evalSlot
	current      int
	currentCount int
}

// NewEvalStructure builds a structure from evaluators paired with
// their frequency. A zero-frequency entry is skipped by NextEval but
// still contributes a column to every clause's evaluation vector.
func NewEvalStructure(pairs ...struct {
	Fn   EvalFunc
	Freq int
}) *EvalStructure {
	slots := make([]evalSlot, len(pairs))
	for i, p := range pairs {
		slots[i] = evalSlot{fn: p.Fn, freq: p.Freq}
	}
	es := &EvalStructure{slots: slots}
	if len(slots) > 0 {
		es.currentCount = slots[0].freq
	}
	return es
}

// Evaluate computes the full evaluation vector for a clause, one
// entry per configured evaluator, in slot order.
func (es *EvalStructure) Evaluate(c *clause.Clause) []float64 {
	vec := make([]float64, len(es.slots))
	for i, s := range es.slots {
		vec[i] = s.fn.Eval(c)
	}
	return vec
}

// NextEval returns the index of the evaluator that should govern the
// next best-clause extraction, consuming one unit of the current
// slot's frequency and rotating (skipping zero-frequency slots) on
// exhaustion.
func (es *EvalStructure) NextEval() int {
	if len(es.slots) == 0 {
		return 0
	}
	if es.currentCount <= 0 {
		es.rotate()
	}
	idx := es.current
	es.currentCount--
	if es.currentCount <= 0 {
		es.rotate()
	}
	return idx
}

func (es *EvalStructure) rotate() {
	for i := 0; i < len(es.slots); i++ {
		es.current = (es.current + 1) % len(es.slots)
		if es.slots[es.current].freq > 0 {
			es.currentCount = es.slots[es.current].freq
			return
		}
	}
}

func slot(fn EvalFunc, freq int) struct {
	Fn   EvalFunc
	Freq int
} {
	return struct {
		Fn   EvalFunc
		Freq int
	}{Fn: fn, Freq: freq}
}

// FIFOEval is the [(FIFO,1)] preset.
func FIFOEval() *EvalStructure {
	return NewEvalStructure(slot(NewFIFOEvaluation(), 1))
}

// SymbolCountEval is the [(SymbolCount,1)] preset.
func SymbolCountEval() *EvalStructure {
	return NewEvalStructure(slot(NewSymbolCountEvaluation(2, 1), 1))
}

// PickGiven5 is the [(SymbolCount,5),(FIFO,1)] preset.
func PickGiven5() *EvalStructure {
	return NewEvalStructure(
		slot(NewSymbolCountEvaluation(2, 1), 5),
		slot(NewFIFOEvaluation(), 1),
	)
}

// PickGiven2 is the [(SymbolCount,2),(FIFO,1)] preset.
func PickGiven2() *EvalStructure {
	return NewEvalStructure(
		slot(NewSymbolCountEvaluation(2, 1), 2),
		slot(NewFIFOEvaluation(), 1),
	)
}

// GivenClauseHeuristics maps the CLI-facing preset names to their
// constructor.
var GivenClauseHeuristics = map[string]func() *EvalStructure{
	"FIFO":         FIFOEval,
	"SymbolCount":  SymbolCountEval,
	"PickGiven5":   PickGiven5,
	"PickGiven2":   PickGiven2,
}
