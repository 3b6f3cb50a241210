// Package kbo implements the Knuth-Bendix term ordering used to
// restrict which literals may be resolved upon (ordered resolution).
package kbo

// OCB (order-control block) carries the weight function and
// precedence needed by KBO: a function-symbol weight mapping, a
// function-symbol precedence (assigned in first-registration order),
// and a strictly positive variable weight.
type OCB struct {
	VarWeight int

	weight map[string]int
	prec   map[string]int
	next   int
}

// precMinSymbol is the precedence minimum by convention.
const precMinSymbol = "$True"

// NewOCB builds an empty order-control block with the given variable
// weight (must be strictly positive).
func NewOCB(varWeight int) *OCB {
	o := &OCB{
		VarWeight: varWeight,
		weight:    make(map[string]int),
		prec:      make(map[string]int),
	}
	o.prec[precMinSymbol] = -1
	return o
}

// SetWeight assigns the weight of a function symbol. Symbols never
// given a weight here default to weight 1.
func (o *OCB) SetWeight(sym string, w int) {
	o.weight[sym] = w
}

func (o *OCB) Weight(sym string) int {
	if sym == precMinSymbol {
		return 0
	}
	if w, ok := o.weight[sym]; ok {
		return w
	}
	return 1
}

// Register assigns the next precedence slot to sym if it has not
// already been registered. Precedence is therefore derived from the
// order in which symbols are first registered.
func (o *OCB) Register(sym string) {
	if sym == precMinSymbol {
		return
	}
	if _, ok := o.prec[sym]; ok {
		return
	}
	o.prec[sym] = o.next
	o.next++
}

// Precedence returns the precedence slot of sym, registering it on
// first use if unseen (so an unexpected symbol never panics; it is
// simply given the next free, and hence highest, precedence).
func (o *OCB) Precedence(sym string) int {
	if sym == precMinSymbol {
		return -1
	}
	if p, ok := o.prec[sym]; ok {
		return p
	}
	o.Register(sym)
	return o.prec[sym]
}

// ComparePrecedence returns -1, 0, or 1 according to whether f has
// lower, equal, or higher precedence than g.
func (o *OCB) ComparePrecedence(f, g string) int {
	pf, pg := o.Precedence(f), o.Precedence(g)
	switch {
	case pf < pg:
		return -1
	case pf > pg:
		return 1
	default:
		return 0
	}
}

// CountSymbols tallies the frequency of each function/predicate head
// symbol across a set of literal atoms, used to initialise a
// frequency-ordered OCB.
func CountSymbols(atomsSeq [][]string) map[string]int {
	counts := make(map[string]int)
	for _, funs := range atomsSeq {
		for _, f := range funs {
			counts[f]++
		}
	}
	return counts
}

// InitOCB builds an OCB from a symbol-frequency map, registering
// symbols in descending-frequency order (ties broken alphabetically
// for determinism) so the most frequently occurring symbols receive
// the earliest, and hence lowest, precedence. option selects the
// uniform function weight: 1 (default) or 2.
func InitOCB(symbolCount map[string]int, option int) *OCB {
	varWeight := 1
	funWeight := 1
	if option == 2 {
		funWeight = 2
	}
	ocb := NewOCB(varWeight)

	syms := make([]string, 0, len(symbolCount))
	for s := range symbolCount {
		syms = append(syms, s)
	}
	sortByFreqDesc(syms, symbolCount)

	for _, s := range syms {
		ocb.SetWeight(s, funWeight)
		ocb.Register(s)
	}
	return ocb
}

func sortByFreqDesc(syms []string, counts map[string]int) {
	for i := 1; i < len(syms); i++ {
		for j := i; j > 0; j-- {
			a, b := syms[j-1], syms[j]
			if counts[a] < counts[b] || (counts[a] == counts[b] && a > b) {
				syms[j-1], syms[j] = syms[j], syms[j-1]
			} else {
				break
			}
		}
	}
}
