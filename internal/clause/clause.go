package clause

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/gologic/satprove/internal/term"
)

const (
	TypeAxiom            = "axiom"
	TypeNegatedConjecture = "negated_conjecture"
	TypePlain             = "plain"
)

var nameCounter int64

func nextName() string {
	n := atomic.AddInt64(&nameCounter, 1)
	return "c" + strconv.FormatInt(n-1, 10)
}

// Clause is a finite ordered sequence of literals together with
// bookkeeping metadata: a type tag, a unique name, a derivation
// reference, an evaluation vector, and a set-of-support flag.
// Literals that are propositionally false are dropped at
// construction.
type Clause struct {
	Name       string
	Type       string
	Literals   []*Literal
	Deriv      *Derivation
	Evaluation []float64
	PartOfSOS  bool

	refCount int
}

// NewClause builds a clause, dropping any propositionally-false
// literal ($false, or ~$true). An empty name triggers auto-naming
// with the c<N> scheme.
func NewClause(name, typ string, lits []*Literal) *Clause {
	kept := make([]*Literal, 0, len(lits))
	for _, l := range lits {
		if !l.IsPropFalse() {
			kept = append(kept, l)
		}
	}
	if name == "" {
		name = nextName()
	}
	if typ == "" {
		typ = TypePlain
	}
	return &Clause{Name: name, Type: typ, Literals: kept}
}

func (c *Clause) Len() int        { return len(c.Literals) }
func (c *Clause) IsEmpty() bool   { return len(c.Literals) == 0 }
func (c *Clause) IsUnit() bool    { return len(c.Literals) == 1 }

func (c *Clause) IsHorn() bool {
	positives := 0
	for _, l := range c.Literals {
		if l.IsPositive() {
			positives++
		}
	}
	return positives <= 1
}

func (c *Clause) GetLiteral(i int) *Literal { return c.Literals[i] }

func (c *Clause) GetNegativeLits() []*Literal {
	var res []*Literal
	for _, l := range c.Literals {
		if l.IsNegative() {
			res = append(res, l)
		}
	}
	return res
}

// CollectVars returns the distinct variable names across every
// literal, in first-occurrence order.
func (c *Clause) CollectVars() []string {
	seen := make(map[string]bool)
	var order []string
	for _, l := range c.Literals {
		l.CollectVars(seen, &order)
	}
	return order
}

func (c *Clause) CollectFuns() map[string]bool {
	seen := make(map[string]bool)
	for _, l := range c.Literals {
		l.CollectFuns(seen)
	}
	return seen
}

func (c *Clause) CollectSig(sig *term.Signature) {
	for _, l := range c.Literals {
		sig.AddPred(l.Atom.Head(), len(l.Atom.Args()))
		for _, a := range l.Atom.Args() {
			sig.CollectFrom(a)
		}
	}
}

// Weight sums every literal's weight under the given function and
// variable weights.
func (c *Clause) Weight(funWeight, varWeight int) int {
	w := 0
	for _, l := range c.Literals {
		w += l.Weight(funWeight, varWeight)
	}
	return w
}

// PredicateAbstraction returns the sorted tuple of (polarity, head)
// pairs describing the clause's literals, used by the subsumption
// index.
func (c *Clause) PredicateAbstraction() []PredAbs {
	abs := make([]PredAbs, len(c.Literals))
	for i, l := range c.Literals {
		abs[i] = l.predAbs()
	}
	sortPredAbs(abs)
	return abs
}

func sortPredAbs(abs []PredAbs) {
	for i := 1; i < len(abs); i++ {
		for j := i; j > 0 && lessPredAbs(abs[j], abs[j-1]); j-- {
			abs[j], abs[j-1] = abs[j-1], abs[j]
		}
	}
}

func lessPredAbs(a, b PredAbs) bool {
	if a.Head != b.Head {
		return a.Head < b.Head
	}
	return !a.Negative && b.Negative
}

// Instantiate applies env to every literal, preserving type, name,
// derivation, and SOS flag.
func (c *Clause) Instantiate(env map[string]term.Term) *Clause {
	lits := make([]*Literal, len(c.Literals))
	for i, l := range c.Literals {
		lits[i] = l.Instantiate(env)
	}
	nc := NewClause(c.Name, c.Type, lits)
	nc.Deriv = c.Deriv
	nc.PartOfSOS = c.PartOfSOS
	nc.Evaluation = c.Evaluation
	return nc
}

// FreshVarCopy renames every variable in the clause to a globally
// fresh name, preserving all other metadata. The saturation loop
// calls this on the selected given clause to guarantee
// variable-disjointness between premises before generating
// inferences.
func (c *Clause) FreshVarCopy() *Clause {
	env := term.FreshRenaming(c.CollectVars())
	return c.Instantiate(env)
}

func (c *Clause) AddEval(evals []float64) {
	c.Evaluation = evals
}

// RemoveDupLits deletes literals that are IsEqual-duplicates of an
// earlier literal in the clause.
func (c *Clause) RemoveDupLits() {
	var kept []*Literal
	for _, l := range c.Literals {
		dup := false
		for _, k := range kept {
			if l.IsEqual(k) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, l)
		}
	}
	c.Literals = kept
}

// IsTautology reports whether the clause contains two literals with
// the same atom and opposite polarity.
func (c *Clause) IsTautology() bool {
	for i := range c.Literals {
		for j := i + 1; j < len(c.Literals); j++ {
			if c.Literals[i].IsOpposite(c.Literals[j]) {
				return true
			}
		}
	}
	return false
}

func (c *Clause) SetDerivation(d *Derivation) { c.Deriv = d }

func (c *Clause) GetParents() []*Clause {
	if c.Deriv == nil {
		return nil
	}
	return c.Deriv.GetParents()
}

func (c *Clause) incRefCount() { c.refCount++ }
func (c *Clause) decRefCount() { c.refCount-- }

// AnnotateDerivationGraph computes the number of virtual edges (from
// children) incident on every ancestor of c, by walking the
// derivation graph and incrementing reference counts, starting the
// walk only the first time a node is reached.
func (c *Clause) AnnotateDerivationGraph() {
	if c.refCount == 0 {
		for _, p := range c.GetParents() {
			p.AnnotateDerivationGraph()
		}
	}
	c.incRefCount()
}

// LinearizeDerivation appends a topological (parents-after-children,
// pre-reversal) ordering of the derivation DAG rooted at c into res,
// consuming the reference counts set up by AnnotateDerivationGraph.
func (c *Clause) LinearizeDerivation(res *[]*Clause) {
	c.decRefCount()
	if c.refCount == 0 {
		*res = append(*res, c)
		for _, p := range c.GetParents() {
			p.LinearizeDerivation(res)
		}
	}
}

// OrderedDerivation returns the full derivation of c as a list in
// which every parent appears before its child.
func (c *Clause) OrderedDerivation() []*Clause {
	c.AnnotateDerivationGraph()
	var res []*Clause
	c.LinearizeDerivation(&res)
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res
}

func (c *Clause) String() string {
	var b strings.Builder
	lits := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		lits[i] = l.String()
	}
	if len(lits) == 0 {
		b.WriteString("$false")
	} else {
		b.WriteString(strings.Join(lits, "|"))
	}
	deriv := "input"
	if c.Deriv != nil {
		deriv = c.Deriv.String()
	}
	if PrintDerivation {
		return "cnf(" + c.Name + "," + c.Type + ",[" + b.String() + "]," + deriv + ")."
	}
	return "cnf(" + c.Name + "," + c.Type + ",[" + b.String() + "])."
}
