package cnf

import (
	"strconv"

	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/term"
)

// normalize rewrites <=>, <~>, ~&, ~|, and <= down to the canonical
// connective set {&, |, =>, Not}, leaving Atomic and Quant untouched
// except for recursing into their sub-formulas.
func normalize(f Formula) Formula {
	switch v := f.(type) {
	case Atomic:
		return v
	case Not:
		return Not{Sub: normalize(v.Sub)}
	case Quant:
		return Quant{Universal: v.Universal, Vars: v.Vars, Body: normalize(v.Body)}
	case BinOp:
		l := normalize(v.Left)
		r := normalize(v.Right)
		switch v.Op {
		case "&", "|", "=>":
			return BinOp{Op: v.Op, Left: l, Right: r}
		case "<=":
			return BinOp{Op: "=>", Left: r, Right: l}
		case "<=>":
			return BinOp{Op: "&",
				Left:  BinOp{Op: "=>", Left: l, Right: r},
				Right: BinOp{Op: "=>", Left: r, Right: l},
			}
		case "<~>":
			return Not{Sub: BinOp{Op: "&",
				Left:  BinOp{Op: "=>", Left: l, Right: r},
				Right: BinOp{Op: "=>", Left: r, Right: l},
			}}
		case "~&":
			return Not{Sub: BinOp{Op: "&", Left: l, Right: r}}
		case "~|":
			return Not{Sub: BinOp{Op: "|", Left: l, Right: r}}
		}
	}
	return f
}

// nnf pushes negation all the way to the atoms, given normalize has
// already reduced connectives to {&, |, =>, Not}. negate tracks
// whether the whole sub-formula is under an odd number of negations.
func nnf(f Formula, negate bool) Formula {
	switch v := f.(type) {
	case Atomic:
		neg := v.Negative
		if negate {
			neg = !neg
		}
		return Atomic{Atom: v.Atom, Negative: neg}
	case Not:
		return nnf(v.Sub, !negate)
	case Quant:
		universal := v.Universal
		if negate {
			universal = !universal
		}
		return Quant{Universal: universal, Vars: v.Vars, Body: nnf(v.Body, negate)}
	case BinOp:
		switch v.Op {
		case "&":
			if !negate {
				return BinOp{Op: "&", Left: nnf(v.Left, false), Right: nnf(v.Right, false)}
			}
			return BinOp{Op: "|", Left: nnf(v.Left, true), Right: nnf(v.Right, true)}
		case "|":
			if !negate {
				return BinOp{Op: "|", Left: nnf(v.Left, false), Right: nnf(v.Right, false)}
			}
			return BinOp{Op: "&", Left: nnf(v.Left, true), Right: nnf(v.Right, true)}
		case "=>":
			// L=>R is ~L|R.
			if !negate {
				return BinOp{Op: "|", Left: nnf(v.Left, true), Right: nnf(v.Right, false)}
			}
			return BinOp{Op: "&", Left: nnf(v.Left, false), Right: nnf(v.Right, true)}
		}
	}
	return f
}

// substitute applies env to every atom in f, including under
// quantifiers (shadowing of a substituted name by a nested quantifier
// of the same name is not handled — a simplification acceptable for
// the straightforward TPTP problems this clausifier targets).
func substitute(f Formula, env map[string]term.Term) Formula {
	switch v := f.(type) {
	case Atomic:
		return Atomic{Atom: term.Apply(v.Atom, env), Negative: v.Negative}
	case Not:
		return Not{Sub: substitute(v.Sub, env)}
	case Quant:
		return Quant{Universal: v.Universal, Vars: v.Vars, Body: substitute(v.Body, env)}
	case BinOp:
		return BinOp{Op: v.Op, Left: substitute(v.Left, env), Right: substitute(v.Right, env)}
	}
	return f
}

// skolemize strips every quantifier from an NNF formula: universal
// variables are renamed to globally fresh variables (so clauses
// derived from different input formulas never share a variable name),
// and existential variables are replaced by a fresh Skolem function
// applied to the enclosing universal variables.
func skolemize(f Formula, bound []term.Term, counter *int) Formula {
	switch v := f.(type) {
	case Atomic:
		return v
	case BinOp:
		return BinOp{Op: v.Op, Left: skolemize(v.Left, bound, counter), Right: skolemize(v.Right, bound, counter)}
	case Quant:
		env := make(map[string]term.Term, len(v.Vars))
		newBound := bound
		if v.Universal {
			for _, name := range v.Vars {
				fresh := term.FreshVar(name)
				env[name] = fresh
				newBound = append(newBound, fresh)
			}
		} else {
			for _, name := range v.Vars {
				*counter++
				sk := "sk" + strconv.Itoa(*counter)
				env[name] = term.NewApp(sk, append([]term.Term{}, bound...)...)
			}
		}
		body := substitute(v.Body, env)
		return skolemize(body, newBound, counter)
	}
	return f
}

// toClauseLiterals distributes | over & in a quantifier-free formula
// built only from Atomic and BinOp{&,|}, returning the resulting list
// of clauses, each a list of signed atoms.
func toClauseLiterals(f Formula) [][]Atomic {
	switch v := f.(type) {
	case Atomic:
		return [][]Atomic{{v}}
	case BinOp:
		left := toClauseLiterals(v.Left)
		right := toClauseLiterals(v.Right)
		switch v.Op {
		case "&":
			res := make([][]Atomic, 0, len(left)+len(right))
			res = append(res, left...)
			res = append(res, right...)
			return res
		case "|":
			res := make([][]Atomic, 0, len(left)*len(right))
			for _, l := range left {
				for _, r := range right {
					combined := make([]Atomic, 0, len(l)+len(r))
					combined = append(combined, l...)
					combined = append(combined, r...)
					res = append(res, combined)
				}
			}
			return res
		}
	}
	return nil
}

// skolemCounter numbers Skolem symbols across every Clausify call, so
// two input formulas never share a Skolem symbol.
var skolemCounter int

// Clausify converts a fof formula into clausal normal form.
// negateConjecture is true for a `conjecture`-typed formula, which must be refuted, i.e.
// negated before clausification; typ is the TPTP type recorded on
// each resulting clause (negated_conjecture for a negated conjecture,
// the formula's own type otherwise).
func Clausify(f Formula, negateConjecture bool, typ, namePrefix string) []*clause.Clause {
	normalized := normalize(f)
	form := nnf(normalized, negateConjecture)
	skolemized := skolemize(form, nil, &skolemCounter)
	literalLists := toClauseLiterals(skolemized)

	res := make([]*clause.Clause, 0, len(literalLists))
	for i, lits := range literalLists {
		clauseLits := make([]*clause.Literal, len(lits))
		for j, a := range lits {
			clauseLits[j] = clause.NewLiteral(a.Atom, a.Negative)
		}
		name := ""
		if len(literalLists) > 1 {
			name = namePrefix + "_" + strconv.Itoa(i+1)
		} else {
			name = namePrefix
		}
		c := clause.NewClause(name, typ, clauseLits)
		c.SetDerivation(clause.InputDerivation())
		res = append(res, c)
	}
	return res
}
