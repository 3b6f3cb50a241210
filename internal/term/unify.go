package term

// eqPair is one pending equation in the unification worklist.
type eqPair struct {
	lhs, rhs Term
}

// occursCheck reports whether the variable named name occurs
// anywhere in t.
func occursCheck(name string, t Term) bool {
	if t.IsVar() {
		return t.Head() == name
	}
	for _, a := range t.Args() {
		if occursCheck(name, a) {
			return true
		}
	}
	return false
}

func applyToPairs(pairs []eqPair, name string, repl Term) []eqPair {
	single := map[string]Term{name: repl}
	out := make([]eqPair, len(pairs))
	for i, p := range pairs {
		out[i] = eqPair{lhs: Apply(p.lhs, single), rhs: Apply(p.rhs, single)}
	}
	return out
}

// MGU computes a most general unifier of t1 and t2, if one exists.
// It operates as a worklist of term-pair equations paired with an
// accumulated composable substitution:
//
//   - Solved: identical variables on both sides of a pair are dropped.
//   - Bind: one side is a variable X not occurring in the other side
//     t; add X -> t, rewrite every remaining pair through it, and
//     compose it into the result.
//   - Decompose: both sides are applications with the same head
//     symbol; push the pairwise argument equations.
//   - Occurs-fail / structural-fail: the variable occurs in the other
//     side, or the head symbols differ; unification fails.
func MGU(t1, t2 Term) (*Subst, bool) {
	subst := NewSubst()
	worklist := []eqPair{{lhs: t1, rhs: t2}}

	for len(worklist) > 0 {
		pair := worklist[0]
		worklist = worklist[1:]

		lhs, rhs := pair.lhs, pair.rhs

		switch {
		case lhs.IsVar() && rhs.IsVar() && lhs.Head() == rhs.Head():
			// Solved.
			continue
		case lhs.IsVar():
			if occursCheck(lhs.Head(), rhs) {
				return nil, false
			}
			worklist = applyToPairs(worklist, lhs.Head(), rhs)
			subst.Compose(lhs.Head(), rhs)
		case rhs.IsVar():
			if occursCheck(rhs.Head(), lhs) {
				return nil, false
			}
			worklist = applyToPairs(worklist, rhs.Head(), lhs)
			subst.Compose(rhs.Head(), lhs)
		case lhs.Head() == rhs.Head() && len(lhs.Args()) == len(rhs.Args()):
			largs, rargs := lhs.Args(), rhs.Args()
			for i := range largs {
				worklist = append(worklist, eqPair{lhs: largs[i], rhs: rargs[i]})
			}
		default:
			return nil, false
		}
	}
	return subst, true
}

// Unifiable is a convenience wrapper for callers that only need to
// know whether a unifier exists.
func Unifiable(t1, t2 Term) bool {
	_, ok := MGU(t1, t2)
	return ok
}
