package term

import "github.com/gologic/satprove/internal/invariant"

// Subst is the composable substitution flavour used by unification.
// Bindings are always fully expanded: applying Compose rewrites every
// existing image through the new binding before adding it, so no
// binding ever points through another binding.
type Subst struct {
	bindings map[string]Term
}

func NewSubst() *Subst {
	return &Subst{bindings: make(map[string]Term)}
}

func (s *Subst) Value(name string) (Term, bool) {
	t, ok := s.bindings[name]
	return t, ok
}

func (s *Subst) IsBound(name string) bool {
	_, ok := s.bindings[name]
	return ok
}

// Apply fully substitutes t according to the current bindings.
func (s *Subst) Apply(t Term) Term {
	return Apply(t, s.bindings)
}

// Compose extends the substitution with name -> t: every existing
// binding's image is first rewritten through the single binding
// {name: t}, and then the new binding is added. This keeps the
// substitution fully expanded at all times.
func (s *Subst) Compose(name string, t Term) {
	single := map[string]Term{name: t}
	for k, v := range s.bindings {
		s.bindings[k] = Apply(v, single)
	}
	s.bindings[name] = t
}

// Bindings exposes the current map for callers that need to iterate
// it (e.g. to build a fresh-variable renaming record).
func (s *Subst) Bindings() map[string]Term { return s.bindings }

// BTSubst is the backtrackable substitution flavour used by matching
// and subsumption. It never rewrites previously stored bindings; it
// only ever appends, and bindings can be undone back to a saved
// state. Composing a BTSubst is a contract violation: backtrackable
// substitutions are built strictly by one-sided extension.
type BTSubst struct {
	bindings map[string]Term
	order    []string
}

func NewBTSubst() *BTSubst {
	return &BTSubst{bindings: make(map[string]Term)}
}

func (b *BTSubst) Value(name string) (Term, bool) {
	t, ok := b.bindings[name]
	return t, ok
}

func (b *BTSubst) IsBound(name string) bool {
	_, ok := b.bindings[name]
	return ok
}

func (b *BTSubst) Apply(t Term) Term {
	return Apply(t, b.bindings)
}

// State returns an opaque marker for the current set of bindings.
func (b *BTSubst) State() int { return len(b.order) }

// AddBinding appends a new binding and records it for backtracking.
func (b *BTSubst) AddBinding(name string, t Term) {
	b.bindings[name] = t
	b.order = append(b.order, name)
}

// Backtrack undoes the most recently added binding.
func (b *BTSubst) Backtrack() {
	invariant.Assert(len(b.order) > 0, "backtrack on empty substitution")
	last := b.order[len(b.order)-1]
	b.order = b.order[:len(b.order)-1]
	delete(b.bindings, last)
}

// BacktrackToState undoes bindings back to a previously saved state.
func (b *BTSubst) BacktrackToState(state int) {
	invariant.Assert(state <= len(b.order), "backtrack state %d ahead of current %d", state, len(b.order))
	for len(b.order) > state {
		b.Backtrack()
	}
}

// Compose always fails: composing a backtrackable substitution would
// require rewriting prior bindings, which defeats the undo log. Code
// that needs composition must use a Subst instead.
func (b *BTSubst) Compose(name string, t Term) {
	invariant.Assert(false, "cannot compose a backtrackable substitution (name=%s)", name)
}
