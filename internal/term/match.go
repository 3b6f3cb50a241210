package term

// Match attempts to find a substitution (recorded into s, a
// backtrackable substitution) such that s(pattern) equals target. It
// never instantiates target. On failure, every binding added during
// this call (and only those) is retracted, leaving s exactly as it
// was found; on success, the new bindings persist.
func Match(pattern, target Term, s *BTSubst) bool {
	state := s.State()
	if matchRec(pattern, target, s) {
		return true
	}
	s.BacktrackToState(state)
	return false
}

func matchRec(pattern, target Term, s *BTSubst) bool {
	if pattern.IsVar() {
		name := pattern.Head()
		if bound, ok := s.Value(name); ok {
			return bound.Equal(target)
		}
		s.AddBinding(name, target)
		return true
	}
	if target.IsVar() {
		return false
	}
	if pattern.Head() != target.Head() {
		return false
	}
	pargs, targs := pattern.Args(), target.Args()
	if len(pargs) != len(targs) {
		return false
	}
	for i := range pargs {
		if !matchRec(pargs[i], targs[i], s) {
			return false
		}
	}
	return true
}
