// Package term implements first-order terms, substitutions,
// unification, and matching.
//
// A term is a variant with two shapes: a variable, identified by a
// name drawn from an infinite enumerable set, or an application, a
// function symbol together with an ordered sequence of argument
// terms. Equality is encoded as an application of the distinguished
// symbol "=" of arity 2; the surface "!=" operator never appears in
// an internal term.
package term

import (
	"strconv"
	"strings"
)

// Term is the common interface for variables and applications.
type Term interface {
	IsVar() bool
	Head() string
	Args() []Term
	Equal(other Term) bool
	Copy() Term
	IsGround() bool
	Weight(funWeight, varWeight int) int
	String() string
}

// Var is a first-order variable, identified by name.
type Var struct {
	Name string
}

func NewVar(name string) *Var { return &Var{Name: name} }

func (v *Var) IsVar() bool      { return true }
func (v *Var) Head() string     { return v.Name }
func (v *Var) Args() []Term     { return nil }
func (v *Var) Copy() Term       { return &Var{Name: v.Name} }
func (v *Var) IsGround() bool   { return false }
func (v *Var) String() string   { return v.Name }
func (v *Var) Weight(_, varWeight int) int { return varWeight }

func (v *Var) Equal(other Term) bool {
	o, ok := other.(*Var)
	return ok && o.Name == v.Name
}

// App is an applied function or predicate symbol.
type App struct {
	Sym string
	Arg []Term
}

// NewApp builds an application term, enforcing nothing about arity at
// construction time (arity is checked against a Signature by callers
// that have one, e.g. the parser).
func NewApp(sym string, args ...Term) *App {
	return &App{Sym: sym, Arg: args}
}

// Const is a convenience constructor for a nullary application.
func Const(sym string) *App { return &App{Sym: sym} }

func (a *App) IsVar() bool    { return false }
func (a *App) Head() string   { return a.Sym }
func (a *App) Args() []Term   { return a.Arg }
func (a *App) IsGround() bool {
	for _, arg := range a.Arg {
		if !arg.IsGround() {
			return false
		}
	}
	return true
}

func (a *App) Copy() Term {
	args := make([]Term, len(a.Arg))
	for i, arg := range a.Arg {
		args[i] = arg.Copy()
	}
	return &App{Sym: a.Sym, Arg: args}
}

func (a *App) Equal(other Term) bool {
	o, ok := other.(*App)
	if !ok || o.Sym != a.Sym || len(o.Arg) != len(a.Arg) {
		return false
	}
	for i := range a.Arg {
		if !a.Arg[i].Equal(o.Arg[i]) {
			return false
		}
	}
	return true
}

func (a *App) Weight(funWeight, varWeight int) int {
	w := funWeight
	for _, arg := range a.Arg {
		w += arg.Weight(funWeight, varWeight)
	}
	return w
}

func (a *App) String() string {
	if len(a.Arg) == 0 {
		return a.Sym
	}
	var b strings.Builder
	b.WriteString(a.Sym)
	b.WriteByte('(')
	for i, arg := range a.Arg {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}

// IsVariable reports whether t is a variable term (package-level
// helper so callers need not type-assert).
func IsVariable(t Term) bool { return t.IsVar() }

// CollectVars appends every distinct variable name occurring in t, in
// first-occurrence order, to order; seen tracks names already added.
func CollectVars(t Term, seen map[string]bool, order *[]string) {
	if t.IsVar() {
		name := t.Head()
		if !seen[name] {
			seen[name] = true
			*order = append(*order, name)
		}
		return
	}
	for _, a := range t.Args() {
		CollectVars(a, seen, order)
	}
}

// VarSet returns the distinct variable names occurring in t, in
// first-occurrence order.
func VarSet(t Term) []string {
	seen := make(map[string]bool)
	var order []string
	CollectVars(t, seen, &order)
	return order
}

// CollectFuns appends every distinct function/predicate head symbol
// occurring in t into seen.
func CollectFuns(t Term, seen map[string]bool) {
	if t.IsVar() {
		return
	}
	seen[t.Head()] = true
	for _, a := range t.Args() {
		CollectFuns(a, seen)
	}
}

// CountVarOccurrences returns the number of occurrences of the
// variable named name within t.
func CountVarOccurrences(t Term, name string) int {
	if t.IsVar() {
		if t.Head() == name {
			return 1
		}
		return 0
	}
	count := 0
	for _, a := range t.Args() {
		count += CountVarOccurrences(a, name)
	}
	return count
}

// Subterm returns the subterm of t at the given argument-index path,
// or (nil, false) if the path does not exist.
func Subterm(t Term, path []int) (Term, bool) {
	cur := t
	for _, idx := range path {
		args := cur.Args()
		if idx < 0 || idx >= len(args) {
			return nil, false
		}
		cur = args[idx]
	}
	return cur, true
}

// IsSubterm reports whether sub occurs (structurally) anywhere within
// t, including t itself.
func IsSubterm(sub, t Term) bool {
	if sub.Equal(t) {
		return true
	}
	for _, a := range t.Args() {
		if IsSubterm(sub, a) {
			return true
		}
	}
	return false
}

// freshCounter generates globally unique fresh variable names; it is
// package-level because fresh variables must never collide across
// clauses produced by independent inferences.
var freshCounter int

// FreshVar returns a new variable guaranteed not to collide with any
// variable produced earlier in this process.
func FreshVar(prefix string) *Var {
	freshCounter++
	return &Var{Name: prefix + strconv.Itoa(freshCounter)}
}

// FreshRenaming builds a substitution mapping each name in vars to a
// distinct fresh variable.
func FreshRenaming(vars []string) map[string]Term {
	ren := make(map[string]Term, len(vars))
	for _, v := range vars {
		ren[v] = FreshVar("X")
	}
	return ren
}

// Apply substitutes every variable occurrence in t according to env,
// leaving unmapped variables untouched. This is the plain structural
// substitution used by both substitution flavours' Apply method and
// by fresh-variable renaming.
func Apply(t Term, env map[string]Term) Term {
	if t.IsVar() {
		if repl, ok := env[t.Head()]; ok {
			return repl
		}
		return t
	}
	args := t.Args()
	if len(args) == 0 {
		return t
	}
	newArgs := make([]Term, len(args))
	for i, a := range args {
		newArgs[i] = Apply(a, env)
	}
	return &App{Sym: t.Head(), Arg: newArgs}
}
