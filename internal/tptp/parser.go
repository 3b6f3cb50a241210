package tptp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/cnf"
	"github.com/gologic/satprove/internal/term"
)

// IncludeError reports an include directive whose target file could
// not be located, either relative to the including file or via the
// TPTP environment variable.
type IncludeError struct {
	Name string
	Dirs []string
}

func (e *IncludeError) Error() string {
	return fmt.Sprintf("include error: %q not found in %v", e.Name, e.Dirs)
}

// parseTermList parses a comma-delimited list of terms.
func parseTermList(lx *Lexer) ([]term.Term, error) {
	first, err := parseTerm(lx)
	if err != nil {
		return nil, err
	}
	res := []term.Term{first}
	for {
		ok, err := lx.TestTok(Comma)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, err := lx.AcceptTok(Comma); err != nil {
			return nil, err
		}
		t, err := parseTerm(lx)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

// parseTerm reads a single term: a variable (upper-case ident), or a
// function symbol (lower ident, defined symbol, or quoted string)
// optionally followed by a parenthesised argument list.
func parseTerm(lx *Lexer) (term.Term, error) {
	isVar, err := lx.TestTok(IdentUpper)
	if err != nil {
		return nil, err
	}
	if isVar {
		tok, err := lx.AcceptTok(IdentUpper)
		if err != nil {
			return nil, err
		}
		return term.NewVar(tok.Literal), nil
	}
	tok, err := lx.AcceptTok(IdentLower, DefFunctor, SQString)
	if err != nil {
		return nil, err
	}
	sym := tok.Literal
	hasArgs, err := lx.TestTok(OpenPar)
	if err != nil {
		return nil, err
	}
	if !hasArgs {
		return term.NewApp(sym), nil
	}
	if _, err := lx.AcceptTok(OpenPar); err != nil {
		return nil, err
	}
	args, err := parseTermList(lx)
	if err != nil {
		return nil, err
	}
	if _, err := lx.AcceptTok(ClosePar); err != nil {
		return nil, err
	}
	return term.NewApp(sym, args...), nil
}

// parseAtom parses a conventional atom or an (in)equational literal
// t1=t2 / t1!=t2, the latter represented as an application of the
// faux symbol "=" or "!=" (clause.NewLiteral normalises "!=" away).
func parseAtom(lx *Lexer) (term.Term, error) {
	lhs, err := parseTerm(lx)
	if err != nil {
		return nil, err
	}
	isEq, err := lx.TestTok(EqualSign, NotEqualSign)
	if err != nil {
		return nil, err
	}
	if !isEq {
		return lhs, nil
	}
	op, err := lx.AcceptTok(EqualSign, NotEqualSign)
	if err != nil {
		return nil, err
	}
	rhs, err := parseTerm(lx)
	if err != nil {
		return nil, err
	}
	return term.NewApp(op.Literal, lhs, rhs), nil
}

// parseLiteral parses an optional negation sign followed by an atom.
func parseLiteral(lx *Lexer) (*clause.Literal, error) {
	negative := false
	isNeg, err := lx.TestTok(Negation)
	if err != nil {
		return nil, err
	}
	if isNeg {
		if _, err := lx.AcceptTok(Negation); err != nil {
			return nil, err
		}
		negative = true
	}
	atom, err := parseAtom(lx)
	if err != nil {
		return nil, err
	}
	return clause.NewLiteral(atom, negative), nil
}

// parseLiteralList parses a "|"-separated list of literals; a bare
// "$false" literal is dropped rather than appended (it contributes
// nothing to the disjunction).
func parseLiteralList(lx *Lexer) ([]*clause.Literal, error) {
	var res []*clause.Literal
	appendNext := func() error {
		lit, err := lx.LookLit()
		if err != nil {
			return err
		}
		if lit == "$false" {
			_, err := lx.Next()
			return err
		}
		l, err := parseLiteral(lx)
		if err != nil {
			return err
		}
		res = append(res, l)
		return nil
	}
	if err := appendNext(); err != nil {
		return nil, err
	}
	for {
		ok, err := lx.TestTok(Or)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, err := lx.Next(); err != nil {
			return nil, err
		}
		if err := appendNext(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func normalizeClauseType(typ string) string {
	switch typ {
	case clause.TypeAxiom, clause.TypeNegatedConjecture:
		return typ
	default:
		return clause.TypePlain
	}
}

// parseCnf parses `cnf(<name>, <type>, <literal list>).`, the
// parenthesisation of the literal list itself being optional.
func parseCnf(lx *Lexer) (*clause.Clause, error) {
	if _, err := lx.AcceptLit("cnf"); err != nil {
		return nil, err
	}
	if _, err := lx.AcceptTok(OpenPar); err != nil {
		return nil, err
	}
	nameTok, err := lx.AcceptTok(IdentLower)
	if err != nil {
		return nil, err
	}
	if _, err := lx.AcceptTok(Comma); err != nil {
		return nil, err
	}
	typeTok, err := lx.AcceptTok(IdentLower)
	if err != nil {
		return nil, err
	}
	if _, err := lx.AcceptTok(Comma); err != nil {
		return nil, err
	}
	parenthesised, err := lx.TestTok(OpenPar)
	if err != nil {
		return nil, err
	}
	var lits []*clause.Literal
	if parenthesised {
		if _, err := lx.AcceptTok(OpenPar); err != nil {
			return nil, err
		}
		lits, err = parseLiteralList(lx)
		if err != nil {
			return nil, err
		}
		if _, err := lx.AcceptTok(ClosePar); err != nil {
			return nil, err
		}
	} else {
		lits, err = parseLiteralList(lx)
		if err != nil {
			return nil, err
		}
	}
	if _, err := lx.AcceptTok(ClosePar); err != nil {
		return nil, err
	}
	if _, err := lx.AcceptTok(FullStop); err != nil {
		return nil, err
	}
	c := clause.NewClause(nameTok.Literal, normalizeClauseType(typeTok.Literal), lits)
	c.SetDerivation(clause.InputDerivation())
	return c, nil
}

// parseFofFormula parses an fof formula body by recursive-descent
// precedence climbing: quantifiers and negation bind tightest, then
// &, then |, then the non-associative connectives =>, <=, <=>, <~>,
// ~&, ~| at the loosest level (TPTP forbids mixing the latter without
// parens; this parser accepts a left-to-right chain of them, which
// covers every formula that occurs without ambiguity).
func parseFofFormula(lx *Lexer) (cnf.Formula, error) {
	return parseFofNonAssoc(lx)
}

func parseFofNonAssoc(lx *Lexer) (cnf.Formula, error) {
	left, err := parseFofOr(lx)
	if err != nil {
		return nil, err
	}
	for {
		ok, err := lx.TestTok(Implies, BImplies, Equiv, Xor, Nand, Nor)
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		right, err := parseFofOr(lx)
		if err != nil {
			return nil, err
		}
		left = cnf.BinOp{Op: tok.Literal, Left: left, Right: right}
	}
}

func parseFofOr(lx *Lexer) (cnf.Formula, error) {
	left, err := parseFofAnd(lx)
	if err != nil {
		return nil, err
	}
	for {
		ok, err := lx.TestTok(Or)
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		if _, err := lx.Next(); err != nil {
			return nil, err
		}
		right, err := parseFofAnd(lx)
		if err != nil {
			return nil, err
		}
		left = cnf.BinOp{Op: "|", Left: left, Right: right}
	}
}

func parseFofAnd(lx *Lexer) (cnf.Formula, error) {
	left, err := parseFofUnit(lx)
	if err != nil {
		return nil, err
	}
	for {
		ok, err := lx.TestTok(And)
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		if _, err := lx.Next(); err != nil {
			return nil, err
		}
		right, err := parseFofUnit(lx)
		if err != nil {
			return nil, err
		}
		left = cnf.BinOp{Op: "&", Left: left, Right: right}
	}
}

func parseFofUnit(lx *Lexer) (cnf.Formula, error) {
	isNeg, err := lx.TestTok(Negation)
	if err != nil {
		return nil, err
	}
	if isNeg {
		if _, err := lx.Next(); err != nil {
			return nil, err
		}
		sub, err := parseFofUnit(lx)
		if err != nil {
			return nil, err
		}
		return cnf.Not{Sub: sub}, nil
	}
	isQuant, err := lx.TestTok(Universal, Existential)
	if err != nil {
		return nil, err
	}
	if isQuant {
		quantTok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if _, err := lx.AcceptTok(OpenSquare); err != nil {
			return nil, err
		}
		vars := []string{}
		varTok, err := lx.AcceptTok(IdentUpper)
		if err != nil {
			return nil, err
		}
		vars = append(vars, varTok.Literal)
		for {
			ok, err := lx.TestTok(Comma)
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			if _, err := lx.Next(); err != nil {
				return nil, err
			}
			varTok, err := lx.AcceptTok(IdentUpper)
			if err != nil {
				return nil, err
			}
			vars = append(vars, varTok.Literal)
		}
		if _, err := lx.AcceptTok(CloseSquare); err != nil {
			return nil, err
		}
		if _, err := lx.AcceptTok(Colon); err != nil {
			return nil, err
		}
		body, err := parseFofUnit(lx)
		if err != nil {
			return nil, err
		}
		return cnf.Quant{Universal: quantTok.Type == Universal, Vars: vars, Body: body}, nil
	}
	isParen, err := lx.TestTok(OpenPar)
	if err != nil {
		return nil, err
	}
	if isParen {
		if _, err := lx.Next(); err != nil {
			return nil, err
		}
		f, err := parseFofFormula(lx)
		if err != nil {
			return nil, err
		}
		if _, err := lx.AcceptTok(ClosePar); err != nil {
			return nil, err
		}
		return f, nil
	}
	atom, err := parseAtom(lx)
	if err != nil {
		return nil, err
	}
	if atom.Head() == "!=" {
		return cnf.Atomic{Atom: term.NewApp("=", atom.Args()...), Negative: true}, nil
	}
	return cnf.Atomic{Atom: atom, Negative: false}, nil
}

// parseFof parses `fof(<name>, <type>, <formula>).`.
func parseFof(lx *Lexer) ([]*clause.Clause, error) {
	if _, err := lx.AcceptLit("fof"); err != nil {
		return nil, err
	}
	if _, err := lx.AcceptTok(OpenPar); err != nil {
		return nil, err
	}
	nameTok, err := lx.AcceptTok(IdentLower)
	if err != nil {
		return nil, err
	}
	if _, err := lx.AcceptTok(Comma); err != nil {
		return nil, err
	}
	typeTok, err := lx.AcceptTok(IdentLower)
	if err != nil {
		return nil, err
	}
	if _, err := lx.AcceptTok(Comma); err != nil {
		return nil, err
	}
	f, err := parseFofFormula(lx)
	if err != nil {
		return nil, err
	}
	if _, err := lx.AcceptTok(ClosePar); err != nil {
		return nil, err
	}
	if _, err := lx.AcceptTok(FullStop); err != nil {
		return nil, err
	}

	isConjecture := typeTok.Literal == "conjecture"
	outType := normalizeClauseType(typeTok.Literal)
	if isConjecture {
		outType = clause.TypeNegatedConjecture
	}
	return cnf.Clausify(f, isConjecture, outType, nameTok.Literal), nil
}

// resolveInclude locates an include target, first relative to dir
// (the directory of the including file), then via the TPTP
// environment variable.
func resolveInclude(dir, name string) (string, error) {
	candidate := filepath.Join(dir, name)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	tried := []string{dir}
	if envDir := os.Getenv("TPTP"); envDir != "" {
		candidate = filepath.Join(envDir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		tried = append(tried, envDir)
	}
	return "", &IncludeError{Name: name, Dirs: tried}
}

// parseInclude parses `include('<filename>').`, optionally followed
// by a selective formula-name list that is accepted but ignored (this
// engine always loads every formula an include brings in).
func parseInclude(lx *Lexer) (string, error) {
	if _, err := lx.AcceptLit("include"); err != nil {
		return "", err
	}
	if _, err := lx.AcceptTok(OpenPar); err != nil {
		return "", err
	}
	nameTok, err := lx.AcceptTok(SQString)
	if err != nil {
		return "", err
	}
	name := nameTok.Literal
	if len(name) >= 2 {
		name = name[1 : len(name)-1]
	}
	hasSelection, err := lx.TestTok(Comma)
	if err != nil {
		return "", err
	}
	if hasSelection {
		if _, err := lx.AcceptTok(Comma); err != nil {
			return "", err
		}
		if _, err := lx.AcceptTok(OpenSquare); err != nil {
			return "", err
		}
		depth := 1
		for depth > 0 {
			tok, err := lx.Next()
			if err != nil {
				return "", err
			}
			switch tok.Type {
			case OpenSquare:
				depth++
			case CloseSquare:
				depth--
			}
		}
	}
	if _, err := lx.AcceptTok(ClosePar); err != nil {
		return "", err
	}
	if _, err := lx.AcceptTok(FullStop); err != nil {
		return "", err
	}
	return name, nil
}

// ParseString parses source (named name, for error reporting) into a
// flat clause list, following include directives relative to dir.
func ParseString(source, name, dir string) ([]*clause.Clause, error) {
	lx := NewLexer(source, name)
	var res []*clause.Clause
	for {
		tok, err := lx.Look()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return res, nil
		}
		switch tok.Literal {
		case "cnf":
			c, err := parseCnf(lx)
			if err != nil {
				return nil, err
			}
			res = append(res, c)
		case "fof":
			cs, err := parseFof(lx)
			if err != nil {
				return nil, err
			}
			res = append(res, cs...)
		case "include":
			incName, err := parseInclude(lx)
			if err != nil {
				return nil, err
			}
			path, err := resolveInclude(dir, incName)
			if err != nil {
				return nil, err
			}
			included, err := ParseFile(path)
			if err != nil {
				return nil, err
			}
			res = append(res, included...)
		default:
			return nil, &ParseError{Source: source, Pos: tok.Pos, Expected: "cnf, fof, or include", Got: tok}
		}
	}
}

// ParseFile reads and parses the TPTP file at path, resolving any
// include directives relative to path's directory.
func ParseFile(path string) ([]*clause.Clause, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data), path, filepath.Dir(path))
}
