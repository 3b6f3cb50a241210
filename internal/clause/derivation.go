package clause

import "strings"

// PrintDerivation toggles whether Clause.String embeds the
// derivation annotation, mirroring a package-wide switch rather than
// a per-call flag so the saturation loop's -p/--proof flag can be
// applied once at startup.
var PrintDerivation = false

// Derivation is a node in the justification DAG for a clause. It is
// either the trivial "input" or "eq_axiom" derivation, a direct
// "reference" to exactly one prior clause, or an inference with an
// operator name, a status annotation, and the (already-flattened)
// list of parent clauses.
type Derivation struct {
	Operator string
	Parents  []*Clause
	Status   string
}

func InputDerivation() *Derivation { return &Derivation{Operator: "input"} }
func EqAxiomDerivation() *Derivation { return &Derivation{Operator: "eq_axiom"} }

func ReferenceDerivation(parent *Clause) *Derivation {
	return &Derivation{Operator: "reference", Parents: []*Clause{parent}}
}

// FlatDerivation builds a derivation that references every parent
// directly, the convenience form used by resolution and factoring.
func FlatDerivation(operator string, parents []*Clause) *Derivation {
	return &Derivation{Operator: operator, Parents: parents, Status: "status(thm)"}
}

func (d *Derivation) GetParents() []*Clause {
	switch d.Operator {
	case "input", "eq_axiom":
		return nil
	default:
		return d.Parents
	}
}

func (d *Derivation) String() string {
	switch d.Operator {
	case "input":
		return "input"
	case "eq_axiom":
		return "eq_axiom"
	case "reference":
		return d.Parents[0].Name
	default:
		names := make([]string, len(d.Parents))
		for i, p := range d.Parents {
			names[i] = p.Name
		}
		var b strings.Builder
		b.WriteString("inference(")
		b.WriteString(d.Operator)
		b.WriteString(",")
		b.WriteString(d.Status)
		b.WriteString(",[")
		b.WriteString(strings.Join(names, ","))
		b.WriteString("])")
		return b.String()
	}
}
