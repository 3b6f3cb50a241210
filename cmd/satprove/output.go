package main

import (
	"fmt"
	"io"

	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/saturate"
)

// szsStatus maps a saturation outcome onto the SZS ontology's
// top-level status names. hasConjecture tracks whether the problem
// carried a negated_conjecture clause, which distinguishes a proved
// theorem from a merely unsatisfiable axiom set, and a satisfiable
// result from a counter-satisfiable one.
func szsStatus(refutation *clause.Clause, resourceOut bool, hasConjecture bool) string {
	switch {
	case resourceOut:
		return "ResourceOut"
	case refutation != nil && hasConjecture:
		return "Theorem"
	case refutation != nil:
		return "Unsatisfiable"
	case hasConjecture:
		return "CounterSatisfiable"
	default:
		return "Satisfiable"
	}
}

func printStatistics(w io.Writer, name string, stats saturate.Statistics) {
	fmt.Fprintf(w, "# Initial clauses    : %d\n", stats.InitialClauses)
	fmt.Fprintf(w, "# Processed clauses  : %d\n", stats.ProcessedClauses)
	fmt.Fprintf(w, "# Factors computed   : %d\n", stats.FactorsComputed)
	fmt.Fprintf(w, "# Resolvents computed: %d\n", stats.ResolventsComputed)
	fmt.Fprintf(w, "# Tautologies deleted: %d\n", stats.TautologiesDeleted)
	fmt.Fprintf(w, "# Forward subsumed   : %d\n", stats.ForwardSubsumed)
	fmt.Fprintf(w, "# Backward subsumed  : %d\n", stats.BackwardSubsumed)
}

func printProof(w io.Writer, refutation *clause.Clause) {
	for _, c := range refutation.OrderedDerivation() {
		fmt.Fprintln(w, c.String())
	}
}
