package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/config"
	"github.com/gologic/satprove/internal/eqaxioms"
	"github.com/gologic/satprove/internal/heuristic"
	"github.com/gologic/satprove/internal/litselect"
	"github.com/gologic/satprove/internal/relevance"
	"github.com/gologic/satprove/internal/saturate"
	"github.com/gologic/satprove/internal/sos"
	"github.com/gologic/satprove/internal/term"
	"github.com/gologic/satprove/internal/tptp"
)

var proveCmd = &cobra.Command{
	Use:   "prove <file> [file...]",
	Short: "Saturate a TPTP-3 clause set and report its SZS status",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProve,
}

func usesEquality(clauses []*clause.Clause) bool {
	for _, c := range clauses {
		for _, l := range c.Literals {
			if l.Atom.Head() == "=" {
				return true
			}
		}
	}
	return false
}

func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	cfg, err := config.FindConfig(configPath)
	if err != nil {
		return config.Settings{}, err
	}
	settings, err := config.Resolve(cfg)
	if err != nil {
		return config.Settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("silent") {
		settings.ApplyFlagOverride("silent", silent)
	}
	if flags.Changed("proof") {
		settings.ApplyFlagOverride("proof", proof)
	}
	if flags.Changed("index") {
		settings.ApplyFlagOverride("index", indexed)
	}
	if flags.Changed("delete-tautologies") {
		settings.ApplyFlagOverride("delete-tautologies", deleteTautologies)
	}
	if flags.Changed("forward-subsumption") {
		settings.ApplyFlagOverride("forward-subsumption", forwardSubsumption)
	}
	if flags.Changed("backward-subsumption") {
		settings.ApplyFlagOverride("backward-subsumption", backwardSubsumption)
	}
	if flags.Changed("given-clause-heuristic") {
		settings.ApplyFlagOverride("given-clause-heuristic", givenClauseHeuristic)
	}
	if flags.Changed("neg-lit-selection") {
		settings.ApplyFlagOverride("neg-lit-selection", negLitSelection)
	}
	if flags.Changed("suppress-eq-axioms") {
		settings.ApplyFlagOverride("suppress-eq-axioms", suppressEqAxioms)
	}
	if flags.Changed("relevance-distance") {
		settings.ApplyFlagOverride("relevance-distance", relevanceDistance)
	}
	if flags.Changed("cpu-limit") {
		d, err := time.ParseDuration(cpuLimit)
		if err != nil {
			return config.Settings{}, fmt.Errorf("invalid --cpu-limit %q: %w", cpuLimit, err)
		}
		settings.ApplyFlagOverride("cpu-limit", d)
	}
	return settings, nil
}

func runProve(cmd *cobra.Command, args []string) error {
	runID := uuid.New().String()
	if logger != nil {
		logger.Debugw("starting run", "id", runID, "inputs", args)
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	var clauses []*clause.Clause
	for _, path := range args {
		cs, err := tptp.ParseFile(path)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		clauses = append(clauses, cs...)
	}

	hasConjecture := false
	for _, c := range clauses {
		if c.Type == clause.TypeNegatedConjecture {
			hasConjecture = true
			break
		}
	}

	if !settings.SuppressEqAxioms && usesEquality(clauses) {
		sig := term.NewSignature()
		for _, c := range clauses {
			c.CollectSig(sig)
		}
		clauses = append(clauses, eqaxioms.GenerateAll(sig)...)
	}

	if settings.RelevanceDistance > 0 {
		clauses = relevance.FilterByType(clauses, clause.TypeNegatedConjecture, settings.RelevanceDistance)
	}

	heuristicCtor, ok := heuristic.GivenClauseHeuristics[settings.GivenClauseHeuristic]
	if !ok {
		return fmt.Errorf("unknown given-clause heuristic %q", settings.GivenClauseHeuristic)
	}
	selector, ok := litselect.Selectors[settings.NegLitSelection]
	if !ok {
		return fmt.Errorf("unknown literal selection strategy %q", settings.NegLitSelection)
	}

	clause.PrintDerivation = settings.Proof

	params := &saturate.SearchParams{
		Heuristics:          heuristicCtor(),
		DeleteTautologies:   settings.DeleteTautologies,
		ForwardSubsumption:  settings.ForwardSubsumption,
		BackwardSubsumption: settings.BackwardSubsumption,
		LiteralSelection:    selector,
		SOSStrategy:         sos.NewNoSos(),
	}

	ps := saturate.NewProofState(params, clauses, settings.Index)
	ps.Log = logger

	ctx := context.Background()
	if settings.CPULimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.CPULimit)
		defer cancel()
	}

	refutation, resourceOut := ps.SaturateContext(ctx)

	problemName := filepath.Base(args[0])
	status := szsStatus(refutation, resourceOut, hasConjecture)
	if refutation == nil && !resourceOut && settings.RelevanceDistance > 0 {
		status = "GaveUp"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%% SZS status %s for %s\n", status, problemName)

	if !settings.Silent {
		printStatistics(out, problemName, ps.Stats())
	}
	if settings.Proof && refutation != nil {
		fmt.Fprintln(out, "% SZS output start CNFRefutation")
		printProof(out, refutation)
		fmt.Fprintln(out, "% SZS output end CNFRefutation")
	}
	return nil
}
