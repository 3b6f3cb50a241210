package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	silent               bool
	proof                bool
	indexed              bool
	deleteTautologies    bool
	forwardSubsumption   bool
	backwardSubsumption  bool
	givenClauseHeuristic string
	negLitSelection      string
	suppressEqAxioms     bool
	relevanceDistance    int
	configPath           string
	cpuLimit             string

	logger *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "satprove",
	Short: "A refutation-based first-order theorem prover",
	Long: `satprove saturates a TPTP-3 clause set under ordered binary
resolution and factoring, reporting an SZS-style verdict when the
empty clause is derived or the search space is exhausted.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if !silent {
			cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		} else {
			cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
		}
		base, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = base.Sugar()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&silent, "silent", "s", false, "suppress per-iteration output")
	flags.BoolVarP(&proof, "proof", "p", false, "emit the linearised derivation on success")
	flags.BoolVarP(&indexed, "index", "i", false, "enable indexed clause set")
	flags.BoolVarP(&deleteTautologies, "delete-tautologies", "t", false, "delete tautologies from the search")
	flags.BoolVarP(&forwardSubsumption, "forward-subsumption", "f", false, "enable forward subsumption")
	flags.BoolVarP(&backwardSubsumption, "backward-subsumption", "b", false, "enable backward subsumption")
	flags.StringVarP(&givenClauseHeuristic, "given-clause-heuristic", "H", "", "one of FIFO, SymbolCount, PickGiven5, PickGiven2")
	flags.StringVarP(&negLitSelection, "neg-lit-selection", "n", "", "one of first, smallest, largest, leastvars, eqleastvars")
	flags.BoolVarP(&suppressEqAxioms, "suppress-eq-axioms", "S", false, "skip equality-axiom injection")
	flags.IntVarP(&relevanceDistance, "relevance-distance", "r", 0, "limit to clauses within k alternating-path hops of the negated conjecture")
	flags.StringVar(&configPath, "config", "", "load a .satprove.yaml preset file")
	flags.StringVar(&cpuLimit, "cpu-limit", "", "resource-out cancellation deadline, e.g. 30s")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("satprove {{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "print the satprove version")

	rootCmd.AddCommand(proveCmd, versionCmd)
}
