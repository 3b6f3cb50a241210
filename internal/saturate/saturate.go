// Package saturate implements the given-clause algorithm: the
// top-level loop that repeatedly selects a clause from the
// unprocessed set, generates its resolvents and factors against the
// processed set, and moves it into processed, until either the empty
// clause is derived or the unprocessed set is exhausted.
package saturate

import (
	"context"

	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/clauseset"
	"github.com/gologic/satprove/internal/heuristic"
	"github.com/gologic/satprove/internal/infer"
	"github.com/gologic/satprove/internal/kbo"
	"github.com/gologic/satprove/internal/litselect"
	"github.com/gologic/satprove/internal/sos"
	"github.com/gologic/satprove/internal/subsume"

	"go.uber.org/zap"
)

// SearchParams bundles the configurable search policy: which clauses
// are selected, how they're filtered, and which redundancy checks
// run.
type SearchParams struct {
	Heuristics         *heuristic.EvalStructure
	DeleteTautologies  bool
	ForwardSubsumption bool
	BackwardSubsumption bool
	LiteralSelection   litselect.Func
	OrderedResolution  bool
	SOSStrategy        sos.Strategy
}

// DefaultSearchParams mirrors the teacher-pack default: PickGiven5
// scheduling, no tautology deletion or subsumption, no literal
// selection, and a NoSos set-of-support (every clause is eligible).
func DefaultSearchParams() *SearchParams {
	return &SearchParams{
		Heuristics:  heuristic.PickGiven5(),
		SOSStrategy: sos.NewNoSos(),
	}
}

// ProcessedSet is the interface the loop needs from its processed
// clause store: either clauseset.Set (plain) or clauseset.IndexedSet
// (indexed) satisfy it.
type ProcessedSet interface {
	Add(c *clause.Clause)
	Remove(c *clause.Clause)
	Clauses() []*clause.Clause
	Len() int
	subsume.Candidates
	infer.ResolutionSource
}

// ProofState is the top-level prover data structure: the processed
// and unprocessed clause sets, the search parameters, an optional KBO
// instance for ordered resolution, and the seven running counters.
type ProofState struct {
	Params     *SearchParams
	Unprocessed *clauseset.HeuristicClauseSet
	Processed  ProcessedSet
	OCB        *kbo.OCB
	Log        *zap.SugaredLogger

	InitialClauseCount int
	ProcessedCount      int
	FactorCount         int
	ResolventCount      int
	TautologiesDeleted  int
	ForwardSubsumed     int
	BackwardSubsumed    int
}

// NewProofState builds a proof state over clauses, using an indexed
// processed set when indexed is true.
func NewProofState(params *SearchParams, clauses []*clause.Clause, indexed bool) *ProofState {
	if params.SOSStrategy == nil {
		params.SOSStrategy = sos.NewNoSos()
	}
	unprocessed := clauseset.NewHeuristicClauseSet(params.Heuristics, params.SOSStrategy)
	var processed ProcessedSet
	if indexed {
		processed = clauseset.NewIndexedSet()
	} else {
		processed = clauseset.NewSet()
	}
	for _, c := range clauses {
		unprocessed.Add(c)
	}
	ps := &ProofState{
		Params:              params,
		Unprocessed:         unprocessed,
		Processed:           processed,
		InitialClauseCount:  unprocessed.Len(),
	}
	if params.OrderedResolution {
		ps.OCB = buildOCB(clauses)
	}
	return ps
}

// buildOCB derives a precedence/weight registry from the symbol
// frequencies of the initial clause set, matching the ordered
// resolution option 2 default (function weight 2, variable weight 1).
func buildOCB(clauses []*clause.Clause) *kbo.OCB {
	var atomsSeq [][]string
	for _, c := range clauses {
		for _, l := range c.Literals {
			seen := make(map[string]bool)
			l.CollectFuns(seen)
			syms := make([]string, 0, len(seen))
			for s := range seen {
				syms = append(syms, s)
			}
			atomsSeq = append(atomsSeq, syms)
		}
	}
	counts := kbo.CountSymbols(atomsSeq)
	return kbo.InitOCB(counts, 2)
}

// InitSOS marks the configured set-of-support and, for a strict
// (ratio-0) strategy, immediately moves every non-SOS clause into
// processed so only SOS clauses ever enter the given-clause loop.
// NoSos leaves every clause in unprocessed.
func (ps *ProofState) InitSOS() {
	if _, off := ps.Params.SOSStrategy.(*sos.NoSos); off || ps.Params.SOSStrategy.Ratio() != 0 {
		return
	}
	for _, c := range ps.Unprocessed.Clauses() {
		if !c.PartOfSOS {
			ps.Unprocessed.Remove(c)
			ps.Processed.Add(c)
		}
	}
}

// ProcessClause performs one iteration of the given-clause algorithm.
// It returns (refutation, true) if the empty clause was derived.
func (ps *ProofState) ProcessClause() (*clause.Clause, bool) {
	given, ok := ps.Unprocessed.ExtractBest()
	if !ok {
		return nil, false
	}
	given = given.FreshVarCopy()
	if ps.Log != nil {
		ps.Log.Debugw("processing given clause", "clause", given.String())
	}
	if given.IsEmpty() {
		return given, true
	}
	if ps.Params.DeleteTautologies && given.IsTautology() {
		ps.TautologiesDeleted++
		return nil, false
	}
	if ps.Params.ForwardSubsumption && subsume.ForwardSubsumption(ps.Processed, given) {
		ps.ForwardSubsumed++
		return nil, false
	}
	if ps.Params.BackwardSubsumption {
		removed := subsume.BackwardSubsumption(ps.Processed, given)
		for _, c := range removed {
			ps.Processed.Remove(c)
		}
		ps.BackwardSubsumed += len(removed)
	}

	ps.selectLiterals(given)

	factors := infer.ComputeAllFactors(given)
	resolvents := infer.ComputeAllResolvents(given, ps.Processed)
	ps.ProcessedCount++
	ps.FactorCount += len(factors)
	ps.ResolventCount += len(resolvents)

	ps.Processed.Add(given)

	for _, c := range factors {
		ps.Unprocessed.Add(c)
	}
	for _, c := range resolvents {
		ps.Unprocessed.Add(c)
	}
	return nil, false
}

func (ps *ProofState) selectLiterals(given *clause.Clause) {
	switch {
	case ps.Params.OrderedResolution && ps.Params.LiteralSelection != nil:
		litselect.Apply(given, ps.Params.LiteralSelection)
	case ps.Params.LiteralSelection != nil:
		litselect.Apply(given, ps.Params.LiteralSelection)
	case ps.Params.OrderedResolution:
		litselect.ApplyOrdered(ps.OCB, given)
	}
}

// Saturate runs ProcessClause until either a refutation is found or
// the unprocessed set is exhausted.
func (ps *ProofState) Saturate() *clause.Clause {
	res, _ := ps.SaturateContext(context.Background())
	return res
}

// SaturateContext runs the given-clause loop like Saturate, but polls
// ctx between iterations so a CPU-time deadline (or other external
// cancellation) can interrupt an otherwise-unbounded search. The
// second return value is true when ctx was cancelled before a
// refutation was found (a resource-out outcome), distinct from a
// normal exhausted-unprocessed-set result (false, nil).
func (ps *ProofState) SaturateContext(ctx context.Context) (*clause.Clause, bool) {
	ps.InitSOS()
	for ps.Unprocessed.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, true
		default:
		}
		if res, ok := ps.ProcessClause(); ok {
			return res, false
		}
	}
	return nil, false
}

// Statistics is the seven-counter summary of a completed (or
// interrupted) proof search.
type Statistics struct {
	InitialClauses     int
	ProcessedClauses   int
	FactorsComputed    int
	ResolventsComputed int
	TautologiesDeleted int
	ForwardSubsumed    int
	BackwardSubsumed   int
}

func (ps *ProofState) Stats() Statistics {
	return Statistics{
		InitialClauses:     ps.InitialClauseCount,
		ProcessedClauses:   ps.ProcessedCount,
		FactorsComputed:    ps.FactorCount,
		ResolventsComputed: ps.ResolventCount,
		TautologiesDeleted: ps.TautologiesDeleted,
		ForwardSubsumed:    ps.ForwardSubsumed,
		BackwardSubsumed:   ps.BackwardSubsumed,
	}
}
