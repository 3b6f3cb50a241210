// Package relevance implements alternating-path relevance filtering:
// a graph over (clause, literal, direction) nodes where in-clause
// edges connect every pair of distinct literals of the same clause
// and between-clause edges connect literals of opposite polarity with
// unifiable atoms. Restricting the search to clauses within k
// alternating hops of the negated conjecture trims axioms that cannot
// possibly contribute to a proof of that particular depth.
package relevance

import (
	"github.com/gologic/satprove/internal/clause"
	"github.com/gologic/satprove/internal/term"
)

type direction int

const (
	dirIn direction = iota
	dirOut
)

type node struct {
	lit   *clause.Literal
	cl    *clause.Clause
	dir   direction
}

// Graph is the alternating-path relevance graph over a fixed clause
// set.
type Graph struct {
	nodes     []*node
	neighbors map[*node]map[*node]bool
}

// Build constructs the relevance graph for clauses.
func Build(clauses []*clause.Clause) *Graph {
	g := &Graph{neighbors: make(map[*node]map[*node]bool)}
	var outNodes, inNodes []*node
	for _, c := range clauses {
		for _, l := range c.Literals {
			out := &node{lit: l, cl: c, dir: dirOut}
			in := &node{lit: l, cl: c, dir: dirIn}
			outNodes = append(outNodes, out)
			inNodes = append(inNodes, in)
			g.nodes = append(g.nodes, out, in)
		}
	}
	connect := func(a, b *node) {
		if g.neighbors[a] == nil {
			g.neighbors[a] = make(map[*node]bool)
		}
		if g.neighbors[b] == nil {
			g.neighbors[b] = make(map[*node]bool)
		}
		g.neighbors[a][b] = true
		g.neighbors[b][a] = true
	}
	for _, in := range inNodes {
		for _, out := range outNodes {
			if in.cl == out.cl && in.lit != out.lit {
				connect(in, out)
			}
		}
	}
	for _, out := range outNodes {
		for _, in := range inNodes {
			if out.lit.IsNegative() == in.lit.IsNegative() {
				continue
			}
			if term.Unifiable(out.lit.Atom, in.lit.Atom) {
				connect(in, out)
			}
		}
	}
	return g
}

func (g *Graph) nodesOf(clauses map[*clause.Clause]bool) map[*node]bool {
	res := make(map[*node]bool)
	for _, n := range g.nodes {
		if clauses[n.cl] {
			res[n] = true
		}
	}
	return res
}

func clausesOf(nodes map[*node]bool) map[*clause.Clause]bool {
	res := make(map[*clause.Clause]bool)
	for n := range nodes {
		res[n.cl] = true
	}
	return res
}

func (g *Graph) extend(nodes map[*node]bool) map[*node]bool {
	res := make(map[*node]bool)
	for n := range nodes {
		for nb := range g.neighbors[n] {
			res[nb] = true
		}
	}
	return res
}

// Filter returns the subset of g's clauses reachable from seed within
// 2*distance-1 alternating-path hops, always including seed itself.
// distance <= 0 disables filtering and returns every clause.
func (g *Graph) Filter(seed []*clause.Clause, distance int) []*clause.Clause {
	if distance <= 0 {
		all := clausesOf(allClauses(g))
		return clauseSlice(all)
	}
	seedSet := make(map[*clause.Clause]bool, len(seed))
	for _, c := range seed {
		seedSet[c] = true
	}
	neighborhood := g.nodesOf(seedSet)
	for i := 0; i < 2*distance-1; i++ {
		for n := range g.extend(neighborhood) {
			neighborhood[n] = true
		}
	}
	reached := clausesOf(neighborhood)
	for c := range seedSet {
		reached[c] = true
	}
	return clauseSlice(reached)
}

func allClauses(g *Graph) map[*node]bool {
	res := make(map[*node]bool, len(g.nodes))
	for _, n := range g.nodes {
		res[n] = true
	}
	return res
}

func clauseSlice(m map[*clause.Clause]bool) []*clause.Clause {
	res := make([]*clause.Clause, 0, len(m))
	for c := range m {
		res = append(res, c)
	}
	return res
}

// FilterByType is a convenience wrapper: it builds the graph over all
// clauses, seeds the search from every clause of the given type (the
// negated conjecture, in normal use), and filters to distance hops.
func FilterByType(clauses []*clause.Clause, seedType string, distance int) []*clause.Clause {
	g := Build(clauses)
	var seed []*clause.Clause
	for _, c := range clauses {
		if c.Type == seedType {
			seed = append(seed, c)
		}
	}
	if len(seed) == 0 {
		return clauses
	}
	return g.Filter(seed, distance)
}
