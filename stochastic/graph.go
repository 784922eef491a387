package stochastic

import (
	"errors"

	"github.com/zefrenchwan/stochkit.git/structures"
)

// DependencyGraph is a bidirectional multivalued mapping between process indices,
// built on the generic directed-valued graph structures.DVGraph. Cycles between
// distinct processes are expected and allowed (two processes may each change the
// other's rate). What is forbidden is a process depending on itself directly, so
// Link rejects p == q itself and does not route through
// structures.DVGraph.LinkWithoutCycle.
type DependencyGraph struct {
	forward structures.DVGraph[int, bool]
	reverse structures.DVGraph[int, bool]
}

// NewDependencyGraph returns an empty dependency graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		forward: structures.NewDVGraph[int, bool](),
		reverse: structures.NewDVGraph[int, bool](),
	}
}

// Link records that q's rate may change whenever p fires.
// It fails if p equals q: a process is never its own successor.
func (g *DependencyGraph) Link(p, q int) error {
	if p == q {
		return errors.New("a process cannot depend on itself")
	}

	g.forward.Link(p, q, true)
	g.reverse.Link(q, p, true)
	return nil
}

// Remove deletes every edge touching p, in both directions.
// DVGraph is itself a map[S]map[S]L, so edges can be dropped directly rather than
// through RemoveNode (which scans every node's adjacency to find p).
func (g *DependencyGraph) Remove(p int) {
	for _, successor := range g.Successors(p) {
		delete(g.reverse[successor], p)
	}
	for _, predecessor := range g.Predecessors(p) {
		delete(g.forward[predecessor], p)
	}

	delete(g.forward, p)
	delete(g.reverse, p)
}

// Successors returns the processes whose rate may change when p fires.
// The result excludes p itself by construction (Link rejects self-loops).
func (g *DependencyGraph) Successors(p int) []int {
	return neighborKeys(g.forward, p)
}

// Predecessors returns the processes that, when they fire, may change p's rate.
func (g *DependencyGraph) Predecessors(p int) []int {
	return neighborKeys(g.reverse, p)
}

func neighborKeys(graph structures.DVGraph[int, bool], node int) []int {
	neighbors, found := graph.Neighbors(node)
	if !found || len(neighbors) == 0 {
		return nil
	}

	result := make([]int, 0, len(neighbors))
	for k := range neighbors {
		result = append(result, k)
	}
	return result
}

