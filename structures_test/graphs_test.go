package structures_test

import (
	"testing"

	"github.com/zefrenchwan/stochkit.git/structures"
)

func TestDVGraphLinkAndNeighbors(t *testing.T) {
	g := structures.NewDVGraph[int, bool]()
	g.Link(1, 2, true)
	g.Link(1, 3, true)

	neighbors, found := g.Neighbors(1)
	if !found {
		t.Fatal("expected node 1 to be in the graph")
	}
	if len(neighbors) != 2 || !neighbors[2] || !neighbors[3] {
		t.Fatalf("unexpected neighbors: %v", neighbors)
	}
}

func TestDVGraphNeighborsMissingNode(t *testing.T) {
	g := structures.NewDVGraph[int, bool]()
	if _, found := g.Neighbors(42); found {
		t.Fatal("expected missing node to report not found")
	}
}

func TestDVGraphAllowsCycles(t *testing.T) {
	g := structures.NewDVGraph[int, bool]()
	g.Link(1, 2, true)
	g.Link(2, 1, true)

	if !g.HasCycle() {
		t.Fatal("expected a two-node mutual link to register as a cycle")
	}

	// Link (not LinkWithoutCycle) must still accept it: the stochastic package
	// relies on this to let a process depend on its own successor chain.
	if _, found := g.Neighbors(1); !found {
		t.Fatal("expected node 1 to remain linked despite the cycle")
	}
}

func TestDVGraphRemoveNode(t *testing.T) {
	g := structures.NewDVGraph[int, bool]()
	g.Link(1, 2, true)
	g.Link(2, 3, true)

	if !g.RemoveNode(2) {
		t.Fatal("expected RemoveNode to report that node 2 existed")
	}

	neighbors, _ := g.Neighbors(1)
	if neighbors[2] {
		t.Fatal("expected node 2 to no longer be a neighbor of node 1")
	}
	if _, found := g.Neighbors(2); found {
		t.Fatal("expected node 2 to be gone entirely")
	}
}
