package attack

import (
	"fmt"
	"math/rand"
)

// SeedFor returns the Generate seed for one tree of a batch. Generate folds
// the node count in on top, so trees of the same ID but different sizes
// still get distinct streams.
func SeedFor(base int64, treeID int) int64 {
	return base + int64(treeID)
}

// Generate builds a random attack tree with numNodes nodes. Nodes are named
// node_00, node_01, ... and every node after the first attaches to a parent
// drawn uniformly from the nodes added before it, which keeps the result a
// connected DAG rooted at node_00. The same numNodes and seed always produce
// the same tree.
func Generate(numNodes int, seed int64) (*Tree, AttrMap) {
	rng := rand.New(rand.NewSource(seed + int64(numNodes)))

	t := NewTree()
	ids := make([]string, numNodes)
	for i := 0; i < numNodes; i++ {
		ids[i] = fmt.Sprintf("node_%02d", i)
		t.AddNode(ids[i])
	}

	for i := 1; i < numNodes; i++ {
		parent := ids[rng.Intn(i)]
		t.AddEdge(parent, ids[i])
	}

	attrs := make(AttrMap, numNodes)
	for _, id := range ids {
		isLeaf := t.OutDegree(id) == 0

		var start, end, duration, cost int
		gate := GateNone
		if isLeaf {
			start = rng.Intn(6)
			end = start + rng.Intn(9) + 2
			duration = rng.Intn(4) + 1
			cost = rng.Intn(15) + 1
		} else {
			start = rng.Intn(9)
			end = start + rng.Intn(10) + 3
			duration = rng.Intn(3) + 1
			cost = rng.Intn(9)
			if rng.Intn(2) == 0 {
				gate = GateAND
			} else {
				gate = GateOR
			}
			if rng.Float64() < 0.1 {
				gate = GateSAND
			}
		}

		attrs[id] = Attributes{
			TimeInterval: [2]int{start, end},
			Duration:     duration,
			Cost:         cost,
			Gate:         gate,
			IsLeaf:       isLeaf,
		}
	}

	RepairConnectivity(t)

	return t, attrs
}

// RepairConnectivity joins all weakly connected components by adding an edge
// from the first component's first node to each later component's first
// node. Reports whether any edge was added. Trees built by Generate are
// already connected, so this only acts on hand-assembled input.
func RepairConnectivity(t *Tree) bool {
	comps := t.WeaklyConnectedComponents()
	if len(comps) <= 1 {
		return false
	}
	anchor := comps[0][0]
	for _, comp := range comps[1:] {
		t.AddEdge(anchor, comp[0])
	}
	return true
}
