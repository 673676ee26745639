package attack

// Graph algorithms over Tree. All of them iterate nodes in insertion order
// so results are stable across runs with the same tree.

type color int

const (
	colorWhite color = iota
	colorGray
	colorBlack
)

// HasCycle reports whether the tree contains a directed cycle.
func (t *Tree) HasCycle() bool {
	colors := make(map[string]color, len(t.nodes))
	var visit func(id string) bool
	visit = func(id string) bool {
		colors[id] = colorGray
		for _, c := range t.children[id] {
			switch colors[c] {
			case colorGray:
				return true
			case colorWhite:
				if visit(c) {
					return true
				}
			}
		}
		colors[id] = colorBlack
		return false
	}
	for _, id := range t.nodes {
		if colors[id] == colorWhite && visit(id) {
			return true
		}
	}
	return false
}

// TopologicalOrder returns the nodes in a topological order, or ok=false if
// the tree contains a cycle. Ties are broken by insertion order.
func (t *Tree) TopologicalOrder() (order []string, ok bool) {
	indeg := make(map[string]int, len(t.nodes))
	for _, id := range t.nodes {
		indeg[id] = len(t.parents[id])
	}
	var queue []string
	for _, id := range t.nodes {
		if indeg[id] == 0 {
			queue = append(queue, id)
		}
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, c := range t.children[id] {
			indeg[c]--
			if indeg[c] == 0 {
				queue = append(queue, c)
			}
		}
	}
	if len(order) != len(t.nodes) {
		return nil, false
	}
	return order, true
}

// LongestPathLength returns the maximum number of edges on any directed
// path. Returns 0 when the tree is empty or cyclic.
func (t *Tree) LongestPathLength() int {
	order, ok := t.TopologicalOrder()
	if !ok {
		return 0
	}
	depth := make(map[string]int, len(order))
	max := 0
	for _, id := range order {
		for _, c := range t.children[id] {
			if d := depth[id] + 1; d > depth[c] {
				depth[c] = d
				if d > max {
					max = d
				}
			}
		}
	}
	return max
}

// WeaklyConnectedComponents partitions the nodes into components, ignoring
// edge direction. Components are ordered by their earliest node, and each
// component lists its nodes in discovery order.
func (t *Tree) WeaklyConnectedComponents() [][]string {
	seen := make(map[string]bool, len(t.nodes))
	var comps [][]string
	for _, start := range t.nodes {
		if seen[start] {
			continue
		}
		var comp []string
		queue := []string{start}
		seen[start] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			comp = append(comp, id)
			for _, next := range t.children[id] {
				if !seen[next] {
					seen[next] = true
					queue = append(queue, next)
				}
			}
			for _, next := range t.parents[id] {
				if !seen[next] {
					seen[next] = true
					queue = append(queue, next)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// IsConnected reports whether all nodes belong to a single weakly connected
// component. An empty tree counts as connected.
func (t *Tree) IsConnected() bool {
	return len(t.nodes) == 0 || len(t.WeaklyConnectedComponents()) == 1
}
