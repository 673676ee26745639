package attack

// AttackPath is one root-to-leaf route through the tree. TotalCost sums the
// costs of every node on the path; TotalTime is the latest possible
// completion over the path, max of latest trigger plus duration.
type AttackPath struct {
	Nodes     []string `json:"path"`
	LeafNode  string   `json:"leaf_node"`
	Length    int      `json:"length"`
	TotalCost int      `json:"total_cost"`
	TotalTime int      `json:"total_time"`
}

// Contains reports whether id lies on the path.
func (p AttackPath) Contains(id string) bool {
	for _, n := range p.Nodes {
		if n == id {
			return true
		}
	}
	return false
}

// PathAnalysis enumerates every attack path of a tree.
type PathAnalysis struct {
	TotalPaths   int          `json:"total_paths"`
	Paths        []AttackPath `json:"paths"`
	LeafNodes    []string     `json:"leaf_nodes"`
	UniqueLeaves int          `json:"unique_leaves"`
}

// Diagnosability records whether observing one node pins down the attack
// path. Diagnosis is unique when at most one path crosses the observable;
// DiagnosedPath is the first such path, nil when none crosses it.
type Diagnosability struct {
	ObservableNode     string      `json:"observable_node"`
	TotalPaths         int         `json:"total_attack_paths"`
	WithObservation    int         `json:"paths_with_observation"`
	WithoutObservation int         `json:"paths_without_observation"`
	UniqueDiagnosis    bool        `json:"unique_diagnosis_possible"`
	DiagnosedPath      *AttackPath `json:"diagnosed_path"`
}

// AnalyzePaths enumerates all simple paths from the root to each leaf and
// scores them. Leaves are visited in insertion order and paths from the
// same leaf in parent edge order, so the result is deterministic. A
// single-node tree yields one path holding just the root.
func AnalyzePaths(t *Tree, attrs AttrMap) PathAnalysis {
	root := t.Root()
	leaves := append([]string{}, t.Leaves()...)

	paths := []AttackPath{}
	for _, leaf := range leaves {
		for _, nodes := range simplePathsUp(t, leaf, root) {
			paths = append(paths, scorePath(nodes, leaf, attrs))
		}
	}

	uniq := make(map[string]bool)
	for _, p := range paths {
		uniq[p.LeafNode] = true
	}

	return PathAnalysis{
		TotalPaths:   len(paths),
		Paths:        paths,
		LeafNodes:    leaves,
		UniqueLeaves: len(uniq),
	}
}

// Diagnose partitions the analyzed paths by whether they cross the
// observable node.
func Diagnose(analysis PathAnalysis, observable string) Diagnosability {
	d := Diagnosability{
		ObservableNode: observable,
		TotalPaths:     analysis.TotalPaths,
	}
	for i, p := range analysis.Paths {
		if p.Contains(observable) {
			d.WithObservation++
			if d.DiagnosedPath == nil {
				d.DiagnosedPath = &analysis.Paths[i]
			}
		} else {
			d.WithoutObservation++
		}
	}
	d.UniqueDiagnosis = d.WithObservation <= 1
	return d
}

// simplePathsUp walks parent edges from `from` and returns every simple
// path that reaches `to`, each reversed into to-to-from order.
func simplePathsUp(t *Tree, from, to string) [][]string {
	if !t.HasNode(from) || !t.HasNode(to) {
		return nil
	}

	var paths [][]string
	onPath := make(map[string]bool)
	var stack []string

	var walk func(id string)
	walk = func(id string) {
		onPath[id] = true
		stack = append(stack, id)
		if id == to {
			out := make([]string, len(stack))
			for i, n := range stack {
				out[len(stack)-1-i] = n
			}
			paths = append(paths, out)
		} else {
			for _, p := range t.parents[id] {
				if !onPath[p] {
					walk(p)
				}
			}
		}
		stack = stack[:len(stack)-1]
		onPath[id] = false
	}
	walk(from)
	return paths
}

func scorePath(nodes []string, leaf string, attrs AttrMap) AttackPath {
	cost := 0
	finish := 0
	for _, id := range nodes {
		a := attrs[id]
		cost += a.Cost
		if v := a.Latest() + a.Duration; v > finish {
			finish = v
		}
	}
	return AttackPath{
		Nodes:     nodes,
		LeafNode:  leaf,
		Length:    len(nodes),
		TotalCost: cost,
		TotalTime: finish,
	}
}
