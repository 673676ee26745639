package attack

// GateType classifies how an internal node combines its children.
type GateType string

// Gate type constants. GateNone is the zero value and marks leaf nodes,
// which have no children to combine.
const (
	GateAND  GateType = "AND"
	GateOR   GateType = "OR"
	GateSAND GateType = "SAND"
	GateNone GateType = ""
)

// Attributes holds the timing and cost annotations of a single node.
type Attributes struct {
	// TimeInterval bounds when the step may be triggered, in hours from
	// model start: [earliest, latest] with earliest <= latest.
	TimeInterval [2]int `yaml:"time_interval" json:"time_interval"`

	// Duration is how long the step takes once triggered.
	Duration int `yaml:"duration" json:"duration"`

	// Cost is the attacker's resource cost for the step.
	Cost int `yaml:"cost" json:"cost"`

	// Gate is GateNone for leaves.
	Gate GateType `yaml:"gate,omitempty" json:"gate,omitempty"`

	// IsLeaf is derived from structure: true iff the node has no children.
	IsLeaf bool `yaml:"is_leaf" json:"is_leaf"`
}

// Earliest returns the lower bound of the trigger interval.
func (a Attributes) Earliest() int { return a.TimeInterval[0] }

// Latest returns the upper bound of the trigger interval.
func (a Attributes) Latest() int { return a.TimeInterval[1] }

// Span returns the width of the trigger interval.
func (a Attributes) Span() int { return a.TimeInterval[1] - a.TimeInterval[0] }

// AttrMap maps node IDs to their attributes.
type AttrMap map[string]Attributes

// ObservableSet holds the node IDs whose compromise a monitor can see.
type ObservableSet map[string]bool

// DefaultObservables applies the default monitoring policy: every internal
// node is observable, leaves are not.
func DefaultObservables(t *Tree, attrs AttrMap) ObservableSet {
	obs := make(ObservableSet)
	for _, id := range t.Nodes() {
		a, ok := attrs[id]
		isLeaf := t.OutDegree(id) == 0
		if ok {
			isLeaf = a.IsLeaf
		}
		if !isLeaf {
			obs[id] = true
		}
	}
	return obs
}

// Tree is a directed graph over string node IDs. Nodes keep their insertion
// order, so iteration and everything derived from it is deterministic. A
// Tree is assembled once by its producing call and only read afterwards.
type Tree struct {
	nodes    []string
	nodeSet  map[string]bool
	children map[string][]string
	parents  map[string][]string
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{
		nodeSet:  make(map[string]bool),
		children: make(map[string][]string),
		parents:  make(map[string][]string),
	}
}

// AddNode adds a node unless it is already present.
func (t *Tree) AddNode(id string) {
	if t.nodeSet[id] {
		return
	}
	t.nodeSet[id] = true
	t.nodes = append(t.nodes, id)
}

// AddEdge adds a directed edge parent -> child, adding missing endpoints.
// Duplicate edges are ignored.
func (t *Tree) AddEdge(parent, child string) {
	t.AddNode(parent)
	t.AddNode(child)
	for _, c := range t.children[parent] {
		if c == child {
			return
		}
	}
	t.children[parent] = append(t.children[parent], child)
	t.parents[child] = append(t.parents[child], parent)
}

// HasNode reports whether id is in the tree.
func (t *Tree) HasNode(id string) bool { return t.nodeSet[id] }

// Nodes returns all node IDs in insertion order.
func (t *Tree) Nodes() []string { return t.nodes }

// NodeCount returns the number of nodes.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// EdgeCount returns the number of edges.
func (t *Tree) EdgeCount() int {
	n := 0
	for _, cs := range t.children {
		n += len(cs)
	}
	return n
}

// Children returns the successors of id in edge insertion order.
func (t *Tree) Children(id string) []string { return t.children[id] }

// Parents returns the predecessors of id in edge insertion order.
func (t *Tree) Parents(id string) []string { return t.parents[id] }

// OutDegree returns the number of outgoing edges of id.
func (t *Tree) OutDegree(id string) int { return len(t.children[id]) }

// InDegree returns the number of incoming edges of id.
func (t *Tree) InDegree(id string) int { return len(t.parents[id]) }

// Leaves returns all nodes without children, in insertion order.
func (t *Tree) Leaves() []string {
	var leaves []string
	for _, id := range t.nodes {
		if len(t.children[id]) == 0 {
			leaves = append(leaves, id)
		}
	}
	return leaves
}

// Root returns the attack goal node. Under correct construction this is the
// unique node with no incoming edges; when no such node exists (malformed
// input) the node with the most children is returned instead, so callers
// always get a usable root. Returns "" for an empty tree.
func (t *Tree) Root() string {
	for _, id := range t.nodes {
		if len(t.parents[id]) == 0 {
			return id
		}
	}
	best := ""
	bestOut := -1
	for _, id := range t.nodes {
		if len(t.children[id]) > bestOut {
			best = id
			bestOut = len(t.children[id])
		}
	}
	return best
}
