package attack

import "fmt"

// ValidateTree checks structural soundness of a tree and its attributes.
// It returns one message per problem found, or an empty slice when the tree
// is well formed. Checks cover connectivity, acyclicity, attribute
// presence, interval sanity, and the gate/leaf pairing rule: internal nodes
// need a gate, leaves must not have one.
func ValidateTree(t *Tree, attrs AttrMap) []string {
	issues := []string{}

	if !t.IsConnected() {
		issues = append(issues, "Tree is not connected")
	}
	if t.HasCycle() {
		issues = append(issues, "Tree contains cycles")
	}

	for _, id := range t.Nodes() {
		a, ok := attrs[id]
		if !ok {
			issues = append(issues, fmt.Sprintf("Node %s missing attributes", id))
			continue
		}

		if a.TimeInterval[0] > a.TimeInterval[1] {
			issues = append(issues, fmt.Sprintf("Node %s has invalid time interval", id))
		}

		if t.OutDegree(id) > 0 {
			switch a.Gate {
			case GateAND, GateOR, GateSAND:
			default:
				issues = append(issues, fmt.Sprintf("Non-leaf node %s has invalid gate type", id))
			}
		} else if a.Gate != GateNone {
			issues = append(issues, fmt.Sprintf("Leaf node %s should not have gate type", id))
		}
	}

	return issues
}
