package attack

import "testing"

// hasIssue checks if an issue list contains an exact message
func hasIssue(issues []string, want string) bool {
	for _, issue := range issues {
		if issue == want {
			return true
		}
	}
	return false
}

// validChain builds a valid three-node chain with attributes.
func validChain() (*Tree, AttrMap) {
	t := NewTree()
	t.AddEdge("root", "mid")
	t.AddEdge("mid", "leaf")

	attrs := AttrMap{
		"root": {TimeInterval: [2]int{0, 24}, Duration: 2, Cost: 5, Gate: GateAND},
		"mid":  {TimeInterval: [2]int{0, 12}, Duration: 1, Cost: 3, Gate: GateOR},
		"leaf": {TimeInterval: [2]int{0, 6}, Duration: 1, Cost: 2, IsLeaf: true},
	}
	return t, attrs
}

// TestValidateTree_CleanTree tests that a valid tree has no issues
func TestValidateTree_CleanTree(t *testing.T) {
	tree, attrs := validChain()

	if issues := ValidateTree(tree, attrs); len(issues) != 0 {
		t.Errorf("ValidateTree() = %v, want no issues", issues)
	}
}

// TestValidateTree_Disconnected tests the connectivity check
func TestValidateTree_Disconnected(t *testing.T) {
	tree, attrs := validChain()
	tree.AddNode("island")
	attrs["island"] = Attributes{TimeInterval: [2]int{0, 5}, Duration: 1, Cost: 1, IsLeaf: true}

	issues := ValidateTree(tree, attrs)
	if !hasIssue(issues, "Tree is not connected") {
		t.Errorf("Expected connectivity issue, got %v", issues)
	}
}

// TestValidateTree_Cyclic tests the cycle check
func TestValidateTree_Cyclic(t *testing.T) {
	tree := NewTree()
	tree.AddEdge("a", "b")
	tree.AddEdge("b", "a")
	attrs := AttrMap{
		"a": {TimeInterval: [2]int{0, 5}, Duration: 1, Cost: 1, Gate: GateAND},
		"b": {TimeInterval: [2]int{0, 5}, Duration: 1, Cost: 1, Gate: GateOR},
	}

	issues := ValidateTree(tree, attrs)
	if !hasIssue(issues, "Tree contains cycles") {
		t.Errorf("Expected cycle issue, got %v", issues)
	}
}

// TestValidateTree_MissingAttributes tests the attribute presence check
func TestValidateTree_MissingAttributes(t *testing.T) {
	tree, attrs := validChain()
	delete(attrs, "mid")

	issues := ValidateTree(tree, attrs)
	if !hasIssue(issues, "Node mid missing attributes") {
		t.Errorf("Expected missing attributes issue, got %v", issues)
	}

	// The node is skipped after the presence check, so no gate issue for it.
	if hasIssue(issues, "Non-leaf node mid has invalid gate type") {
		t.Errorf("Expected no gate issue for attribute-less node, got %v", issues)
	}
}

// TestValidateTree_InvalidInterval tests the time interval check
func TestValidateTree_InvalidInterval(t *testing.T) {
	tree, attrs := validChain()
	attrs["leaf"] = Attributes{TimeInterval: [2]int{9, 3}, Duration: 1, Cost: 2, IsLeaf: true}

	issues := ValidateTree(tree, attrs)
	if !hasIssue(issues, "Node leaf has invalid time interval") {
		t.Errorf("Expected interval issue, got %v", issues)
	}
}

// TestValidateTree_InternalWithoutGate tests the gate requirement
func TestValidateTree_InternalWithoutGate(t *testing.T) {
	tree, attrs := validChain()
	attrs["mid"] = Attributes{TimeInterval: [2]int{0, 12}, Duration: 1, Cost: 3}

	issues := ValidateTree(tree, attrs)
	if !hasIssue(issues, "Non-leaf node mid has invalid gate type") {
		t.Errorf("Expected gate issue, got %v", issues)
	}
}

// TestValidateTree_LeafWithGate tests the leaf gate prohibition
func TestValidateTree_LeafWithGate(t *testing.T) {
	tree, attrs := validChain()
	attrs["leaf"] = Attributes{TimeInterval: [2]int{0, 6}, Duration: 1, Cost: 2, Gate: GateAND, IsLeaf: true}

	issues := ValidateTree(tree, attrs)
	if !hasIssue(issues, "Leaf node leaf should not have gate type") {
		t.Errorf("Expected leaf gate issue, got %v", issues)
	}
}

// TestValidateTree_CollectsAllIssues tests that checking continues past errors
func TestValidateTree_CollectsAllIssues(t *testing.T) {
	tree := NewTree()
	tree.AddEdge("a", "b")
	tree.AddNode("island")

	attrs := AttrMap{
		"a": {TimeInterval: [2]int{5, 1}, Duration: 1, Cost: 1},                 // bad interval, missing gate
		"b": {TimeInterval: [2]int{0, 5}, Duration: 1, Cost: 1, Gate: GateAND}, // gate on a leaf
	}

	issues := ValidateTree(tree, attrs)

	for _, want := range []string{
		"Tree is not connected",
		"Node a has invalid time interval",
		"Non-leaf node a has invalid gate type",
		"Leaf node b should not have gate type",
		"Node island missing attributes",
	} {
		if !hasIssue(issues, want) {
			t.Errorf("Expected issue %q, got %v", want, issues)
		}
	}
}
