package attack

import (
	"reflect"
	"testing"
)

// TestAnalyzePaths_ECommerceScenario tests path enumeration over the curated tree
func TestAnalyzePaths_ECommerceScenario(t *testing.T) {
	tree, attrs := ECommerceTree()
	analysis := AnalyzePaths(tree, attrs)

	if analysis.TotalPaths != 5 {
		t.Fatalf("TotalPaths = %d, want 5", analysis.TotalPaths)
	}
	if analysis.UniqueLeaves != 5 {
		t.Errorf("UniqueLeaves = %d, want 5", analysis.UniqueLeaves)
	}

	wantLeaves := []string{
		NodeSpearPhishDev, NodeAuthExploit, NodeNetworkLateral,
		NodeStealDBCreds, NodeExfilChannel,
	}
	if !reflect.DeepEqual(analysis.LeafNodes, wantLeaves) {
		t.Errorf("LeafNodes = %v, want %v", analysis.LeafNodes, wantLeaves)
	}

	want := []AttackPath{
		{
			Nodes:     []string{NodeCCDBExfiltrated, NodeDatabaseAccess, NodeInternalAccess, NodeSpearPhishDev},
			LeafNode:  NodeSpearPhishDev,
			Length:    4,
			TotalCost: 18,
			TotalTime: 74,
		},
		{
			Nodes:     []string{NodeCCDBExfiltrated, NodeDatabaseAccess, NodeInternalAccess, NodeAuthExploit},
			LeafNode:  NodeAuthExploit,
			Length:    4,
			TotalCost: 22,
			TotalTime: 74,
		},
		{
			Nodes:     []string{NodeCCDBExfiltrated, NodeDataExtraction, NodePrivilegeEsc, NodeNetworkLateral},
			LeafNode:  NodeNetworkLateral,
			Length:    4,
			TotalCost: 25,
			TotalTime: 76,
		},
		{
			Nodes:     []string{NodeCCDBExfiltrated, NodeDatabaseAccess, NodeStealDBCreds},
			LeafNode:  NodeStealDBCreds,
			Length:    3,
			TotalCost: 15,
			TotalTime: 74,
		},
		{
			Nodes:     []string{NodeCCDBExfiltrated, NodeDataExtraction, NodeExfilChannel},
			LeafNode:  NodeExfilChannel,
			Length:    3,
			TotalCost: 18,
			TotalTime: 76,
		},
	}
	if !reflect.DeepEqual(analysis.Paths, want) {
		t.Errorf("Paths = %+v, want %+v", analysis.Paths, want)
	}
}

// TestAnalyzePaths_SingleNode tests the degenerate one-node case
func TestAnalyzePaths_SingleNode(t *testing.T) {
	tree := NewTree()
	tree.AddNode("solo")
	attrs := AttrMap{
		"solo": {TimeInterval: [2]int{2, 9}, Duration: 3, Cost: 4, IsLeaf: true},
	}

	analysis := AnalyzePaths(tree, attrs)
	if analysis.TotalPaths != 1 {
		t.Fatalf("TotalPaths = %d, want 1", analysis.TotalPaths)
	}

	p := analysis.Paths[0]
	if !reflect.DeepEqual(p.Nodes, []string{"solo"}) {
		t.Errorf("Nodes = %v, want [solo]", p.Nodes)
	}
	if p.Length != 1 || p.TotalCost != 4 || p.TotalTime != 12 {
		t.Errorf("length/cost/time = %d/%d/%d, want 1/4/12", p.Length, p.TotalCost, p.TotalTime)
	}
}

// TestAnalyzePaths_MultiParentLeaf tests that shared subgoals yield one path per route
func TestAnalyzePaths_MultiParentLeaf(t *testing.T) {
	tree := diamondTree()
	attrs := AttrMap{
		"root":   {TimeInterval: [2]int{0, 48}, Duration: 2, Cost: 4, Gate: GateOR},
		"left":   {TimeInterval: [2]int{0, 24}, Duration: 2, Cost: 3, Gate: GateAND},
		"right":  {TimeInterval: [2]int{6, 36}, Duration: 3, Cost: 6, Gate: GateAND},
		"shared": {TimeInterval: [2]int{0, 12}, Duration: 1, Cost: 2, IsLeaf: true},
	}

	analysis := AnalyzePaths(tree, attrs)
	if analysis.TotalPaths != 2 {
		t.Fatalf("TotalPaths = %d, want 2", analysis.TotalPaths)
	}
	if analysis.UniqueLeaves != 1 {
		t.Errorf("UniqueLeaves = %d, want 1", analysis.UniqueLeaves)
	}

	wantNodes := [][]string{
		{"root", "left", "shared"},
		{"root", "right", "shared"},
	}
	for i, want := range wantNodes {
		if !reflect.DeepEqual(analysis.Paths[i].Nodes, want) {
			t.Errorf("Paths[%d].Nodes = %v, want %v", i, analysis.Paths[i].Nodes, want)
		}
	}
}

// TestAnalyzePaths_EmptyTree tests the empty tree case
func TestAnalyzePaths_EmptyTree(t *testing.T) {
	analysis := AnalyzePaths(NewTree(), AttrMap{})
	if analysis.TotalPaths != 0 || len(analysis.Paths) != 0 {
		t.Errorf("TotalPaths = %d, want 0", analysis.TotalPaths)
	}
}

// TestDiagnose_UniqueObservable tests diagnosis from a single-path observable
func TestDiagnose_UniqueObservable(t *testing.T) {
	tree, attrs := ECommerceTree()
	analysis := AnalyzePaths(tree, attrs)

	d := Diagnose(analysis, NodeAuthExploit)

	if d.ObservableNode != NodeAuthExploit {
		t.Errorf("ObservableNode = %s, want %s", d.ObservableNode, NodeAuthExploit)
	}
	if d.TotalPaths != 5 || d.WithObservation != 1 || d.WithoutObservation != 4 {
		t.Errorf("counts = %d/%d/%d, want 5/1/4", d.TotalPaths, d.WithObservation, d.WithoutObservation)
	}
	if !d.UniqueDiagnosis {
		t.Error("UniqueDiagnosis = false, want true")
	}
	if d.DiagnosedPath == nil {
		t.Fatal("DiagnosedPath = nil, want the auth exploit path")
	}
	if d.DiagnosedPath.LeafNode != NodeAuthExploit {
		t.Errorf("DiagnosedPath.LeafNode = %s, want %s", d.DiagnosedPath.LeafNode, NodeAuthExploit)
	}
}

// TestDiagnose_AmbiguousObservable tests an observable shared by several paths
func TestDiagnose_AmbiguousObservable(t *testing.T) {
	tree, attrs := ECommerceTree()
	analysis := AnalyzePaths(tree, attrs)

	d := Diagnose(analysis, NodeDatabaseAccess)

	if d.WithObservation != 3 || d.WithoutObservation != 2 {
		t.Errorf("counts = %d/%d, want 3/2", d.WithObservation, d.WithoutObservation)
	}
	if d.UniqueDiagnosis {
		t.Error("UniqueDiagnosis = true, want false")
	}
	// First matching path wins even when the diagnosis is ambiguous.
	if d.DiagnosedPath == nil || d.DiagnosedPath.LeafNode != NodeSpearPhishDev {
		t.Errorf("DiagnosedPath = %+v, want the spear phishing path", d.DiagnosedPath)
	}
}

// TestDiagnose_AbsentObservable tests an observable on no path
func TestDiagnose_AbsentObservable(t *testing.T) {
	tree, attrs := ECommerceTree()
	analysis := AnalyzePaths(tree, attrs)

	d := Diagnose(analysis, "badge_reader_tamper")

	if d.WithObservation != 0 || d.WithoutObservation != 5 {
		t.Errorf("counts = %d/%d, want 0/5", d.WithObservation, d.WithoutObservation)
	}
	if !d.UniqueDiagnosis {
		t.Error("UniqueDiagnosis = false, want true for zero matches")
	}
	if d.DiagnosedPath != nil {
		t.Errorf("DiagnosedPath = %+v, want nil", d.DiagnosedPath)
	}
}

// TestAttackPath_Contains tests path membership
func TestAttackPath_Contains(t *testing.T) {
	p := AttackPath{Nodes: []string{"a", "b", "c"}}

	if !p.Contains("b") {
		t.Error("Contains(b) = false, want true")
	}
	if p.Contains("z") {
		t.Error("Contains(z) = true, want false")
	}
}
