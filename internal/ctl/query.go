// Package ctl builds CTL diagnosability queries over compiled attack nets.
// Queries reference net places through the tapn naming scheme, so a query
// and the net it targets always agree on place IDs.
package ctl

import (
	"fmt"
	"strings"

	"github.com/Ali1tnk/DAT-evaluation/internal/attack"
	"github.com/Ali1tnk/DAT-evaluation/internal/tapn"
)

// Synthesize builds the weak diagnosability query for one tree: does some
// run compromise every observable node and the root? Conjuncts follow the
// tree's node order. With no observables the query degenerates to root
// reachability. The returned text carries a comment header and a trailing
// newline, ready to write as a .q file.
func Synthesize(t *attack.Tree, observable attack.ObservableSet, treeID string) string {
	root := t.Root()

	var conditions []string
	for _, id := range t.Nodes() {
		if observable[id] {
			conditions = append(conditions, fmt.Sprintf("%s >= 1", tapn.PlaceID(id)))
		}
	}

	var query string
	if len(conditions) == 0 {
		query = fmt.Sprintf("EF (%s >= 1)", tapn.PlaceID(root))
	} else {
		query = fmt.Sprintf("EF (%s and %s >= 1)",
			strings.Join(conditions, " and "), tapn.PlaceID(root))
	}

	return fmt.Sprintf("// Diagnosability query for tree %s\n%s\n", treeID, query)
}

// EnhancedQuery builds the three-part diagnosability proof used by the
// insider threat use case: reachability through the observable, temporal
// ordering of observable before root, and the joint compromise state.
func EnhancedQuery(t *attack.Tree, observableNode string) string {
	obs := tapn.PlaceID(observableNode)
	root := tapn.PlaceID(t.Root())

	parts := []string{
		"// Enhanced diagnosability query for e-commerce insider threat scenario",
		fmt.Sprintf("// Proves that observing %s compromise allows unique attack diagnosis", observableNode),
		"",
		fmt.Sprintf("// Query 1: Check if %s compromise can lead to root compromise", observableNode),
		fmt.Sprintf("EF (%s >= 1 and EF %s >= 1)", obs, root),
		"",
		fmt.Sprintf("// Query 2: Check temporal ordering - %s must be compromised before root", observableNode),
		fmt.Sprintf("AG (%s >= 1 -> EF %s >= 1)", root, obs),
		"",
		"// Query 3: Verify unique path constraint",
		fmt.Sprintf("EF (%s >= 1 and %s >= 1)", obs, root),
	}

	return strings.Join(parts, "\n")
}
