package attack

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OutputFormat specifies the output format
type OutputFormat string

// Output format constants.
const (
	FormatJSON OutputFormat = "json"
	FormatText OutputFormat = "text"
)

// Report bundles everything the analyzer derives from one scenario.
type Report struct {
	Scenario           string         `json:"scenario"`
	Stats              Stats          `json:"tree_stats"`
	PathAnalysis       PathAnalysis   `json:"path_analysis"`
	Diagnosability     Diagnosability `json:"diagnosability"`
	ObservableStrategy string         `json:"observable_strategy"`
	KeyFinding         string         `json:"key_finding"`
}

// FormatReport formats an analysis report for display
func FormatReport(r Report, format OutputFormat) (string, error) {
	switch format {
	case FormatText:
		return formatReportText(r), nil
	default:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil
	}
}

func formatReportText(r Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString(fmt.Sprintf("%s\n", r.Scenario))
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	// Tree shape
	sb.WriteString("TREE STATISTICS\n")
	sb.WriteString(strings.Repeat("-", 40) + "\n")
	sb.WriteString(fmt.Sprintf("Total nodes:    %d\n", r.Stats.TotalNodes))
	sb.WriteString(fmt.Sprintf("Leaf nodes:     %d\n", r.Stats.LeafNodes))
	sb.WriteString(fmt.Sprintf("Internal nodes: %d\n", r.Stats.InternalNodes))
	sb.WriteString(fmt.Sprintf("Tree depth:     %d\n", r.Stats.MaxDepth))
	sb.WriteString(fmt.Sprintf("Gates:          AND=%d OR=%d SAND=%d\n",
		r.Stats.GateCounts["AND"], r.Stats.GateCounts["OR"], r.Stats.GateCounts["SAND"]))
	sb.WriteString(fmt.Sprintf("Total cost:     %d\n", r.Stats.TotalCost))
	sb.WriteString(fmt.Sprintf("Avg time span:  %.1f hours\n\n", r.Stats.AvgTimeSpan))

	// Attack paths
	sb.WriteString("ATTACK PATHS\n")
	sb.WriteString(strings.Repeat("-", 40) + "\n")
	sb.WriteString(fmt.Sprintf("Total paths: %d | Unique leaf vectors: %d\n",
		r.PathAnalysis.TotalPaths, r.PathAnalysis.UniqueLeaves))
	for i, p := range r.PathAnalysis.Paths {
		sb.WriteString(fmt.Sprintf("[%d] %s\n", i+1, strings.Join(p.Nodes, " -> ")))
		sb.WriteString(fmt.Sprintf("    cost=%d time=%dh vector=%s\n",
			p.TotalCost, p.TotalTime, p.LeafNode))
	}
	sb.WriteString("\n")

	// Diagnosability
	sb.WriteString("DIAGNOSABILITY\n")
	sb.WriteString(strings.Repeat("-", 40) + "\n")
	sb.WriteString(fmt.Sprintf("Observable node:          %s\n", r.Diagnosability.ObservableNode))
	sb.WriteString(fmt.Sprintf("Paths with observation:   %d\n", r.Diagnosability.WithObservation))
	sb.WriteString(fmt.Sprintf("Paths without:            %d\n", r.Diagnosability.WithoutObservation))
	sb.WriteString(fmt.Sprintf("Unique diagnosis:         %t\n", r.Diagnosability.UniqueDiagnosis))
	if d := r.Diagnosability.DiagnosedPath; d != nil {
		sb.WriteString(fmt.Sprintf("Diagnosed path:           %s\n", strings.Join(d.Nodes, " -> ")))
		sb.WriteString(fmt.Sprintf("Path cost: %d units | Max time: %d hours\n", d.TotalCost, d.TotalTime))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Strategy: %s\n", r.ObservableStrategy))
	sb.WriteString(fmt.Sprintf("Finding:  %s\n", r.KeyFinding))

	return sb.String()
}
