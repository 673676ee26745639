package attack

// Stats summarizes the shape and annotations of one attack tree.
type Stats struct {
	TotalNodes    int            `json:"total_nodes"`
	LeafNodes     int            `json:"leaf_nodes"`
	InternalNodes int            `json:"internal_nodes"`
	TotalEdges    int            `json:"total_edges"`
	MaxDepth      int            `json:"max_depth"`
	GateCounts    map[string]int `json:"gate_counts"`
	TotalCost     int            `json:"total_cost"`
	AvgTimeSpan   float64        `json:"avg_time_span"`
	MaxTimeSpan   int            `json:"max_time_span"`
}

// ComputeStats derives Stats from a tree and its attributes. MaxDepth is 0
// for a cyclic tree. The gate histogram always carries all four buckets;
// gate values outside the known set fall into "None".
func ComputeStats(t *Tree, attrs AttrMap) Stats {
	s := Stats{
		TotalNodes: t.NodeCount(),
		LeafNodes:  len(t.Leaves()),
		TotalEdges: t.EdgeCount(),
		MaxDepth:   t.LongestPathLength(),
		GateCounts: map[string]int{"AND": 0, "OR": 0, "SAND": 0, "None": 0},
	}
	s.InternalNodes = s.TotalNodes - s.LeafNodes

	spanSum := 0
	for _, a := range attrs {
		switch a.Gate {
		case GateAND:
			s.GateCounts["AND"]++
		case GateOR:
			s.GateCounts["OR"]++
		case GateSAND:
			s.GateCounts["SAND"]++
		default:
			s.GateCounts["None"]++
		}

		s.TotalCost += a.Cost

		span := a.Span()
		spanSum += span
		if span > s.MaxTimeSpan {
			s.MaxTimeSpan = span
		}
	}
	if len(attrs) > 0 {
		s.AvgTimeSpan = float64(spanSum) / float64(len(attrs))
	}
	return s
}
