// Package batch generates evaluation corpora: many random attack trees,
// each compiled to a TAPAAL model and paired with a diagnosability query,
// plus a JSON metadata summary of the whole run.
package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ali1tnk/DAT-evaluation/internal/attack"
	"github.com/Ali1tnk/DAT-evaluation/internal/ctl"
	"github.com/Ali1tnk/DAT-evaluation/internal/tapn"
)

// TreeInfo is the per-tree metadata record.
type TreeInfo struct {
	ID            int          `json:"tree_id"`
	NumNodes      int          `json:"num_nodes"`
	NumObservable int          `json:"observable_nodes"`
	Coverage      float64      `json:"observable_coverage"`
	ModelFile     string       `json:"xml_file"`
	QueryFile     string       `json:"query_file"`
	Issues        []string     `json:"issues,omitempty"`
	Stats         attack.Stats `json:"stats"`
}

// CountRange summarizes an integer quantity across the run.
type CountRange struct {
	Min int     `json:"min"`
	Max int     `json:"max"`
	Avg float64 `json:"avg"`
}

// RatioRange summarizes a ratio across the run.
type RatioRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// Summary is the metadata file written after a run.
type Summary struct {
	RunID              string     `json:"run_id"`
	GeneratedAt        string     `json:"generated_at"`
	Seed               int64      `json:"seed"`
	TotalTrees         int        `json:"total_trees"`
	NodeCountRange     CountRange `json:"node_count_range"`
	ObservableCoverage RatioRange `json:"observable_coverage"`
	Trees              []TreeInfo `json:"trees"`
}

// Run generates cfg.Trees random trees and writes each one's model and
// query under cfg.ModelsDir and cfg.QueriesDir as tree_NNN.xml and
// tree_NNN.q. Tree sizes come from a single stream seeded with cfg.Seed
// and each tree's own seed folds in its ID, so a run is reproducible file
// for file. Trees that fail validation are still written; their issues go
// to w and into the metadata. The caller writes the returned summary with
// WriteSummary.
func Run(cfg Config, w io.Writer) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.ModelsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create models directory: %w", err)
	}
	if err := os.MkdirAll(cfg.QueriesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create queries directory: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	summary := &Summary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Seed:        cfg.Seed,
		TotalTrees:  cfg.Trees,
		Trees:       make([]TreeInfo, 0, cfg.Trees),
	}

	for i := 0; i < cfg.Trees; i++ {
		treeID := cfg.StartID + i
		numNodes := cfg.MinNodes + rng.Intn(cfg.MaxNodes-cfg.MinNodes+1)

		tree, attrs := attack.Generate(numNodes, attack.SeedFor(cfg.Seed, treeID))

		issues := attack.ValidateTree(tree, attrs)
		if len(issues) > 0 {
			fmt.Fprintf(w, "Warning: Tree %03d has issues: %s\n",
				treeID, strings.Join(issues, "; "))
		}

		stats := attack.ComputeStats(tree, attrs)
		observable := attack.DefaultObservables(tree, attrs)

		doc := tapn.Compile(tree, attrs, strconv.Itoa(treeID))
		xmlContent, err := doc.XML()
		if err != nil {
			return nil, fmt.Errorf("failed to serialize tree %03d: %w", treeID, err)
		}
		query := ctl.Synthesize(tree, observable, strconv.Itoa(treeID))

		modelFile := filepath.Join(cfg.ModelsDir, fmt.Sprintf("tree_%03d.xml", treeID))
		if err := os.WriteFile(modelFile, []byte(xmlContent), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write model: %w", err)
		}
		queryFile := filepath.Join(cfg.QueriesDir, fmt.Sprintf("tree_%03d.q", treeID))
		if err := os.WriteFile(queryFile, []byte(query), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write query: %w", err)
		}

		summary.Trees = append(summary.Trees, TreeInfo{
			ID:            treeID,
			NumNodes:      numNodes,
			NumObservable: len(observable),
			Coverage:      float64(len(observable)) / float64(numNodes),
			ModelFile:     modelFile,
			QueryFile:     queryFile,
			Issues:        issues,
			Stats:         stats,
		})
	}

	summary.finalize()
	return summary, nil
}

// finalize fills the aggregate ranges from the per-tree records.
func (s *Summary) finalize() {
	if len(s.Trees) == 0 {
		return
	}

	nodes := CountRange{Min: s.Trees[0].NumNodes, Max: s.Trees[0].NumNodes}
	cover := RatioRange{Min: s.Trees[0].Coverage, Max: s.Trees[0].Coverage}
	nodeSum, coverSum := 0, 0.0

	for _, t := range s.Trees {
		if t.NumNodes < nodes.Min {
			nodes.Min = t.NumNodes
		}
		if t.NumNodes > nodes.Max {
			nodes.Max = t.NumNodes
		}
		nodeSum += t.NumNodes

		if t.Coverage < cover.Min {
			cover.Min = t.Coverage
		}
		if t.Coverage > cover.Max {
			cover.Max = t.Coverage
		}
		coverSum += t.Coverage
	}

	n := float64(len(s.Trees))
	nodes.Avg = float64(nodeSum) / n
	cover.Avg = coverSum / n
	s.NodeCountRange = nodes
	s.ObservableCoverage = cover
}

// WriteSummary writes the run summary as indented JSON, creating the parent
// directory when needed.
func WriteSummary(s *Summary, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create metadata directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	return nil
}
