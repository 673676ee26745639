package attack

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ScenarioNode is one node of a YAML scenario file.
type ScenarioNode struct {
	ID           string   `yaml:"id"`
	TimeInterval [2]int   `yaml:"time_interval"`
	Duration     int      `yaml:"duration"`
	Cost         int      `yaml:"cost"`
	Gate         GateType `yaml:"gate,omitempty"`
	Children     []string `yaml:"children,omitempty"`
}

// Scenario is a hand-written attack tree loaded from YAML.
type Scenario struct {
	Name            string         `yaml:"name"`
	Description     string         `yaml:"description,omitempty"`
	ObservableNodes []string       `yaml:"observable_nodes,omitempty"`
	Nodes           []ScenarioNode `yaml:"nodes"`
}

// ScenarioWrapper handles the top-level attack_scenario key in YAML files
type ScenarioWrapper struct {
	AttackScenario Scenario `yaml:"attack_scenario"`
}

// Build assembles the scenario into a tree and attribute map. Nodes are
// added in file order and edges in declared child order. Whether a node is
// a leaf comes from the assembled structure, not from the file.
func (s Scenario) Build() (*Tree, AttrMap) {
	t := NewTree()
	for _, n := range s.Nodes {
		t.AddNode(n.ID)
	}
	for _, n := range s.Nodes {
		for _, c := range n.Children {
			t.AddEdge(n.ID, c)
		}
	}

	attrs := make(AttrMap, len(s.Nodes))
	for _, n := range s.Nodes {
		attrs[n.ID] = Attributes{
			TimeInterval: n.TimeInterval,
			Duration:     n.Duration,
			Cost:         n.Cost,
			Gate:         n.Gate,
			IsLeaf:       t.OutDegree(n.ID) == 0,
		}
	}
	return t, attrs
}

// Observables returns the scenario's declared observable set, falling back
// to the default policy when the file declares none.
func (s Scenario) Observables(t *Tree, attrs AttrMap) ObservableSet {
	if len(s.ObservableNodes) == 0 {
		return DefaultObservables(t, attrs)
	}
	obs := make(ObservableSet)
	for _, id := range s.ObservableNodes {
		obs[id] = true
	}
	return obs
}

// Loader handles loading scenarios from the filesystem
type Loader struct {
	basePath string
}

// NewLoader creates a new scenario loader with the given base path
func NewLoader(basePath string) *Loader {
	return &Loader{basePath: basePath}
}

// LoadAll loads all scenarios from the base directory
func (l *Loader) LoadAll() ([]Scenario, error) {
	var scenarios []Scenario

	err := filepath.Walk(l.basePath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip directories and non-YAML files
		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		scenario, err := l.LoadFile(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}

		scenarios = append(scenarios, scenario)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk scenarios directory: %w", err)
	}

	return scenarios, nil
}

// LoadFile loads a single scenario from a YAML file. A scenario without a
// name takes the file's base name.
func (l *Loader) LoadFile(path string) (Scenario, error) {
	// Validate path to prevent directory traversal attacks
	if err := l.validatePath(path); err != nil {
		return Scenario{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read file: %w", err)
	}

	var wrapper ScenarioWrapper
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return Scenario{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	scenario := wrapper.AttackScenario
	if scenario.Name == "" {
		base := filepath.Base(path)
		scenario.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return scenario, nil
}

// validatePath ensures the given path is within the loader's basePath
// and prevents directory traversal attacks
func (l *Loader) validatePath(path string) error {
	// Clean and resolve the paths to absolute form
	cleanPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	cleanBase, err := filepath.Abs(filepath.Clean(l.basePath))
	if err != nil {
		return fmt.Errorf("failed to resolve base path: %w", err)
	}

	// Check if the clean path is within the base path
	relPath, err := filepath.Rel(cleanBase, cleanPath)
	if err != nil {
		return fmt.Errorf("failed to compute relative path: %w", err)
	}

	// If the relative path starts with "..", it's outside the base path
	if strings.HasPrefix(relPath, "..") || filepath.IsAbs(relPath) {
		return fmt.Errorf("path traversal detected: %s is outside base path %s", path, l.basePath)
	}

	return nil
}
