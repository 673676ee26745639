package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Ali1tnk/DAT-evaluation/internal/attack"
)

// TestFixture holds test resources and provides cleanup
type TestFixture struct {
	Dir       string            // Temporary directory containing scenario files
	Scenarios []attack.Scenario // Scenarios written to the directory
	Cleanup   func()            // Cleanup function to remove temporary resources
}

// SetupTestScenarios creates a temporary directory with two scenario files:
// a three-node chain and a diamond with two attack paths.
func SetupTestScenarios(t *testing.T) *TestFixture {
	t.Helper()

	tmpDir := t.TempDir()

	scenarios := []attack.Scenario{
		CreateChainScenario("chain"),
		CreateDiamondScenario("diamond"),
	}

	for _, scenario := range scenarios {
		if _, err := WriteScenarioFile(tmpDir, scenario); err != nil {
			t.Fatalf("Failed to write scenario file: %v", err)
		}
	}

	return &TestFixture{
		Dir:       tmpDir,
		Scenarios: scenarios,
		Cleanup:   func() {}, // t.TempDir() handles cleanup automatically
	}
}

// CreateChainScenario returns a valid root -> mid -> leaf chain.
func CreateChainScenario(name string) attack.Scenario {
	return attack.Scenario{
		Name:            name,
		Description:     "Three-node chain for testing",
		ObservableNodes: []string{"mid"},
		Nodes: []attack.ScenarioNode{
			{
				ID:           "root",
				TimeInterval: [2]int{0, 24},
				Duration:     2,
				Cost:         5,
				Gate:         attack.GateAND,
				Children:     []string{"mid"},
			},
			{
				ID:           "mid",
				TimeInterval: [2]int{0, 12},
				Duration:     1,
				Cost:         3,
				Gate:         attack.GateOR,
				Children:     []string{"leaf"},
			},
			{
				ID:           "leaf",
				TimeInterval: [2]int{0, 6},
				Duration:     1,
				Cost:         2,
			},
		},
	}
}

// CreateDiamondScenario returns a diamond: root forks to left and right,
// which both lead to the same shared leaf, giving two attack paths.
func CreateDiamondScenario(name string) attack.Scenario {
	return attack.Scenario{
		Name:        name,
		Description: "Diamond with two attack paths for testing",
		Nodes: []attack.ScenarioNode{
			{
				ID:           "root",
				TimeInterval: [2]int{0, 48},
				Duration:     2,
				Cost:         4,
				Gate:         attack.GateOR,
				Children:     []string{"left", "right"},
			},
			{
				ID:           "left",
				TimeInterval: [2]int{0, 24},
				Duration:     2,
				Cost:         3,
				Gate:         attack.GateAND,
				Children:     []string{"shared"},
			},
			{
				ID:           "right",
				TimeInterval: [2]int{6, 36},
				Duration:     3,
				Cost:         6,
				Gate:         attack.GateAND,
				Children:     []string{"shared"},
			},
			{
				ID:           "shared",
				TimeInterval: [2]int{0, 12},
				Duration:     1,
				Cost:         2,
			},
		},
	}
}

// WriteScenarioFile writes a scenario under its attack_scenario key to
// <dir>/<name>.yaml and returns the file path.
func WriteScenarioFile(dir string, scenario attack.Scenario) (string, error) {
	wrapper := attack.ScenarioWrapper{AttackScenario: scenario}

	data, err := yaml.Marshal(&wrapper)
	if err != nil {
		return "", err
	}

	filename := filepath.Join(dir, scenario.Name+".yaml")
	// #nosec G306 -- Test files don't need restrictive permissions
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
