package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ali1tnk/DAT-evaluation/internal/attack"
	"github.com/Ali1tnk/DAT-evaluation/internal/ctl"
	"github.com/Ali1tnk/DAT-evaluation/internal/tapn"
)

var (
	compileObserve []string
	compileStrict  bool
)

var compileCmd = &cobra.Command{
	Use:   "compile <scenario.yaml> [scenario.yaml ...]",
	Short: "Compile scenario files into TAPAAL models and queries",
	Long: `Compile hand-written YAML attack scenarios into TAPAAL timed-arc Petri
net models with matching CTL diagnosability queries.

Each scenario produces <name>.xml and <name>.q in the output directory.
Observable nodes come from --observe flags, then from the scenario file,
then default to every internal node.

Examples:
  # Compile one scenario
  datgen compile scenario.yaml

  # Compile several into a build directory
  datgen compile a.yaml b.yaml -o build/

  # Observe specific nodes only
  datgen compile scenario.yaml --observe gateway --observe db_server

  # Refuse scenarios with structural issues
  datgen compile scenario.yaml --strict`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringArrayVar(&compileObserve, "observe", nil,
		"Observable node ID (repeatable, overrides the scenario's own list)")
	compileCmd.Flags().BoolVar(&compileStrict, "strict", false,
		"Fail on scenarios with structural issues instead of compiling them")
}

func runCompile(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, path := range args {
		scenario, err := attack.NewLoader(filepath.Dir(path)).LoadFile(path)
		if err != nil {
			return err
		}

		tree, attrs := scenario.Build()

		issues := attack.ValidateTree(tree, attrs)
		if len(issues) > 0 {
			if compileStrict {
				return fmt.Errorf("scenario %s failed validation: %s",
					scenario.Name, strings.Join(issues, "; "))
			}
			fmt.Printf("Warning: scenario %s has issues: %s\n",
				scenario.Name, strings.Join(issues, "; "))
		}

		observable, err := observablesFor(scenario, tree, attrs)
		if err != nil {
			return err
		}

		doc := tapn.Compile(tree, attrs, scenario.Name)
		xmlContent, err := doc.XML()
		if err != nil {
			return err
		}
		query := ctl.Synthesize(tree, observable, scenario.Name)

		modelPath := filepath.Join(outputDir, scenario.Name+".xml")
		if err := os.WriteFile(modelPath, []byte(xmlContent), 0o644); err != nil {
			return fmt.Errorf("failed to write model: %w", err)
		}
		queryPath := filepath.Join(outputDir, scenario.Name+".q")
		if err := os.WriteFile(queryPath, []byte(query), 0o644); err != nil {
			return fmt.Errorf("failed to write query: %w", err)
		}

		fmt.Printf("✓ %s -> %s, %s\n", path, modelPath, queryPath)
	}

	return nil
}

// observablesFor resolves the observable set for one scenario, preferring
// explicit --observe flags over the scenario's declaration.
func observablesFor(sc attack.Scenario, tree *attack.Tree, attrs attack.AttrMap) (attack.ObservableSet, error) {
	if len(compileObserve) == 0 {
		return sc.Observables(tree, attrs), nil
	}

	observable := make(attack.ObservableSet)
	for _, id := range compileObserve {
		if !tree.HasNode(id) {
			return nil, fmt.Errorf("observable node not in scenario %s: %s", sc.Name, id)
		}
		observable[id] = true
	}
	return observable, nil
}
