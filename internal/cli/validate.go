package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Ali1tnk/DAT-evaluation/internal/attack"
)

var validateStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate attack scenario files",
	Long: `Validate scenario files against the structural rules: connectivity,
acyclicity, attribute presence, interval sanity, and gate/leaf pairing.

The path may be a single YAML file or a directory to scan recursively.

Examples:
  # Validate one scenario
  datgen validate scenario.yaml

  # Validate a whole directory
  datgen validate scenarios/

  # Exit non-zero on any issue
  datgen validate scenarios/ --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false,
		"Exit with an error when any scenario has issues")
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	var scenarios []attack.Scenario
	if info.IsDir() {
		scenarios, err = attack.NewLoader(path).LoadAll()
	} else {
		var scenario attack.Scenario
		scenario, err = attack.NewLoader(filepath.Dir(path)).LoadFile(path)
		scenarios = []attack.Scenario{scenario}
	}
	if err != nil {
		return err
	}

	if len(scenarios) == 0 {
		fmt.Println("No scenarios found to validate")
		return nil
	}

	totalIssues := 0
	for _, scenario := range scenarios {
		tree, attrs := scenario.Build()
		issues := attack.ValidateTree(tree, attrs)
		totalIssues += len(issues)

		status := "✓"
		if len(issues) > 0 {
			status = "✗"
		}
		fmt.Printf("%s %s (%d nodes, %d leaves)\n",
			status, scenario.Name, tree.NodeCount(), len(tree.Leaves()))

		for _, issue := range issues {
			fmt.Printf("  ISSUE: %s\n", issue)
		}
	}

	// Summary
	fmt.Printf("\nValidated %d scenario(s): %d issue(s)\n", len(scenarios), totalIssues)

	if validateStrict && totalIssues > 0 {
		return fmt.Errorf("%d issue(s) found", totalIssues)
	}

	return nil
}
