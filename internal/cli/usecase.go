package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ali1tnk/DAT-evaluation/internal/attack"
	"github.com/Ali1tnk/DAT-evaluation/internal/ctl"
	"github.com/Ali1tnk/DAT-evaluation/internal/tapn"
)

var usecaseObservable string

var usecaseCmd = &cobra.Command{
	Use:   "usecase",
	Short: "Generate the e-commerce insider threat use case",
	Long: `Build the curated e-commerce insider threat scenario: an insider
exfiltrating the credit card database of a cloud-hosted platform.

Writes the TAPAAL model, an enhanced three-part CTL query, and a JSON
analysis of attack paths and diagnosability under the chosen observable.

Examples:
  # Standard use case with auth service monitoring
  datgen usecase

  # Same scenario observing a different node
  datgen usecase --observable steal_db_credentials

  # Human-readable analysis report
  datgen usecase --verbose`,
	RunE: runUsecase,
}

func init() {
	usecaseCmd.Flags().StringVar(&usecaseObservable, "observable", attack.NodeAuthExploit,
		"Node whose compromise the defender can observe")
}

func runUsecase(cmd *cobra.Command, args []string) error {
	tree, attrs := attack.ECommerceTree()

	if !tree.HasNode(usecaseObservable) {
		return fmt.Errorf("observable node not in scenario: %s", usecaseObservable)
	}

	issues := attack.ValidateTree(tree, attrs)
	if len(issues) > 0 {
		fmt.Printf("Warning: Tree structure issues found: %s\n", strings.Join(issues, "; "))
	} else {
		fmt.Println("✓ Tree structure validation passed")
	}

	analysis := attack.AnalyzePaths(tree, attrs)
	diag := attack.Diagnose(analysis, usecaseObservable)

	report := attack.Report{
		Scenario:           "E-commerce Platform Insider Threat",
		Stats:              attack.ComputeStats(tree, attrs),
		PathAnalysis:       analysis,
		Diagnosability:     diag,
		ObservableStrategy: observableStrategy(usecaseObservable),
		KeyFinding:         keyFinding(diag),
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	doc := tapn.Compile(tree, attrs, "ecommerce")
	xmlContent, err := doc.XML()
	if err != nil {
		return err
	}
	modelPath := filepath.Join(outputDir, "use_case.xml")
	if err := os.WriteFile(modelPath, []byte(xmlContent), 0o644); err != nil {
		return fmt.Errorf("failed to write model: %w", err)
	}
	fmt.Printf("✓ TAPAAL model saved to: %s\n", modelPath)

	query := ctl.EnhancedQuery(tree, usecaseObservable)
	queryPath := filepath.Join(outputDir, "use_case.q")
	if err := os.WriteFile(queryPath, []byte(query), 0o644); err != nil {
		return fmt.Errorf("failed to write query: %w", err)
	}
	fmt.Printf("✓ CTL query saved to: %s\n", queryPath)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	analysisPath := filepath.Join(outputDir, "use_case_analysis.json")
	if err := os.WriteFile(analysisPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write analysis: %w", err)
	}
	fmt.Printf("✓ Analysis results saved to: %s\n", analysisPath)

	if getFormat() == attack.FormatText {
		output, err := attack.FormatReport(report, attack.FormatText)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(output)
	}

	return nil
}

func observableStrategy(node string) string {
	if node == attack.NodeAuthExploit {
		return "Authentication service monitoring"
	}
	return fmt.Sprintf("Monitoring of %s", node)
}

func keyFinding(d attack.Diagnosability) string {
	if !d.UniqueDiagnosis {
		return fmt.Sprintf("Observing %s does not uniquely identify the attack path", d.ObservableNode)
	}
	if d.ObservableNode == attack.NodeAuthExploit {
		return "Auth service compromise enables unique attack path diagnosis"
	}
	return fmt.Sprintf("Observing %s enables unique attack path diagnosis", d.ObservableNode)
}
