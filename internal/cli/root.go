package cli

import (
	"github.com/Ali1tnk/DAT-evaluation/internal/attack"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	outputFormat string
	verbose      bool
	outputDir    string
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "datgen",
	Short: "Timed attack tree generator for TAPAAL diagnosability evaluation",
	Long: `datgen - Generate timed attack trees and TAPAAL diagnosability artifacts.

Builds random or curated attack trees with time and cost annotations,
compiles them into timed-arc Petri net models, and emits CTL queries that
check whether observing selected nodes identifies the attack path.

Examples:
  # Generate the standard 100-tree evaluation corpus
  datgen generate

  # Build the e-commerce insider threat use case
  datgen usecase

  # Compile a hand-written scenario
  datgen compile scenario.yaml

  # Validate scenario files
  datgen validate scenarios/`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json",
		"Output format: json or text")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Human-readable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", ".",
		"Directory for generated files")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(usecaseCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// getFormat returns the output format based on flags
func getFormat() attack.OutputFormat {
	if outputFormat == "text" || verbose {
		return attack.FormatText
	}
	return attack.FormatJSON
}
