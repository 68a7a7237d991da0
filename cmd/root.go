// =============================================================================
// Picking List Generator - Root Command
// =============================================================================
//
// Defines the root command for the Cobra CLI. All subcommands ('generate',
// 'version') are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (picking)
//   ├── generateCmd (picking generate)
//   └── versionCmd (picking version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hmiyake/picking-list-generator/internal/config"
)

// cfgFile holds the path to the configuration file, overridable with
// --config.
var cfgFile string

// verbose enables debug logging when set.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "picking",
	Short: "Picking List Generator - derive picking lists and order entries from a BOM matrix",
	Long: `Picking List Generator converts a bill-of-materials matrix spreadsheet into
CM and A-parts picking lists plus a formatted order-entry sheet for the
legacy ordering system.

The run matches matrix rows against the CM and A-parts master catalogs,
derives box counts and option strings, and writes a single timestamped
result workbook.

Example Usage:
  picking generate data/input/FRAME12345.xlsx            # full mode (CM + A-parts)
  picking generate data/input/FRAME12345.xlsx --line C   # CM-only mode
  picking generate input.xlsx --config ./site.yaml       # custom configuration`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it. Called by
// main.main(); any error maps to exit code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultPath,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
