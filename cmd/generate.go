// =============================================================================
// Picking List Generator - Generate Command
// =============================================================================
//
// Defines the 'generate' command, which runs the full pipeline for one input
// file.
//
// COMMAND USAGE:
//   picking generate <input-file> [flags]
//
// FLAGS:
//   --line        : Processing line: "A" (CM + A-parts) or "C" (CM only)
//   --output-dir  : Override the configured output directory
//
// Exit code is 0 on success and 1 on any validation or processing failure,
// with a human-readable summary on stdout either way.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hmiyake/picking-list-generator/internal/config"
	"github.com/hmiyake/picking-list-generator/internal/model"
	"github.com/hmiyake/picking-list-generator/internal/pipeline"
	"github.com/hmiyake/picking-list-generator/pkg/logging"
)

// line selects the processing line mode.
var line string

// outputDir optionally overrides the configured output directory.
var outputDir string

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate <input-file>",
	Short: "Generate picking lists and the order-entry sheet from a matrix spreadsheet",
	Long: `The generate command validates the matrix spreadsheet, resolves its rows
against the CM and A-parts master catalogs, builds the picking tables and
writes a single timestamped result workbook including the legacy
order-entry sheet.

Line modes:
  A   full mode: CM picking plus A-parts picking and validation (default)
  C   CM-only mode`,

	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(args[0])
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(
		&line,
		"line",
		string(pipeline.LineFull),
		`Processing line: "A" (CM + A-parts) or "C" (CM only)`,
	)

	generateCmd.Flags().StringVar(
		&outputDir,
		"output-dir",
		"",
		"Override the configured output directory",
	)
}

// runGenerate loads configuration, wires the logger and executes one run.
func runGenerate(inputPath string) error {
	lineMode := pipeline.Line(line)
	if lineMode != pipeline.LineFull && lineMode != pipeline.LineCMOnly {
		return fmt.Errorf(`invalid --line %q: must be "A" or "C"`, line)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	log := logging.New(logging.Options{
		Level:  level,
		Format: cfg.Logging.Format,
	})

	result := pipeline.New(inputPath, lineMode, cfg, log).Run()
	printSummary(result)

	if !result.Success {
		return errors.New(result.Message)
	}
	return nil
}

// printSummary writes the human-readable run summary to stdout.
func printSummary(result model.Result) {
	if result.Success {
		fmt.Printf("\n%s\n", result.Message)
		fmt.Printf("  Output file:      %s\n", result.OutputFile)
		fmt.Printf("  CM picking:       %d rows\n", result.CMPickingCount)
		if result.APartsPickingCount > 0 {
			fmt.Printf("  A-parts picking:  %d rows\n", result.APartsPickingCount)
		}
		fmt.Printf("  Elapsed:          %s\n", result.Elapsed)

		if len(result.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for _, w := range result.Warnings {
				fmt.Printf("  - %s\n", w)
			}
		}
		return
	}

	fmt.Printf("\n%s\n", result.Message)
	if len(result.Errors) > 0 {
		fmt.Println("\nErrors:")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}
}
