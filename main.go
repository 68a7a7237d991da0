// =============================================================================
// Picking List Generator - Main Entry Point
// =============================================================================
//
// Entry point for the picking CLI. It initializes the Cobra CLI framework
// and delegates command execution to the cmd package.
//
// USAGE:
//   picking generate <input-file>   - Run the pipeline for one matrix file
//   picking version                 - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : core pipeline stages (not for external import)
//   - pkg/       : shared logging and spreadsheet services
//
// =============================================================================

package main

import (
	"github.com/hmiyake/picking-list-generator/cmd"
)

func main() {
	cmd.Execute()
}
