// =============================================================================
// Domains Template Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'generate', 'validate') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (templategen)
//   ├── generateCmd (templategen generate)
//   ├── validateCmd (templategen validate)
//   └── versionCmd (templategen version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (e.g., --config, --verbose)
//   2. Delegating configuration loading to the individual commands
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
// This is the entry point for the CLI application.
var rootCmd = &cobra.Command{
	// Use is the one-line usage message.
	Use: "templategen",

	// Short is a short description shown in the 'help' output.
	Short: "Domains Template Generator - Produce the domains data entry template",

	// Long is a longer description shown in the 'help <command>' output.
	Long: `Domains Template Generator is a CLI tool that produces the example
spreadsheet used as a fill-in-the-blank form for submitting domain listings.

The generator builds a fixed sample table (three example listings), writes it
as a formatted XLSX workbook with a bold header row and auto-sized columns,
and also emits a plain CSV variant of the same table.

Key Features:
  - Deterministic output: re-running produces byte-identical files
  - Optional archival of the previous template before overwriting
  - Sample data consistency checks via the 'validate' command

Example Usage:
  templategen generate                    # Write the XLSX and CSV templates
  templategen generate --skip-csv         # Write only the XLSX template
  templategen generate --config ./my.yaml # Use a custom configuration file
  templategen validate                    # Check configuration and sample data`,

	// Run is the function that will be executed when the root command is called
	// without any subcommands. In this case, we just print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Execute the root command. If there's an error, print it and exit.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init is called automatically when the package is loaded.
// It sets up the global flags shared by all subcommands.
func init() {
	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================
	// Persistent flags are available to this command and all subcommands.

	// --config flag: Allows the user to specify a custom configuration file.
	// Default is "config.yaml" in the current directory. A missing file is not
	// an error: the built-in defaults reproduce the standard output paths.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables verbose output.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
