// =============================================================================
// Domains Template Generator - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks the configuration
// and the sample data without writing any files.
//
// COMMAND USAGE:
//   templategen validate
//
// CHECKS:
//   1. The configuration file parses and its values are usable
//   2. The sample listings follow the type/price consistency convention the
//      template documents by example (prices and TATs populated to match
//      each row's type, rating in range, positive prices)
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibhu0810/db/internal/config"
	"github.com/vibhu0810/db/internal/types"
	"github.com/vibhu0810/db/internal/validation"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check configuration and sample data consistency",
	Long: `The validate command loads the configuration and checks the sample
listings against the conventions the template documents by example, without
writing any output files.

Generation never runs these checks; the sample rows are emitted as-is. Use
this command after editing the sample data to confirm the examples still
demonstrate a consistent listing of each type.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

// init registers the validate command with the root command.
func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate checks the configuration and the sample listings.
func runValidate() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("Configuration OK")
	fmt.Printf("  XLSX output: %s\n", cfg.XLSXPath())
	fmt.Printf("  CSV output:  %s\n", cfg.CSVPath())

	listings := types.SampleListings()
	errors := validation.ValidateListings(listings)
	if len(errors) > 0 {
		fmt.Print(validation.FormatErrors(errors))
		return fmt.Errorf("sample data has %d validation error(s)", len(errors))
	}

	fmt.Printf("Sample data OK (%d listings)\n", len(listings))
	return nil
}
