// =============================================================================
// Domains Template Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which produces the template files.
//
// COMMAND USAGE:
//   templategen generate [flags]
//
// FLAGS:
//   --dry-run    : Build the table and report what would be written, without
//                  touching the filesystem
//   --out        : Override the output directory from the configuration
//   --skip-csv   : Write only the XLSX template, not the CSV variant
//
// GENERATION PIPELINE:
//   1. Load configuration
//   2. Build the fixed sample table
//   3. Ensure the output directory exists
//   4. Archive the previous template files (when archival is enabled)
//   5. Write the XLSX template
//   6. Write the CSV variant (unless skipped)
//   7. Print one confirmation line per file
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibhu0810/db/internal/config"
	"github.com/vibhu0810/db/internal/csvwriter"
	"github.com/vibhu0810/db/internal/template"
	"github.com/vibhu0810/db/internal/types"
	"github.com/vibhu0810/db/internal/xlsxwriter"
	"github.com/vibhu0810/db/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dryRun reports what would be written without touching the filesystem.
var dryRun bool

// outDir overrides the configured output directory when non-empty.
var outDir string

// skipCSV disables the CSV variant.
var skipCSV bool

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the domains template files",
	Long: `The generate command builds the fixed sample table of example domain
listings and writes it out twice: as a formatted XLSX workbook (bold header
row, auto-sized columns, one sheet) and as a plain CSV file with the same
header and rows.

Existing template files at the output paths are overwritten. When an archive
directory is configured, the previous files are copied aside first.

The output is deterministic: running the command twice produces byte-for-byte
identical files.`,

	// RunE is like Run but returns an error. This is preferred for commands
	// that can fail, as it allows Cobra to handle the error gracefully.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the generate command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(generateCmd)

	// ==========================================================================
	// LOCAL FLAGS
	// ==========================================================================
	// Local flags are only available to this command.

	// --dry-run flag: Report what would be written without writing it.
	generateCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Report what would be written without writing output files",
	)

	// --out flag: Override the configured output directory.
	generateCmd.Flags().StringVar(
		&outDir,
		"out",
		"",
		"Output directory (overrides the configuration)",
	)

	// --skip-csv flag: Write only the XLSX template.
	generateCmd.Flags().BoolVar(
		&skipCSV,
		"skip-csv",
		false,
		"Write only the XLSX template, not the CSV variant",
	)
}

// =============================================================================
// MAIN GENERATION FUNCTION
// =============================================================================

// runGenerate is the main function that orchestrates template generation.
func runGenerate() error {
	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if outDir != "" {
		cfg.OutputDir = outDir
	}

	if verbose {
		fmt.Printf("Output directory: %s\n", cfg.OutputDir)
		fmt.Printf("Sheet name:       %s\n", cfg.SheetName)
	}

	// =========================================================================
	// STEP 2: BUILD THE SAMPLE TABLE
	// =========================================================================

	table := template.BuildDomainsTable(types.SampleListings())

	if dryRun {
		fmt.Printf("Dry run: would write %d columns x %d rows to %s\n",
			len(table.Columns), table.RowCount(), cfg.XLSXPath())
		if *cfg.WriteCSV && !skipCSV {
			fmt.Printf("Dry run: would write CSV variant to %s\n", cfg.CSVPath())
		}
		return nil
	}

	// =========================================================================
	// STEP 3: ENSURE THE OUTPUT DIRECTORY
	// =========================================================================

	if err := utils.EnsureDir(cfg.OutputDir); err != nil {
		return err
	}

	// =========================================================================
	// STEP 4: ARCHIVE PREVIOUS TEMPLATES
	// =========================================================================

	if cfg.ArchiveEnabled() {
		for _, path := range []string{cfg.XLSXPath(), cfg.CSVPath()} {
			archived, err := utils.ArchiveExisting(path, cfg.ArchiveDir)
			if err != nil {
				return err
			}
			if verbose && archived != "" {
				fmt.Printf("Archived previous template to %s\n", archived)
			}
		}
	}

	// =========================================================================
	// STEP 5: WRITE THE XLSX TEMPLATE
	// =========================================================================

	xlsxOptions := xlsxwriter.DefaultOptions()
	xlsxOptions.SheetName = cfg.SheetName
	xlsxOptions.WidthPadding = cfg.WidthPadding

	if err := xlsxwriter.WriteWithOptions(table, cfg.XLSXPath(), xlsxOptions); err != nil {
		return fmt.Errorf("failed to write xlsx template: %w", err)
	}
	fmt.Printf("Excel template created successfully at %s\n", cfg.XLSXPath())

	// =========================================================================
	// STEP 6: WRITE THE CSV VARIANT
	// =========================================================================

	if *cfg.WriteCSV && !skipCSV {
		if err := csvwriter.Write(table, cfg.CSVPath()); err != nil {
			return fmt.Errorf("failed to write csv template: %w", err)
		}
		fmt.Printf("CSV template created successfully at %s\n", cfg.CSVPath())
	}

	return nil
}
