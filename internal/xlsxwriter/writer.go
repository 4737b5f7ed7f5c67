// =============================================================================
// Domains Template Generator - XLSX Writer
// =============================================================================
//
// This module writes the template table to an XLSX workbook using excelize.
// The workbook has:
//   - A single worksheet with a configurable name
//   - Column headers in row 1, in column order, with a bold font
//   - One data row per template row starting at row 2
//   - Per-column widths sized to fit the longer of the header and the longest
//     stringified cell value, plus padding
//
// DETERMINISM:
//   The document properties (creator, created, modified) are pinned to fixed
//   values. excelize otherwise stamps the current time into docProps, which
//   would make two runs of the generator produce different bytes.
//
// COLUMN LIMIT:
//   Columns are addressed by single-letter slots (A through Z), so tables
//   wider than 26 columns are rejected with an error instead of being written
//   to the wrong slots.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/vibhu0810/db/internal/template"
)

// maxColumns is the widest table the single-letter column slots can address.
const maxColumns = 26

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls how the workbook is generated.
type Options struct {
	// SheetName is the name of the single worksheet.
	SheetName string

	// WidthPadding is added to every computed column width.
	WidthPadding int

	// Creator is recorded in the workbook's document properties.
	Creator string
}

// DefaultOptions returns the standard generation options.
func DefaultOptions() Options {
	return Options{
		SheetName:    "Domains Template",
		WidthPadding: 2,
		Creator:      "templategen",
	}
}

// =============================================================================
// WRITER FUNCTIONS
// =============================================================================

// Write writes the table to an XLSX file at path using the default options.
//
// PARAMETERS:
//   - table: The template table to write.
//   - path: The destination file path. The parent directory is created if
//     missing, and an existing file is overwritten.
//
// RETURNS:
//   - An error if the table is too wide, the directory cannot be created, or
//     the workbook cannot be built or saved.
func Write(table *template.Table, path string) error {
	return WriteWithOptions(table, path, DefaultOptions())
}

// WriteWithOptions writes the table to an XLSX file at path using the given
// options.
func WriteWithOptions(table *template.Table, path string, options Options) error {
	if len(table.Columns) > maxColumns {
		return fmt.Errorf("table has %d columns, single-letter column slots support at most %d", len(table.Columns), maxColumns)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet instead of adding a second one.
	if err := f.SetSheetName("Sheet1", options.SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	// Pin the document properties so repeated runs produce identical bytes.
	if err := f.SetDocProps(&excelize.DocProperties{
		Creator:        options.Creator,
		LastModifiedBy: options.Creator,
		Created:        "2024-01-01T00:00:00Z",
		Modified:       "2024-01-01T00:00:00Z",
	}); err != nil {
		return fmt.Errorf("failed to set document properties: %w", err)
	}

	if err := writeHeaderRow(f, table, options); err != nil {
		return err
	}
	if err := writeDataRows(f, table, options); err != nil {
		return err
	}
	if err := applyColumnWidths(f, table, options); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

// =============================================================================
// WORKBOOK CONSTRUCTION
// =============================================================================

// writeHeaderRow writes the bold column headers into row 1.
func writeHeaderRow(f *excelize.File, table *template.Table, options Options) error {
	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for j, col := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell %d: %w", j+1, err)
		}
		if err := f.SetCellValue(options.SheetName, cell, col.Header); err != nil {
			return fmt.Errorf("failed to write header %q: %w", col.Header, err)
		}
		if err := f.SetCellStyle(options.SheetName, cell, cell, boldStyle); err != nil {
			return fmt.Errorf("failed to style header %q: %w", col.Header, err)
		}
	}

	return nil
}

// writeDataRows writes the table rows starting at row 2.
// Absent cells are skipped, leaving them empty in the workbook.
func writeDataRows(f *excelize.File, table *template.Table, options Options) error {
	for i := 0; i < table.RowCount(); i++ {
		for j, value := range table.Row(i) {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to address cell (%d,%d): %w", j+1, i+2, err)
			}
			if err := f.SetCellValue(options.SheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	return nil
}

// applyColumnWidths sizes each column slot to fit its contents.
func applyColumnWidths(f *excelize.File, table *template.Table, options Options) error {
	for j := range table.Columns {
		name, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return fmt.Errorf("failed to name column %d: %w", j+1, err)
		}
		width := table.ColumnWidth(j, options.WidthPadding)
		if err := f.SetColWidth(options.SheetName, name, name, float64(width)); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", name, err)
		}
	}

	return nil
}
