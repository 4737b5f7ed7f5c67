// =============================================================================
// Domains Template Generator - CSV Writer
// =============================================================================
//
// This module writes the template table as a plain comma-delimited file:
// one header line followed by one line per template row. Absent cells become
// empty fields. Quoting follows encoding/csv, which quotes a field only when
// it contains the delimiter, a quote, or a line break. There is no styling in
// this format, so the CSV variant carries values only.
//
// =============================================================================

package csvwriter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vibhu0810/db/internal/template"
)

// Write writes the table as a CSV file at path.
//
// PARAMETERS:
//   - table: The template table to write.
//   - path: The destination file path. The parent directory is created if
//     missing, and an existing file is overwritten.
//
// RETURNS:
//   - An error if the directory or file cannot be created or a row cannot
//     be written.
func Write(table *template.Table, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	if err := w.Write(table.Headers()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for i := 0; i < table.RowCount(); i++ {
		if err := w.Write(table.StringRow(i)); err != nil {
			f.Close()
			return fmt.Errorf("failed to write csv row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush csv file: %w", err)
	}

	return f.Close()
}
