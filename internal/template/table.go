// =============================================================================
// Domains Template Generator - Table Model
// =============================================================================
//
// This module builds the in-memory table that both writers (XLSX and CSV)
// consume. A Table is an ordered collection of named columns with equal-length
// cell sequences; a nil cell is the absence marker and becomes an empty
// cell/field in the output files.
//
// COLUMN ORDER (fixed):
//   Website URL, Domain Rating, Website Traffic, Type, Guest Post Price,
//   Niche Edit Price, GP TAT (in days), NE TAT (in days), Guidelines
//
// =============================================================================

package template

import (
	"fmt"
	"strconv"

	"github.com/vibhu0810/db/internal/types"
)

// =============================================================================
// TABLE STRUCTURE
// =============================================================================

// Column is one named column of the template table.
type Column struct {
	// Header is the column label written to row 1.
	Header string

	// Cells holds one value per template row, in row order.
	// A nil cell marks an absent (not applicable) value.
	Cells []any
}

// Table is the ordered set of columns making up the template.
// All columns hold the same number of cells.
type Table struct {
	Columns []Column
}

// =============================================================================
// TABLE CONSTRUCTION
// =============================================================================

// BuildDomainsTable builds the template table from the given listings,
// preserving the fixed column order.
func BuildDomainsTable(listings []types.Listing) *Table {
	n := len(listings)

	websiteURL := make([]any, n)
	domainRating := make([]any, n)
	websiteTraffic := make([]any, n)
	listingType := make([]any, n)
	guestPostPrice := make([]any, n)
	nicheEditPrice := make([]any, n)
	gpTAT := make([]any, n)
	neTAT := make([]any, n)
	guidelines := make([]any, n)

	for i, l := range listings {
		websiteURL[i] = l.WebsiteURL
		domainRating[i] = l.DomainRating
		websiteTraffic[i] = l.WebsiteTraffic
		listingType[i] = string(l.Type)
		guestPostPrice[i] = optionalCell(l.GuestPostPrice)
		nicheEditPrice[i] = optionalCell(l.NicheEditPrice)
		gpTAT[i] = optionalCell(l.GPTATDays)
		neTAT[i] = optionalCell(l.NETATDays)
		guidelines[i] = l.Guidelines
	}

	return &Table{
		Columns: []Column{
			{Header: "Website URL", Cells: websiteURL},
			{Header: "Domain Rating", Cells: domainRating},
			{Header: "Website Traffic", Cells: websiteTraffic},
			{Header: "Type", Cells: listingType},
			{Header: "Guest Post Price", Cells: guestPostPrice},
			{Header: "Niche Edit Price", Cells: nicheEditPrice},
			{Header: "GP TAT (in days)", Cells: gpTAT},
			{Header: "NE TAT (in days)", Cells: neTAT},
			{Header: "Guidelines", Cells: guidelines},
		},
	}
}

// optionalCell converts an optional integer field to a cell value.
func optionalCell(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// =============================================================================
// TABLE ACCESSORS
// =============================================================================

// Headers returns the column headers in column order.
func (t *Table) Headers() []string {
	headers := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = col.Header
	}
	return headers
}

// RowCount returns the number of data rows in the table.
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// Row returns the cells of data row i, in column order.
// Absent values are returned as nil.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.Columns))
	for j, col := range t.Columns {
		row[j] = col.Cells[i]
	}
	return row
}

// StringRow returns data row i with every cell stringified, in column order.
// Absent values become empty strings. This is the projection the CSV variant
// writes, and the one used for column width computation.
func (t *Table) StringRow(i int) []string {
	row := make([]string, len(t.Columns))
	for j, col := range t.Columns {
		row[j] = FormatCell(col.Cells[i])
	}
	return row
}

// ColumnWidth computes the display width for column j: the longer of the
// header and the longest stringified cell value, plus padding.
func (t *Table) ColumnWidth(j, padding int) int {
	width := len(t.Columns[j].Header)
	for _, cell := range t.Columns[j].Cells {
		if l := len(FormatCell(cell)); l > width {
			width = l
		}
	}
	return width + padding
}

// =============================================================================
// CELL FORMATTING
// =============================================================================

// FormatCell converts a cell value to its string form.
// nil (the absence marker) formats as the empty string.
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
