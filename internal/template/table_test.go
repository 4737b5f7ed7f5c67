package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibhu0810/db/internal/template"
	"github.com/vibhu0810/db/internal/types"
)

func TestBuildDomainsTableShape(t *testing.T) {
	table := template.BuildDomainsTable(types.SampleListings())

	require.Len(t, table.Columns, 9)
	assert.Equal(t, 3, table.RowCount())

	headers := table.Headers()
	assert.Equal(t, []string{
		"Website URL",
		"Domain Rating",
		"Website Traffic",
		"Type",
		"Guest Post Price",
		"Niche Edit Price",
		"GP TAT (in days)",
		"NE TAT (in days)",
		"Guidelines",
	}, headers)

	// All columns hold one cell per row.
	for _, col := range table.Columns {
		assert.Len(t, col.Cells, 3, "column %q", col.Header)
	}
}

func TestBuildDomainsTableRows(t *testing.T) {
	table := template.BuildDomainsTable(types.SampleListings())

	// Row 1: guest_post listing with no niche edit fields.
	row := table.Row(0)
	assert.Equal(t, "example.com", row[0])
	assert.Equal(t, 75, row[1])
	assert.Equal(t, 25000, row[2])
	assert.Equal(t, "guest_post", row[3])
	assert.Equal(t, 350, row[4])
	assert.Nil(t, row[5])
	assert.Equal(t, 10, row[6])
	assert.Nil(t, row[7])
	assert.Equal(t, "Please provide well-researched content", row[8])

	// Row 3: both listing with all optional fields populated.
	row = table.Row(2)
	assert.Equal(t, "multi-example.com", row[0])
	assert.Equal(t, "both", row[3])
	assert.Equal(t, 400, row[4])
	assert.Equal(t, 320, row[5])
	assert.Equal(t, 14, row[6])
	assert.Equal(t, 7, row[7])
}

func TestStringRowBlanksAbsentValues(t *testing.T) {
	table := template.BuildDomainsTable(types.SampleListings())

	// Row 2: niche_edit listing, so the guest post fields are empty.
	row := table.StringRow(1)
	assert.Equal(t, []string{
		"blog-example.com",
		"68",
		"18000",
		"niche_edit",
		"",
		"280",
		"",
		"7",
		"No branded anchor text",
	}, row)
}

func TestColumnWidth(t *testing.T) {
	table := template.BuildDomainsTable(types.SampleListings())

	// Guidelines: the longest cell is longer than the header.
	longest := len("Please provide well-researched content")
	assert.Equal(t, longest+2, table.ColumnWidth(8, 2))
	assert.GreaterOrEqual(t, table.ColumnWidth(8, 2), len("Guidelines")+2)

	// Domain Rating: the header is longer than any value.
	assert.Equal(t, len("Domain Rating")+2, table.ColumnWidth(1, 2))
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "", template.FormatCell(nil))
	assert.Equal(t, "hello", template.FormatCell("hello"))
	assert.Equal(t, "350", template.FormatCell(350))
	assert.Equal(t, "2.5", template.FormatCell(2.5))
}
