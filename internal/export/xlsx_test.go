package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"contactcleaner/pkg/models"
)

var sample = []models.Contact{
	{FullName: "Jane Doe", FirstName: "Jane", LastName: "Doe", Email: "jane@acme.com", Domain: "acme.com"},
	{FullName: "Bob", FirstName: "Bob", Email: "bob@corp.org", Domain: "corp.org"},
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sample))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, Columns, rows[0])
	require.Equal(t, []string{"Jane Doe", "Jane", "Doe", "jane@acme.com", "acme.com"}, rows[1])
	// trailing empty cells may be trimmed by the reader
	require.Equal(t, "Bob", rows[2][0])
	require.Equal(t, "bob@corp.org", rows[2][3])
}

func TestWriteXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, Columns, rows[0])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Equal(t, [][]string{
		Columns,
		{"Jane Doe", "Jane", "Doe", "jane@acme.com", "acme.com"},
		{"Bob", "Bob", "", "bob@corp.org", "corp.org"},
	}, rows)
}
