package source

import (
	"testing"

	"github.com/stretchr/testify/require"

	"contactcleaner/pkg/models"
)

func TestRowsToRecordsPairsNameWithEmail(t *testing.T) {
	rows := [][]string{
		{"Name", "Email"},
		{"Jane Doe", "jane@acme.com"},
		{"J. Doe", "JANE@ACME.COM"},
		{"Bad Row", "not-an-email"},
	}

	got := rowsToRecords(rows)
	require.Equal(t, []models.RawRecord{
		{Name: "Jane Doe", Email: "jane@acme.com"},
		{Name: "J. Doe", Email: "JANE@ACME.COM"},
	}, got)
}

func TestRowsToRecordsMailboxHeaders(t *testing.T) {
	rows := [][]string{
		{"Sender", "Recipients", "Subject"},
		{"Jane <jane@acme.com>", "bob@corp.org, Eve <eve@corp.org>", "hello"},
	}

	got := rowsToRecords(rows)
	require.Equal(t, []models.RawRecord{
		{Name: "Jane", Email: "jane@acme.com"},
		{Email: "bob@corp.org"},
		{Name: "Eve", Email: "eve@corp.org"},
	}, got)
}

func TestRowsToRecordsNoMatchingHeaderScansAll(t *testing.T) {
	rows := [][]string{
		{"col_a", "col_b"},
		{"jane@acme.com", "x"},
		{"y", "bob@corp.org"},
	}

	got := rowsToRecords(rows)
	require.Equal(t, []models.RawRecord{
		{Email: "jane@acme.com"},
		{Email: "bob@corp.org"},
	}, got)
}

func TestRowsToRecordsRaggedRows(t *testing.T) {
	rows := [][]string{
		{"name", "email"},
		{"Jane Doe"},
		{},
		{"Bob", "bob@corp.org"},
	}

	got := rowsToRecords(rows)
	require.Equal(t, []models.RawRecord{{Name: "Bob", Email: "bob@corp.org"}}, got)
}

func TestRowsToRecordsEmpty(t *testing.T) {
	require.Nil(t, rowsToRecords(nil))
	require.Nil(t, rowsToRecords([][]string{{"name", "email"}}))
}
