package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"contactcleaner/pkg/models"
)

func TestType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "contacts.csv", want: "csv"},
		{in: "Contacts.XLSX", want: "xlsx"},
		{in: "old-export.xls", want: "xls"},
		{in: "mailbox.pst", want: "pst"},
		{in: "archive.zip", want: ""},
		{in: "noext", want: ""},
	}
	for _, tt := range tests {
		if got := Type(tt.in); got != tt.want {
			t.Fatalf("Type(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadUnsupportedType(t *testing.T) {
	_, err := Reader{}.Read(context.Background(), "whatever", "archive.zip")
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.csv")
	data := "name,email\nJane Doe,jane@acme.com\nJ. Doe,JANE@ACME.COM\nBad Row,not-an-email\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	recs, err := Reader{}.Read(context.Background(), path, "contacts.csv")
	require.NoError(t, err)
	require.Equal(t, []models.RawRecord{
		{Name: "Jane Doe", Email: "jane@acme.com"},
		{Name: "J. Doe", Email: "JANE@ACME.COM"},
	}, recs)
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := Reader{}.Read(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), "nope.csv")

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	require.Equal(t, "csv", readErr.SourceType)
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Name", "Email"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Jane Doe", "jane@acme.com"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Bob", "bob@corp.org"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	recs, err := Reader{}.Read(context.Background(), path, "contacts.xlsx")
	require.NoError(t, err)
	require.Equal(t, []models.RawRecord{
		{Name: "Jane Doe", Email: "jane@acme.com"},
		{Name: "Bob", Email: "bob@corp.org"},
	}, recs)
}

func TestReadXLSXCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("this is not a workbook"), 0o644))

	_, err := Reader{}.Read(context.Background(), path, "broken.xlsx")

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	require.Equal(t, "xlsx", readErr.SourceType)
}

func TestReadPSTMissingBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mail.pst")
	require.NoError(t, os.WriteFile(path, []byte("stub"), 0o644))

	r := Reader{ReadpstPath: filepath.Join(t.TempDir(), "no-such-readpst")}
	_, err := r.Read(context.Background(), path, "mail.pst")

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	require.Equal(t, "pst", readErr.SourceType)
	require.ErrorContains(t, err, "readpst not found")
}
