package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"contactcleaner/pkg/models"
)

// Columns is the exact output header, in order.
var Columns = []string{"Full Name", "First Name", "Last Name", "Email", "Domain"}

// ExportError is a serialization failure for the final table. Terminal
// for the current upload; the caller must not emit a partial file.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string { return fmt.Sprintf("export contacts: %v", e.Err) }
func (e *ExportError) Unwrap() error { return e.Err }

// WriteXLSX serializes the contacts as a single-sheet workbook, one row
// per contact in the order given.
func WriteXLSX(w io.Writer, contacts []models.Contact) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return &ExportError{Err: err}
	}

	for i, c := range contacts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return &ExportError{Err: err}
		}
		row := []any{c.FullName, c.FirstName, c.LastName, c.Email, c.Domain}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return &ExportError{Err: err}
		}
	}

	if err := f.Write(w); err != nil {
		return &ExportError{Err: err}
	}
	return nil
}

// WriteCSV is the plain-text companion used by the offline tools.
func WriteCSV(w io.Writer, contacts []models.Contact) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return &ExportError{Err: err}
	}
	for _, c := range contacts {
		if err := cw.Write([]string{c.FullName, c.FirstName, c.LastName, c.Email, c.Domain}); err != nil {
			return &ExportError{Err: err}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return &ExportError{Err: err}
	}
	return nil
}
