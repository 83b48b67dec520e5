package source

import (
	"errors"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"contactcleaner/pkg/models"
)

// legacy .xls sheets cap out at 65536 rows
const maxXLSRows = 65536

func readXLSX(path string) ([]models.RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ReadError{SourceType: "xlsx", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ReadError{SourceType: "xlsx", Err: errors.New("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &ReadError{SourceType: "xlsx", Err: err}
	}
	return rowsToRecords(rows), nil
}

func readXLS(path string) ([]models.RawRecord, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, &ReadError{SourceType: "xls", Err: err}
	}
	return rowsToRecords(wb.ReadAllCells(maxXLSRows)), nil
}
