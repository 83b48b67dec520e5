package source

import (
	"encoding/csv"
	"os"

	"contactcleaner/pkg/models"
)

func readCSV(path string) ([]models.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{SourceType: "csv", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, &ReadError{SourceType: "csv", Err: err}
	}
	return rowsToRecords(rows), nil
}
