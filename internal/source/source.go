package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"contactcleaner/pkg/models"
)

// ErrUnsupportedType marks an upload with an extension we do not handle.
var ErrUnsupportedType = errors.New("unsupported file type")

// ReadError is a whole-file failure: the upload could not be opened or
// parsed at all. It never accompanies partial records.
type ReadError struct {
	SourceType string
	Err        error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s source: %v", e.SourceType, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Type maps a filename to its normalized source type ("csv", "xlsx",
// "xls", "pst"); empty string means unsupported.
func Type(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return "csv"
	case ".xlsx":
		return "xlsx"
	case ".xls":
		return "xls"
	case ".pst":
		return "pst"
	default:
		return ""
	}
}

// Reader extracts raw contact records from uploaded files.
type Reader struct {
	// ReadpstPath overrides the readpst binary used for .pst uploads;
	// empty means look it up on PATH.
	ReadpstPath string
}

// Read parses the file at path, dispatching on the original upload
// filename's extension. ctx only matters for the pst route, which runs
// an external process.
func (r Reader) Read(ctx context.Context, path, filename string) ([]models.RawRecord, error) {
	switch Type(filename) {
	case "csv":
		return readCSV(path)
	case "xlsx":
		return readXLSX(path)
	case "xls":
		return readXLS(path)
	case "pst":
		return r.readPST(ctx, path)
	default:
		return nil, ErrUnsupportedType
	}
}
