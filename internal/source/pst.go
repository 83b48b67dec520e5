package source

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"net/mail"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"contactcleaner/pkg/models"
)

var addressHeaders = []string{"From", "To", "Cc", "Bcc"}

// readPST converts the mailbox with the external readpst tool and mines
// the produced .eml files for sender/recipient addresses. PST binary
// decoding stays outside this repository.
func (r Reader) readPST(ctx context.Context, path string) ([]models.RawRecord, error) {
	bin := r.ReadpstPath
	if bin == "" {
		bin = "readpst"
	}
	bin, err := exec.LookPath(bin)
	if err != nil {
		return nil, &ReadError{SourceType: "pst", Err: fmt.Errorf("readpst not found (install libpst / pst-utils): %w", err)}
	}

	dir, err := os.MkdirTemp("", "pst_eml_")
	if err != nil {
		return nil, &ReadError{SourceType: "pst", Err: err}
	}
	defer os.RemoveAll(dir)

	cmd := exec.CommandContext(ctx, bin, "-e", "-o", dir, "-q", path)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, &ReadError{SourceType: "pst", Err: fmt.Errorf("readpst: %v: %s", err, bytes.TrimSpace(out))}
	}

	recs, err := readEMLDir(dir)
	if err != nil {
		return nil, &ReadError{SourceType: "pst", Err: err}
	}
	return recs, nil
}

// readEMLDir walks dir recursively (readpst mirrors the PST folder tree)
// and collects addresses from every message. Individual unreadable
// messages are skipped; only a failed walk fails the whole file.
func readEMLDir(dir string) ([]models.RawRecord, error) {
	var recs []models.RawRecord
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".eml") {
			return nil
		}
		recs = append(recs, readEMLFile(p)...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func readEMLFile(path string) []models.RawRecord {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	msg, err := mail.ReadMessage(bufio.NewReader(f))
	if err != nil {
		return nil
	}

	var recs []models.RawRecord
	for _, key := range addressHeaders {
		recs = append(recs, splitAddressList(msg.Header.Get(key))...)
	}
	return recs
}
