package source

import (
	"strings"

	"contactcleaner/pkg/models"
)

// header keywords that mark a column as address-bearing
var addressKeywords = []string{"sender", "recipient", "from", "to", "email", "contact", "cc", "bcc"}

// rowsToRecords converts a tabular source (first row is the header) into
// RawRecords. The first column whose header mentions "name" supplies the
// row's display name; columns matching addressKeywords supply addresses.
// When no header matches, every non-name column is scanned, as mailbox
// exports do not use predictable headers.
func rowsToRecords(rows [][]string) []models.RawRecord {
	if len(rows) == 0 {
		return nil
	}

	nameIdx := -1
	var addrIdx []int
	for i, h := range rows[0] {
		h = strings.TrimSpace(strings.ToLower(h))
		if nameIdx == -1 && strings.Contains(h, "name") {
			nameIdx = i
			continue
		}
		for _, kw := range addressKeywords {
			if strings.Contains(h, kw) {
				addrIdx = append(addrIdx, i)
				break
			}
		}
	}
	if len(addrIdx) == 0 {
		for i := range rows[0] {
			if i != nameIdx {
				addrIdx = append(addrIdx, i)
			}
		}
	}

	var recs []models.RawRecord
	for _, row := range rows[1:] {
		rowName := ""
		if nameIdx >= 0 && nameIdx < len(row) {
			rowName = strings.TrimSpace(row[nameIdx])
		}
		for _, idx := range addrIdx {
			if idx >= len(row) {
				continue
			}
			for _, rec := range splitAddressList(row[idx]) {
				if rec.Name == "" {
					rec.Name = rowName
				}
				recs = append(recs, rec)
			}
		}
	}
	return recs
}
