package source

import (
	"net/mail"
	"strings"

	"contactcleaner/pkg/models"
)

// splitAddressList breaks one cell or header value into RawRecords. A
// value may carry comma-separated "Name <email>" pairs and bare
// addresses. net/mail handles the well-formed case; anything it rejects
// falls back to manual splitting so junk fragments still reach the
// Normalizer, which decides whether to drop them.
func splitAddressList(value string) []models.RawRecord {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "nan") || strings.EqualFold(value, "none") {
		return nil
	}

	if addrs, err := mail.ParseAddressList(value); err == nil {
		recs := make([]models.RawRecord, 0, len(addrs))
		for _, a := range addrs {
			recs = append(recs, models.RawRecord{Name: a.Name, Email: a.Address})
		}
		return recs
	}

	var recs []models.RawRecord
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		open := strings.Index(part, "<")
		end := strings.Index(part, ">")
		if open != -1 && end > open {
			recs = append(recs, models.RawRecord{
				Name:  strings.TrimSpace(part[:open]),
				Email: strings.TrimSpace(part[open+1 : end]),
			})
			continue
		}

		// bare token: only worth keeping if it could be an address
		if strings.Contains(part, "@") {
			recs = append(recs, models.RawRecord{Email: part})
		}
	}
	return recs
}
