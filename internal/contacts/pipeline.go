package contacts

import "contactcleaner/pkg/models"

// Options configure one cleaning run.
type Options struct {
	Policy KeyPolicy
	// OnProgress, when set, is called after each record with the number
	// of records processed so far and the batch total.
	OnProgress func(done, total int)
}

// Summary is the outcome of cleaning one batch of raw records.
type Summary struct {
	Contacts   []models.Contact
	Total      int
	Accepted   int
	Duplicates int
	Rejected   map[Reason]int
}

func (s Summary) RejectedTotal() int {
	n := 0
	for _, v := range s.Rejected {
		n += v
	}
	return n
}

// Clean runs the Normalizer over every record in input order, then
// deduplicates the accepted contacts. Pure batch transformation: no I/O,
// no retained state.
func Clean(records []models.RawRecord, opts Options) Summary {
	sum := Summary{Total: len(records), Rejected: make(map[Reason]int)}

	accepted := make([]models.Contact, 0, len(records))
	for i, rec := range records {
		out := Normalize(rec)
		if out.Accepted() {
			accepted = append(accepted, *out.Contact)
		} else {
			sum.Rejected[out.Reason]++
		}
		if opts.OnProgress != nil {
			opts.OnProgress(i+1, sum.Total)
		}
	}

	sum.Accepted = len(accepted)
	sum.Contacts = Deduplicate(accepted, opts.Policy)
	sum.Duplicates = sum.Accepted - len(sum.Contacts)
	return sum
}
