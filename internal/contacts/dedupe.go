package contacts

import (
	"strings"

	"contactcleaner/pkg/models"
)

// KeyPolicy selects how two email addresses count as the same contact.
type KeyPolicy string

const (
	// KeyFullAddress compares the whole address case-insensitively.
	KeyFullAddress KeyPolicy = "full-address"
	// KeyExactLocal keeps the local part case-sensitive; the domain
	// portion is already lower-cased by normalization.
	KeyExactLocal KeyPolicy = "exact-local"
)

// ParsePolicy maps a config string to a KeyPolicy, defaulting to
// KeyFullAddress for anything unrecognized.
func ParsePolicy(s string) KeyPolicy {
	if KeyPolicy(strings.TrimSpace(strings.ToLower(s))) == KeyExactLocal {
		return KeyExactLocal
	}
	return KeyFullAddress
}

// Deduplicate keeps the first-seen Contact per identity key. Later
// duplicates are discarded without merging fields, so output order is the
// first-occurrence order of the surviving contacts and the operation is
// idempotent.
func Deduplicate(in []models.Contact, policy KeyPolicy) []models.Contact {
	seen := make(map[string]struct{}, len(in))
	out := make([]models.Contact, 0, len(in))
	for _, c := range in {
		key := c.Email
		if policy != KeyExactLocal {
			key = strings.ToLower(key)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}
