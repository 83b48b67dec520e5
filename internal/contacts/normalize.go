package contacts

import (
	"regexp"
	"strings"

	"contactcleaner/pkg/models"
)

// Reason explains why a RawRecord produced no Contact.
type Reason string

const (
	ReasonMissingEmail Reason = "missing_email"
	ReasonInvalidEmail Reason = "invalid_email"
)

// local part without whitespace or '@', then a dotted domain with an
// alphabetic top-level label
var emailPattern = regexp.MustCompile(`^[^\s@]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Outcome is the result of normalizing one RawRecord: either an accepted
// Contact or a rejection reason. Rejections are expected for partial or
// malformed source data and are not errors.
type Outcome struct {
	Contact *models.Contact
	Reason  Reason
}

func (o Outcome) Accepted() bool { return o.Contact != nil }

// Normalize converts one RawRecord into zero or one Contact.
//
// The candidate email is trimmed and validated; the domain portion is
// lower-cased while local-part casing is preserved. Name fields may end
// up empty, but a Contact without a valid email is never emitted.
func Normalize(rec models.RawRecord) Outcome {
	email := strings.TrimSpace(rec.Email)
	if email == "" {
		return Outcome{Reason: ReasonMissingEmail}
	}
	if !emailPattern.MatchString(email) {
		return Outcome{Reason: ReasonInvalidEmail}
	}

	at := strings.Index(email, "@")
	domain := strings.ToLower(email[at+1:])
	email = email[:at] + "@" + domain

	full := strings.Join(strings.Fields(rec.Name), " ")
	first, last := SplitName(full)

	return Outcome{Contact: &models.Contact{
		FullName:  full,
		FirstName: first,
		LastName:  last,
		Email:     email,
		Domain:    domain,
	}}
}

// SplitName splits a display name on runs of whitespace. The first token
// is the first name; the remaining tokens are rejoined with single spaces
// as the last name. Either part may be empty.
func SplitName(full string) (first, last string) {
	fields := strings.Fields(full)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}
