package models

// RawRecord is one name/email candidate as extracted from an uploaded
// source file. Nothing is validated yet: either field may be empty or
// junk, and one spreadsheet cell can fan out into several RawRecords.
type RawRecord struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Contact is the canonical, validated output entity.
//
// Every Contact has a non-empty, syntactically valid Email. The domain
// portion of Email is lower-cased (local-part casing is preserved) and
// Domain always equals the lower-cased substring after "@".
type Contact struct {
	FullName  string `json:"full_name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Domain    string `json:"domain"`
}
