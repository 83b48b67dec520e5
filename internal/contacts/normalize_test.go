package contacts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"contactcleaner/pkg/models"
)

func TestNormalizeRejects(t *testing.T) {
	tests := []struct {
		name string
		rec  models.RawRecord
		want Reason
	}{
		{name: "empty record", rec: models.RawRecord{}, want: ReasonMissingEmail},
		{name: "name only", rec: models.RawRecord{Name: "Jane Doe"}, want: ReasonMissingEmail},
		{name: "whitespace email", rec: models.RawRecord{Email: "   "}, want: ReasonMissingEmail},
		{name: "no at sign", rec: models.RawRecord{Email: "not-an-email"}, want: ReasonInvalidEmail},
		{name: "no domain dot", rec: models.RawRecord{Email: "jane@localhost"}, want: ReasonInvalidEmail},
		{name: "exchange dn", rec: models.RawRecord{Email: "/O=ORG/OU=FIRST ADMIN"}, want: ReasonInvalidEmail},
		{name: "spaces inside", rec: models.RawRecord{Email: "jane doe@acme.com"}, want: ReasonInvalidEmail},
		{name: "double at", rec: models.RawRecord{Email: "jane@@acme.com"}, want: ReasonInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Normalize(tt.rec)
			require.False(t, out.Accepted())
			require.Nil(t, out.Contact)
			require.Equal(t, tt.want, out.Reason)
		})
	}
}

func TestNormalizeAccepts(t *testing.T) {
	tests := []struct {
		name string
		rec  models.RawRecord
		want models.Contact
	}{
		{
			name: "name and email",
			rec:  models.RawRecord{Name: "Jane Q Public", Email: "jane@acme.com"},
			want: models.Contact{FullName: "Jane Q Public", FirstName: "Jane", LastName: "Q Public", Email: "jane@acme.com", Domain: "acme.com"},
		},
		{
			name: "single token name",
			rec:  models.RawRecord{Name: "Madonna", Email: "m@label.example.org"},
			want: models.Contact{FullName: "Madonna", FirstName: "Madonna", LastName: "", Email: "m@label.example.org", Domain: "label.example.org"},
		},
		{
			name: "email only",
			rec:  models.RawRecord{Email: "ops@acme.com"},
			want: models.Contact{Email: "ops@acme.com", Domain: "acme.com"},
		},
		{
			name: "domain lowered, local case preserved",
			rec:  models.RawRecord{Email: "  Jane.Doe@ACME.COM  "},
			want: models.Contact{Email: "Jane.Doe@acme.com", Domain: "acme.com"},
		},
		{
			name: "whitespace runs in name collapse",
			rec:  models.RawRecord{Name: "  Jane \t  van  Dyke ", Email: "jv@acme.com"},
			want: models.Contact{FullName: "Jane van Dyke", FirstName: "Jane", LastName: "van Dyke", Email: "jv@acme.com", Domain: "acme.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Normalize(tt.rec)
			require.True(t, out.Accepted())
			require.Equal(t, tt.want, *out.Contact)
			require.NotEmpty(t, out.Contact.Domain)
		})
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in    string
		first string
		last  string
	}{
		{in: "", first: "", last: ""},
		{in: "Madonna", first: "Madonna", last: ""},
		{in: "Jane Q Public", first: "Jane", last: "Q Public"},
		{in: "Jane  Q   Public", first: "Jane", last: "Q Public"},
	}

	for _, tt := range tests {
		first, last := SplitName(tt.in)
		if first != tt.first || last != tt.last {
			t.Fatalf("SplitName(%q) = (%q, %q), want (%q, %q)", tt.in, first, last, tt.first, tt.last)
		}
	}
}
