package contacts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"contactcleaner/pkg/models"
)

func contact(email string) models.Contact {
	out := Normalize(models.RawRecord{Email: email})
	if !out.Accepted() {
		panic("test contact must be valid: " + email)
	}
	return *out.Contact
}

func emails(cs []models.Contact) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Email)
	}
	return out
}

func TestDeduplicateFirstSeenOrder(t *testing.T) {
	in := []models.Contact{
		contact("A@x.com"),
		contact("B@y.com"),
		contact("A@X.COM"), // differs only in case after domain lowering
	}

	got := Deduplicate(in, KeyFullAddress)
	require.Equal(t, []string{"A@x.com", "B@y.com"}, emails(got))
}

func TestDeduplicateIdempotent(t *testing.T) {
	in := []models.Contact{
		contact("a@x.com"),
		contact("b@y.com"),
		contact("a@x.com"),
		contact("c@z.com"),
		contact("B@y.com"),
	}

	once := Deduplicate(in, KeyFullAddress)
	twice := Deduplicate(once, KeyFullAddress)
	require.Equal(t, once, twice)
}

func TestDeduplicateExactLocalPolicy(t *testing.T) {
	in := []models.Contact{
		contact("Jane@x.com"),
		contact("jane@x.com"),
	}

	require.Len(t, Deduplicate(in, KeyFullAddress), 1)
	require.Len(t, Deduplicate(in, KeyExactLocal), 2)
}

func TestDeduplicateEmpty(t *testing.T) {
	require.Empty(t, Deduplicate(nil, KeyFullAddress))
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want KeyPolicy
	}{
		{in: "exact-local", want: KeyExactLocal},
		{in: " Exact-Local ", want: KeyExactLocal},
		{in: "full-address", want: KeyFullAddress},
		{in: "", want: KeyFullAddress},
		{in: "bogus", want: KeyFullAddress},
	}

	for _, tt := range tests {
		if got := ParsePolicy(tt.in); got != tt.want {
			t.Fatalf("ParsePolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
