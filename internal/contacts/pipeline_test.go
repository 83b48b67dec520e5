package contacts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"contactcleaner/pkg/models"
)

func TestCleanRoundTrip(t *testing.T) {
	records := []models.RawRecord{
		{Name: "Jane Doe", Email: "jane@acme.com"},
		{Name: "J. Doe", Email: "JANE@ACME.COM"},
		{Name: "Bad Row", Email: "not-an-email"},
	}

	sum := Clean(records, Options{Policy: KeyFullAddress})

	require.Equal(t, 3, sum.Total)
	require.Equal(t, 2, sum.Accepted)
	require.Equal(t, 1, sum.Duplicates)
	require.Equal(t, 1, sum.Rejected[ReasonInvalidEmail])
	require.Equal(t, 1, sum.RejectedTotal())

	require.Len(t, sum.Contacts, 1)
	require.Equal(t, models.Contact{
		FullName:  "Jane Doe",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@acme.com",
		Domain:    "acme.com",
	}, sum.Contacts[0])
}

func TestCleanCountsReasons(t *testing.T) {
	records := []models.RawRecord{
		{Name: "No Email"},
		{Email: "junk"},
		{Email: "also junk"},
		{Email: "good@acme.com"},
	}

	sum := Clean(records, Options{})
	require.Equal(t, 1, sum.Rejected[ReasonMissingEmail])
	require.Equal(t, 2, sum.Rejected[ReasonInvalidEmail])
	require.Equal(t, 1, sum.Accepted)
	require.Len(t, sum.Contacts, 1)
}

func TestCleanProgressCallback(t *testing.T) {
	records := []models.RawRecord{
		{Email: "a@x.com"},
		{Email: "b@y.com"},
		{Email: "junk"},
	}

	var calls []int
	Clean(records, Options{OnProgress: func(done, total int) {
		require.Equal(t, 3, total)
		calls = append(calls, done)
	}})

	require.Equal(t, []int{1, 2, 3}, calls)
}

func TestCleanEmptyBatch(t *testing.T) {
	sum := Clean(nil, Options{})
	require.Zero(t, sum.Total)
	require.Empty(t, sum.Contacts)
	require.Zero(t, sum.Duplicates)
}
