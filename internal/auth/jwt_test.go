package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenSignParseRoundTrip(t *testing.T) {
	ts := TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "contactcleaner-test",
		Duration: time.Hour,
	}

	u := &User{ID: "u1", Username: "jane", Email: "jane@acme.com", TokenVersion: 3}

	token, exp, err := ts.Sign(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := ts.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.Equal(t, "jane", claims.Username)
	require.Equal(t, "jane@acme.com", claims.Email)
	require.Equal(t, 3, claims.TokenVersion)
	require.Equal(t, "contactcleaner-test", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	ts := TokenService{Secret: []byte("secret-a"), Issuer: "x", Duration: time.Hour}
	token, _, err := ts.Sign(&User{ID: "u1"})
	require.NoError(t, err)

	other := TokenService{Secret: []byte("secret-b"), Issuer: "x", Duration: time.Hour}
	_, err = other.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	ts := TokenService{Secret: []byte("secret"), Issuer: "x", Duration: -time.Minute}
	token, _, err := ts.Sign(&User{ID: "u1"})
	require.NoError(t, err)

	_, err = ts.Parse(token)
	require.Error(t, err)
}
