package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestJWTer(ttl time.Duration) *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "bookstore-test", TTL: ttl}
}

func TestIssueAndParse(t *testing.T) {
	j := newTestJWTer(7 * 24 * time.Hour)

	token, err := j.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UID)
}

func TestParseExpired(t *testing.T) {
	j := newTestJWTer(-time.Hour)

	token, err := j.Issue("user-123")
	require.NoError(t, err)

	_, err = j.Parse(token)
	require.Error(t, err)
}

func TestParseWrongSecret(t *testing.T) {
	j := newTestJWTer(time.Hour)
	token, err := j.Issue("user-123")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("another-secret"), Issuer: "bookstore-test", TTL: time.Hour}
	_, err = other.Parse(token)
	require.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	j := newTestJWTer(time.Hour)
	_, err := j.Parse("not.a.token")
	require.Error(t, err)
}
