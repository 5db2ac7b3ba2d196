package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authutil "beatbazaar/authentication/util"
)

var testUser = authutil.TokenUser{Name: "ava", UserID: "1", Role: "admin"}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := CreateAccessToken(testUser, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseAccessToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, testUser, claims.TokenUser)
}

func TestAccessTokenClaimsCarryOnlyIdentity(t *testing.T) {
	token, err := CreateAccessToken(testUser, "secret", time.Hour)
	require.NoError(t, err)

	// Decode without verification just to inspect the payload keys.
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	require.NoError(t, err)
	payload := parsed.Claims.(jwt.MapClaims)
	assert.ElementsMatch(t, []string{"name", "userId", "role", "exp", "iat"}, keys(payload))
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	token, err := CreateAccessToken(testUser, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseAccessToken(token, "some-other-secret")
	assert.Error(t, err)
}

func TestParseAccessTokenReportsExpiry(t *testing.T) {
	token, err := CreateAccessToken(testUser, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(token, "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func keys(m jwt.MapClaims) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
