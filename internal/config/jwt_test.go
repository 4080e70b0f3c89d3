package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer() *TokenIssuer {
	return NewTokenIssuer(&Config{
		AccessTokenSecret:  "access-secret",
		RefreshTokenSecret: "refresh-secret",
		AccessTokenTTL:     15 * time.Minute,
		RefreshTokenTTL:    7 * 24 * time.Hour,
	})
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := testIssuer()

	for _, kind := range []TokenKind{AccessToken, RefreshToken} {
		token, err := issuer.GenerateToken("admin-1", kind)
		require.NoError(t, err)

		claims, err := issuer.ValidateToken(token, kind)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", claims.AdminID)
		assert.NotEmpty(t, claims.ID)
	}
}

func TestTokenIssuer_KindsDoNotCrossValidate(t *testing.T) {
	issuer := testIssuer()

	access, err := issuer.GenerateToken("admin-1", AccessToken)
	require.NoError(t, err)

	_, err = issuer.ValidateToken(access, RefreshToken)
	assert.Error(t, err)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := testIssuer()
	issued := time.Now().Add(-time.Hour)
	issuer.now = func() time.Time { return issued }

	token, err := issuer.GenerateToken("admin-1", AccessToken)
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.ValidateToken(token, AccessToken)
	assert.Error(t, err)
}

func TestTokenIssuer_Rotates(t *testing.T) {
	issuer := testIssuer()

	first, err := issuer.GenerateToken("admin-1", RefreshToken)
	require.NoError(t, err)
	second, err := issuer.GenerateToken("admin-1", RefreshToken)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenIssuer_Garbage(t *testing.T) {
	_, err := testIssuer().ValidateToken("not-a-token", AccessToken)
	assert.Error(t, err)

	_, err = testIssuer().GenerateToken("admin-1", TokenKind("session"))
	assert.ErrorIs(t, err, ErrUnknownTokenKind)
}
