// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	signed, sessionID, err := GenerateSessionToken(24)
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	require.NotEmpty(t, sessionID)

	claims, err := ValidateSessionToken(signed)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, "heritage-storefront", claims.Issuer)
}

func TestSessionTokensAreUnique(t *testing.T) {
	SetJWTSecret("test-secret")

	_, first, err := GenerateSessionToken(24)
	require.NoError(t, err)
	_, second, err := GenerateSessionToken(24)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidateSessionTokenRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")

	_, err := ValidateSessionToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateSessionTokenRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("secret-a")
	signed, _, err := GenerateSessionToken(24)
	require.NoError(t, err)

	SetJWTSecret("secret-b")
	_, err = ValidateSessionToken(signed)
	assert.Error(t, err)
}

func TestExpiredSessionTokenRejected(t *testing.T) {
	SetJWTSecret("test-secret")

	signed, _, err := GenerateSessionToken(-1)
	require.NoError(t, err)

	_, err = ValidateSessionToken(signed)
	assert.Error(t, err)
}
