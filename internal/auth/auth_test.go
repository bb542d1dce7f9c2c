package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT("ops@homeinsight", "test-secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "ops@homeinsight", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("ops@homeinsight", "test-secret")
	require.NoError(t, err)

	_, err = ValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestGenerateJWTRequiresInputs(t *testing.T) {
	_, err := GenerateJWT("", "secret")
	assert.Error(t, err)

	_, err = GenerateJWT("subject", "")
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", "secret")
	assert.Error(t, err)
}
