package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/evcharge-admin-api/pkg/jwt"
)

const (
	testSecret  = "test-secret-key-for-unit-tests"
	testAdminID = "42"
	testIssuer  = "evcharge-admin-test"
)

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testAdminID, "ADMIN_NOC", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	adminID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testAdminID, adminID)
	assert.Equal(t, "ADMIN_NOC", role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testAdminID, "ADMIN", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testAdminID, "ADMIN", testIssuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testAdminID, "ADMIN", testIssuer, 60)
	assert.Error(t, err)
}
