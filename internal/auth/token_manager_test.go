package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Generate("user-42", false)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.False(t, claims.Admin)
}

func TestAdminClaim(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Generate("root", true)
	assert.NoError(t, err)

	claims, err := m.Verify(token)
	assert.NoError(t, err)
	assert.True(t, claims.Admin)
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Generate("user-42", false)
	assert.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Generate("user-42", false)
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	_, err := m.Verify("not.a.token")
	assert.Error(t, err)
}
