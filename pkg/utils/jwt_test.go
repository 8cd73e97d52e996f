package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	id := uuid.New()

	token, err := issuer.CreateToken(id, "user")
	require.NoError(t, err)

	claims, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestTokenIssuer_RejectsOtherKeyAndExpired(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Minute)
	token, err := issuer.CreateToken(uuid.New(), "user")
	require.NoError(t, err)

	_, err = NewTokenIssuer("other", time.Minute).ValidateToken(token)
	assert.Error(t, err)

	late := NewTokenIssuer("secret", time.Minute)
	late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = late.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenIssuer_NoSecret(t *testing.T) {
	_, err := NewTokenIssuer("", time.Minute).CreateToken(uuid.New(), "user")
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.NoError(t, ComparePasswords(hash, "hunter22"))
	assert.Error(t, ComparePasswords(hash, "hunter23"))
}
