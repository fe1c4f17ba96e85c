package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken()
	require.NoError(t, err)
	assert.Len(t, token, 64, "hex of 32 bytes = 64 chars")

	hexRegex := regexp.MustCompile(`^[0-9a-f]{64}$`)
	assert.True(t, hexRegex.MatchString(token), "token should be hex string")

	other, err := GenerateToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestHashToken(t *testing.T) {
	h := HashToken("abc")
	assert.Len(t, h, 64)
	assert.Equal(t, h, HashToken("abc"))
	assert.NotEqual(t, h, HashToken("abd"))
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", h)
}

func TestRefreshToken_IsExpired(t *testing.T) {
	now := time.Now()

	r := &RefreshToken{ExpiresAt: now.Add(-time.Hour)}
	assert.True(t, r.IsExpired())

	r2 := &RefreshToken{ExpiresAt: now.Add(time.Hour)}
	assert.False(t, r2.IsExpired())
}

func TestRefreshToken_IsValid(t *testing.T) {
	now := time.Now()

	// 有效
	r := &RefreshToken{Revoked: false, ExpiresAt: now.Add(time.Hour)}
	assert.True(t, r.IsValid())

	// 无效：已吊销
	r2 := &RefreshToken{Revoked: true, ExpiresAt: now.Add(time.Hour)}
	assert.False(t, r2.IsValid())

	// 无效：已过期
	r3 := &RefreshToken{Revoked: false, ExpiresAt: now.Add(-time.Hour)}
	assert.False(t, r3.IsValid())
}
