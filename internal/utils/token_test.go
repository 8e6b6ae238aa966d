package utils

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s, err := NewSession()
	require.NoError(t, err)
	// 32 bytes -> 43 base64url chars without padding
	assert.Len(t, s.Token, 43)
	assert.WithinDuration(t, time.Now().UTC().Add(SessionTTL), s.Exp, 5*time.Second)

	s2, err := NewSession()
	require.NoError(t, err)
	assert.NotEqual(t, s.Token, s2.Token)
}

func TestNewVerificationCode(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := NewVerificationCode()
		require.NoError(t, err)
		require.Len(t, code, 5)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 10000)
		assert.LessOrEqual(t, n, 99999)
	}
}

func TestNewAffiliateCode(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := NewAffiliateCode()
		require.NoError(t, err)
		require.Len(t, code, 7)
		require.Equal(t, "LUX", code[:3])
		n, err := strconv.Atoi(code[3:])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}

func TestMaskCardNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4111111111111111", "****-****-****-1111"},
		{"4111 1111 1111 2222", "****-****-****-2222"},
		{"4111-1111-1111-3333", "****-****-****-3333"},
		{"12", "****-****-****-****"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskCardNumber(tt.in))
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "wrong"))

	// Two hashes of the same password differ because of the salt.
	hash2, err := HashPassword("s3cret", 4)
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}
