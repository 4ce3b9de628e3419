package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=32768,t=1,p=4$"))
	assert.Len(t, strings.Split(hash, "$"), 6)

	other, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "salts must differ")
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	tests := []struct {
		name      string
		password  string
		hash      string
		expected  bool
		expectErr bool
	}{
		{name: "Correct password", password: "password123", hash: hash, expected: true},
		{name: "Wrong password", password: "password124", hash: hash, expected: false},
		{name: "Empty password", password: "", hash: hash, expected: false},
		{name: "Not an argon2 hash", password: "password123", hash: "$2a$10$abcdefghijklmnopqrstuv", expectErr: true},
		{name: "Bad parameters", password: "password123", hash: "$argon2id$v=19$m=x,t=1,p=4$c2FsdA$aGFzaA", expectErr: true},
		{name: "Bad salt encoding", password: "password123", hash: "$argon2id$v=19$m=1024,t=1,p=1$!!!$aGFzaA", expectErr: true},
		{name: "Wrong version", password: "password123", hash: "$argon2id$v=16$m=1024,t=1,p=1$c2FsdA$aGFzaA", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := VerifyPassword(tt.password, tt.hash)
			if tt.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errInvalidHash)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}
