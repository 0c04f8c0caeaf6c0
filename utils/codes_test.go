package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerificationCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateVerificationCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, ch := range code {
			assert.True(t, ch >= '0' && ch <= '9', "non-digit in %q", code)
		}
	}
}

func TestGenerateResetToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		token, err := GenerateResetToken()
		require.NoError(t, err)
		require.Len(t, token, 8)
		for _, ch := range token {
			ok := (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9')
			assert.True(t, ok, "invalid char in %q", token)
		}
		seen[token] = true
	}
	// 50 draws from a 62^8 space colliding would mean a broken generator.
	assert.Greater(t, len(seen), 45)
}
