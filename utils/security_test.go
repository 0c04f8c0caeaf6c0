package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, IsBcryptHash(hash))
	assert.True(t, CheckPassword(hash, "secret1"))
	assert.False(t, CheckPassword(hash, "secret2"))
	assert.False(t, IsBcryptHash("secret1"))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***e@x.com", MaskEmail("apple@x.com"))
	assert.Equal(t, "a*@x.com", MaskEmail("ab@x.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}
