package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropu-backend/models"
)

func TestSessionRoundTrip(t *testing.T) {
	for _, role := range models.AllRoles {
		value := EncodeSession(42, role)

		id, decoded, err := DecodeSession(value)
		require.NoError(t, err, "role %s", role)
		assert.Equal(t, uint(42), id)
		assert.Equal(t, role, decoded)
	}
}

func TestDecodeSessionRejectsMalformedValues(t *testing.T) {
	// Correctly signed payloads so the id and role checks are what fails.
	signed := func(payload string) string { return payload + "|" + signSession(payload) }

	cases := map[string]string{
		"empty":          "",
		"no delimiter":   "42customer",
		"too few parts":  "42|customer",
		"non-numeric id": signed("abc|customer"),
		"unknown role":   signed("42|wizard"),
		"too many parts": EncodeSession(42, models.RoleCustomer) + "|extra",
	}

	for name, value := range cases {
		_, _, err := DecodeSession(value)
		assert.ErrorIs(t, err, ErrInvalidSession, name)
	}
}

func TestDecodeSessionRejectsTampering(t *testing.T) {
	// Swapping the id while keeping the old signature must fail.
	value := EncodeSession(42, models.RoleCustomer)
	forged := strings.Replace(value, "42|", "1|", 1)

	_, _, err := DecodeSession(forged)
	assert.ErrorIs(t, err, ErrInvalidSession)

	// A well-formed but unsigned value must fail too.
	_, _, err = DecodeSession("1|admin|deadbeef")
	assert.ErrorIs(t, err, ErrInvalidSession)
}
