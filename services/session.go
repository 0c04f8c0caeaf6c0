package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"dropu-backend/models"
	"dropu-backend/utils"
)

// SessionCookieName is the cookie carrying the encoded identity.
const SessionCookieName = "session"

// Session value format: "<id>|<role>|<hexsig>" where the signature is
// HMAC-SHA256 over "<id>|<role>". The id and role segments therefore must
// never contain a pipe; the role enum guarantees that.
func sessionKey() []byte {
	return []byte(utils.EnvOrDefault("SESSION_SECRET", "dropu-dev-session-secret"))
}

func signSession(payload string) string {
	mac := hmac.New(sha256.New, sessionKey())
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// EncodeSession produces the signed cookie value for an authenticated
// identity.
func EncodeSession(accountID uint, role models.Role) string {
	payload := fmt.Sprintf("%d|%s", accountID, role)
	return payload + "|" + signSession(payload)
}

// DecodeSession validates and unpacks a session value. It fails with
// ErrInvalidSession when the delimiter count is wrong, the signature does
// not verify, the id segment is non-numeric, or the role is outside the
// closed set.
func DecodeSession(value string) (uint, models.Role, error) {
	parts := strings.Split(value, "|")
	if len(parts) != 3 {
		return 0, "", ErrInvalidSession
	}

	payload := parts[0] + "|" + parts[1]
	if !hmac.Equal([]byte(signSession(payload)), []byte(parts[2])) {
		return 0, "", ErrInvalidSession
	}

	id, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, "", ErrInvalidSession
	}

	role, ok := models.ParseRole(parts[1])
	if !ok {
		return 0, "", ErrInvalidSession
	}

	return uint(id), role, nil
}
