package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	digitCharset = "0123456789"
	tokenCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// randomFromCharset draws n characters uniformly using crypto/rand with
// rand.Int (math/big) to avoid modulo bias.
func randomFromCharset(charset string, n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(charset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(charset[num.Int64()])
	}
	return sb.String(), nil
}

// GenerateVerificationCode returns a 6-digit numeric code, e.g. "042917".
func GenerateVerificationCode() (string, error) {
	return randomFromCharset(digitCharset, 6)
}

// GenerateResetToken returns an 8-character alphanumeric token. It is used
// verbatim as a rider's temporary password.
func GenerateResetToken() (string, error) {
	return randomFromCharset(tokenCharset, 8)
}
