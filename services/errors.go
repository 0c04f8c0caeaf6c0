package services

import "errors"

// Failure taxonomy surfaced to the HTTP layer. Controllers map these to
// status codes; nothing here is retried.
var (
	// ErrInvalidCredentials covers unknown email and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateEmail means the email exists in some account table,
	// not necessarily the one being registered into.
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrForbiddenRole rejects self-registration of privileged roles.
	ErrForbiddenRole = errors.New("role cannot self-register")

	// ErrInvalidSession covers malformed, tampered, and unknown-role
	// session values.
	ErrInvalidSession = errors.New("invalid session")

	// ErrInvalidOrExpired is deliberately uniform across wrong code,
	// wrong purpose, and expiry so callers cannot probe which was wrong.
	ErrInvalidOrExpired = errors.New("code invalid or expired")

	// ErrNotification reports a delivery failure. Stored token state is
	// left intact; the caller decides whether to reissue.
	ErrNotification = errors.New("notification delivery failed")
)
