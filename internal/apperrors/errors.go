package apperrors

import "errors"

var (
	// auth errors
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")

	// token errors
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	// shortener errors
	ErrInvalidURL   = errors.New("invalid url")
	ErrLinkNotFound = errors.New("link not found")

	// ErrCounterTaken means two concurrent encodes computed the same counter
	// and the unique constraint rejected the second insert. Callers retry.
	ErrCounterTaken = errors.New("counter already taken")
)
