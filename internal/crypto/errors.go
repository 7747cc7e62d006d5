package crypto

import "errors"

var (
	// ErrMalformedHash is returned when a stored hash cannot be decoded.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrIncompatibleVersion is returned for hashes produced by another
	// Argon2 version.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)
