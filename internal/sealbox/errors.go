package sealbox

import "errors"

var (
	// ErrInvalidFormat is returned when an envelope does not split into
	// exactly three base64 fields with a 16-byte nonce and tag.
	ErrInvalidFormat = errors.New("invalid encrypted format: expected iv:tag:data")

	// ErrAuthenticationFailed is returned when tag verification fails.
	// A wrong passphrase and a tampered envelope produce the same error.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrEncryptionFailed is returned when the cipher, the key derivation
	// function, or the system random source is unavailable.
	ErrEncryptionFailed = errors.New("encryption unavailable")
)
