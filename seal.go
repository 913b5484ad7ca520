package surveylock

import "github.com/surveylock/client-go/internal/sealbox"

// Seal encrypts a plaintext document under the passphrase and returns the
// opaque envelope string base64(iv):base64(tag):base64(data). Sealing is
// non-deterministic: two calls with identical inputs produce different
// envelopes that both open to the same plaintext.
//
// The plaintext may be empty. The codec does not enforce a non-empty
// passphrase, though callers should require one.
func Seal(plaintext, passphrase string) (string, error) {
	envelope, err := sealbox.Seal([]byte(plaintext), passphrase)
	if err != nil {
		return "", wrapCodecError(err)
	}
	return envelope, nil
}

// Open verifies and decrypts an envelope previously produced by Seal with the
// same passphrase, returning the exact original plaintext. It fails with
// ErrInvalidFormat for a malformed envelope, ErrAuthenticationFailed when tag
// verification fails (wrong passphrase or tampering), and ErrEncryptionFailed
// when the crypto primitives are unavailable. No plaintext is ever returned
// on failure.
func Open(envelope, passphrase string) (string, error) {
	plaintext, err := sealbox.Open(envelope, passphrase)
	if err != nil {
		return "", wrapCodecError(err)
	}
	return string(plaintext), nil
}
