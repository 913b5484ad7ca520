package sealbox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
)

// Seal encrypts plaintext under a key derived from the passphrase and returns
// the envelope string. Each call generates a fresh random nonce, so sealing
// identical inputs twice yields two different envelopes that both open to the
// same plaintext.
func Seal(plaintext []byte, passphrase string) (string, error) {
	key, err := DeriveKey(passphrase)
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("%w: generate nonce: %v", ErrEncryptionFailed, err)
	}

	// Seal appends the 16-byte tag to the ciphertext; the wire format
	// carries them as separate fields.
	sealed := gcm.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - TagSize

	env := &Envelope{
		Nonce:      nonce,
		Tag:        sealed[split:],
		Ciphertext: sealed[:split],
	}
	return env.Encode(), nil
}

// Open parses an envelope, re-derives the key from the passphrase, and
// returns the verified plaintext. Tag verification happens atomically with
// decryption: if it fails, for any reason, no plaintext is returned and the
// error is ErrAuthenticationFailed with no further detail.
func Open(envelope string, passphrase string) ([]byte, error) {
	env, err := ParseEnvelope(envelope)
	if err != nil {
		return nil, err
	}

	key, err := DeriveKey(passphrase)
	if err != nil {
		return nil, err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(env.Ciphertext)+TagSize)
	sealed = append(sealed, env.Ciphertext...)
	sealed = append(sealed, env.Tag...)

	plaintext, err := gcm.Open(nil, env.Nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

// newGCM builds the AES-256-GCM primitive with the 16-byte nonce size the
// wire format requires.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %v", ErrEncryptionFailed, err)
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("%w: create GCM: %v", ErrEncryptionFailed, err)
	}
	return gcm, nil
}
