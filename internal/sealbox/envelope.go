package sealbox

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Envelope holds the decoded components of a sealed payload.
type Envelope struct {
	Nonce      []byte
	Tag        []byte
	Ciphertext []byte
}

// Encode renders the envelope in the wire format
// base64(nonce):base64(tag):base64(ciphertext), using standard base64.
func (e *Envelope) Encode() string {
	return strings.Join([]string{
		base64.StdEncoding.EncodeToString(e.Nonce),
		base64.StdEncoding.EncodeToString(e.Tag),
		base64.StdEncoding.EncodeToString(e.Ciphertext),
	}, Delimiter)
}

// ParseEnvelope parses and validates the wire format. It fails with
// ErrInvalidFormat before any cryptographic work when the structure is wrong:
// not exactly three colon-delimited fields, a field that is not valid
// standard base64, or a nonce/tag that does not decode to 16 bytes.
func ParseEnvelope(s string) (*Envelope, error) {
	parts := strings.Split(s, Delimiter)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: got %d fields", ErrInvalidFormat, len(parts))
	}

	nonce, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: decode iv: %v", ErrInvalidFormat, err)
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: iv is %d bytes, want %d", ErrInvalidFormat, len(nonce), NonceSize)
	}

	tag, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: decode tag: %v", ErrInvalidFormat, err)
	}
	if len(tag) != TagSize {
		return nil, fmt.Errorf("%w: tag is %d bytes, want %d", ErrInvalidFormat, len(tag), TagSize)
	}

	// The ciphertext field may be empty: sealing the empty string produces
	// an empty third field.
	ciphertext, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: decode data: %v", ErrInvalidFormat, err)
	}

	return &Envelope{Nonce: nonce, Tag: tag, Ciphertext: ciphertext}, nil
}
