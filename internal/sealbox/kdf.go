package sealbox

import (
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// DeriveKey derives the 256-bit AES key from a passphrase using scrypt with
// the module-constant salt. The derivation is deterministic: the same
// passphrase always yields the same key. The key is recomputed on every
// Seal/Open call rather than cached; the scrypt cost is accepted per call to
// keep the codec stateless.
func DeriveKey(passphrase string) ([]byte, error) {
	key, err := scrypt.Key([]byte(passphrase), []byte(KDFSalt), scryptN, scryptR, scryptP, KeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: derive key: %v", ErrEncryptionFailed, err)
	}
	return key, nil
}
