// Package sealbox implements the authenticated encryption scheme used to
// protect survey documents in transit.
//
// # Scheme
//
//   - scrypt (N=32768, r=8, p=1): memory-hard key derivation mapping the
//     shared passphrase to a 256-bit AES key. The salt is a module-wide
//     constant so that both sides derive the same key from the passphrase
//     alone; see the note on [KDFSalt].
//
//   - AES-256-GCM with a 16-byte nonce: authenticated encryption providing
//     confidentiality and tamper-evidence via a 16-byte authentication tag.
//     A fresh random nonce is generated for every Seal call, so sealing the
//     same plaintext twice yields different envelopes.
//
// # Envelope Format
//
// The only externally visible artifact is the envelope string:
//
//	base64(nonce):base64(tag):base64(ciphertext)
//
// Exactly two colons, exactly three fields, standard (not URL-safe) base64.
// The nonce and tag fields decode to exactly 16 bytes each; the ciphertext
// field decodes to the same byte length as the original plaintext (counter
// mode, no padding). Callers must treat the envelope as an opaque string.
//
// # Failure Modes
//
// Open distinguishes three failure kinds, checkable with errors.Is:
//
//   - [ErrInvalidFormat]: the envelope does not have three colon-delimited
//     base64 fields with correctly sized nonce and tag. Detected before any
//     cryptographic work.
//   - [ErrAuthenticationFailed]: tag verification failed. A wrong passphrase
//     and a tampered envelope are deliberately indistinguishable, and no
//     plaintext is ever released when verification fails.
//   - [ErrEncryptionFailed]: the cipher, KDF, or system random source is
//     unavailable. Callers should treat this as fatal.
//
// Both Seal and Open are stateless single-shot transforms. They hold no
// resources across calls and are safe for concurrent use.
package sealbox
