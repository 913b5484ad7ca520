package sealbox

const (
	// KeySize is the size of the derived AES-256 key in bytes.
	KeySize = 32
	// NonceSize is the size of the GCM nonce in bytes. The wire format uses
	// a 16-byte IV rather than the 12-byte GCM default.
	NonceSize = 16
	// TagSize is the size of the GCM authentication tag in bytes.
	TagSize = 16

	// scrypt cost parameters. N=32768 with r=8 needs 32 MiB per derivation,
	// which keeps brute-force guessing expensive while staying well under
	// typical per-request budgets.
	scryptN = 32768
	scryptR = 8
	scryptP = 1
)

// KDFSalt is the module-wide scrypt salt. It is deliberately constant so the
// derived key depends on the passphrase alone and both ends of the transport
// derive the same key with no salt exchange. Known weakness: identical
// passphrases always derive identical keys across deployments. Changing this
// value breaks compatibility with every previously sealed envelope.
const KDFSalt = "surveylock.kdf.v1"

// Delimiter separates the three envelope fields.
const Delimiter = ":"
