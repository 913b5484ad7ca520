package surveylock

import (
	"os"

	"github.com/joho/godotenv"
)

// PassphraseEnvVar is the environment variable holding the shared passphrase.
const PassphraseEnvVar = "SURVEYLOCK_PASSPHRASE"

// PassphraseFromEnv reads the shared passphrase from process configuration:
// a .env file in the working directory is loaded first if present (existing
// environment variables win), then PassphraseEnvVar is read. It returns
// ErrMissingPassphrase when the variable is unset or empty.
//
// This is the intended sourcing for the passphrase: set once per process at
// startup, then threaded explicitly into New or Seal/Open. It must never come
// from request input.
func PassphraseFromEnv() (string, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	passphrase := os.Getenv(PassphraseEnvVar)
	if passphrase == "" {
		return "", ErrMissingPassphrase
	}
	return passphrase, nil
}
