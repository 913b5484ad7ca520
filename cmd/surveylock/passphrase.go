package main

import (
	"fmt"
	"os"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"
	surveylock "github.com/surveylock/client-go"
	"golang.org/x/term"
)

// getPassphrase resolves the passphrase: SURVEYLOCK_PASSPHRASE first (after
// loading a .env file if one exists), then an interactive prompt.
func getPassphrase(prompt string) (string, error) {
	_ = godotenv.Load()

	if envPass := os.Getenv(surveylock.PassphraseEnvVar); envPass != "" {
		return envPass, nil
	}

	return readPassword(prompt)
}

func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	var passphrase []byte
	var err error

	if term.IsTerminal(int(syscall.Stdin)) {
		passphrase, err = term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
	} else {
		// Stdin carries the document, so prompt on the controlling
		// terminal instead.
		tty, ttyErr := os.Open("/dev/tty")
		if ttyErr != nil {
			if runtime.GOOS == "windows" {
				return "", fmt.Errorf("passphrase must be set via %s when STDIN is piped", surveylock.PassphraseEnvVar)
			}
			return "", fmt.Errorf("cannot read passphrase: STDIN is piped and /dev/tty is not available; set %s", surveylock.PassphraseEnvVar)
		}
		defer tty.Close()

		passphrase, err = term.ReadPassword(int(tty.Fd()))
		fmt.Fprintln(os.Stderr)
	}

	if err != nil {
		return "", err
	}
	return string(passphrase), nil
}
