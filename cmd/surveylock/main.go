// Command surveylock seals and opens survey documents on the command line.
//
// It reads the document (or envelope) from stdin and writes the result to
// stdout, so it composes with the usual shell plumbing:
//
//	surveylock seal < survey.json > survey.sealed
//	surveylock open < survey.sealed > survey.json
//
// The passphrase comes from the SURVEYLOCK_PASSPHRASE environment variable
// (a .env file in the working directory is honored), or interactively when
// the variable is unset.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "surveylock: %v\n", err)
		os.Exit(1)
	}
}
