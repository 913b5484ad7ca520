package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	surveylock "github.com/surveylock/client-go"
)

const version = "1.0.0"

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) < 1 {
		printUsage()
		return fmt.Errorf("no command specified")
	}

	switch args[0] {
	case "seal":
		return seal(stdin, stdout)
	case "open":
		return open(stdin, stdout)
	case "--help", "-h", "help":
		printUsage()
		return nil
	case "--version", "-v":
		fmt.Fprintf(stdout, "surveylock version %s\n", version)
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func seal(stdin io.Reader, stdout io.Writer) error {
	passphrase, err := getPassphrase("Enter passphrase: ")
	if err != nil {
		return err
	}

	plaintext, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	envelope, err := surveylock.Seal(string(plaintext), passphrase)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, envelope)
	return err
}

func open(stdin io.Reader, stdout io.Writer) error {
	passphrase, err := getPassphrase("Enter passphrase: ")
	if err != nil {
		return err
	}

	input, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	// Tolerate the trailing newline seal writes.
	envelope := strings.TrimRight(string(input), "\r\n")

	plaintext, err := surveylock.Open(envelope, passphrase)
	if err != nil {
		return err
	}

	_, err = io.WriteString(stdout, plaintext)
	return err
}

func printUsage() {
	usage := `surveylock - seal and open survey documents

USAGE:
    surveylock <command>

COMMANDS:
    seal        Seal a document from STDIN, write the envelope to STDOUT
    open        Open an envelope from STDIN, write the document to STDOUT
    help        Show this help message
    --version   Show version information

PASSPHRASE:
    Set SURVEYLOCK_PASSPHRASE (directly or via a .env file in the working
    directory), or enter it interactively.

EXAMPLES:
    surveylock seal < survey.json > survey.sealed
    surveylock open < survey.sealed > survey.json
`
	fmt.Fprint(os.Stderr, usage)
}
