// Package surveylock provides a Go SDK for SurveyLock, a service that serves
// survey documents sealed with a shared symmetric passphrase so the document
// is never exposed in clear on the wire.
//
// The core of the SDK is the authenticated codec: [Seal] encrypts a plaintext
// document into an opaque envelope string, and [Open] reverses it, rejecting
// any envelope that fails integrity verification. The envelope format is
// base64(iv):base64(tag):base64(data) using AES-256-GCM under a key derived
// from the passphrase with scrypt.
//
// Basic usage:
//
//	envelope, err := surveylock.Seal(`{"id":"1","title":"Survey #1"}`, passphrase)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := surveylock.Open(envelope, passphrase)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Open failures carry a typed cause, checkable with errors.Is:
//
//	_, err := surveylock.Open(envelope, passphrase)
//	switch {
//	case errors.Is(err, surveylock.ErrInvalidFormat):
//	    // malformed envelope, reject the input
//	case errors.Is(err, surveylock.ErrAuthenticationFailed):
//	    // wrong passphrase or tampering (deliberately indistinguishable)
//	case errors.Is(err, surveylock.ErrEncryptionFailed):
//	    // crypto primitives unavailable, treat as fatal
//	}
//
// [Client] wraps the SurveyLock HTTP API for fetching and publishing sealed
// surveys:
//
//	client, err := surveylock.New(passphrase,
//	    surveylock.WithBaseURL("https://api.surveylock.io"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	survey, err := client.GetSurvey(ctx, "s-1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(survey.Title)
//
// The passphrase is read once from process configuration (see
// [PassphraseFromEnv]) and threaded explicitly into each operation; the SDK
// never stores it beyond the Client that was given it.
package surveylock
