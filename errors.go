package surveylock

import (
	"errors"
	"fmt"

	"github.com/surveylock/client-go/internal/api"
	"github.com/surveylock/client-go/internal/sealbox"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingPassphrase is returned when no passphrase is provided to New.
	ErrMissingPassphrase = errors.New("passphrase is required")

	// ErrInvalidFormat is returned when an envelope is not three
	// colon-delimited base64 fields with a 16-byte IV and tag.
	ErrInvalidFormat = errors.New("invalid encrypted format: expected iv:tag:data")

	// ErrAuthenticationFailed is returned when tag verification fails during
	// Open. Wrong passphrase and tampering are not distinguishable.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrEncryptionFailed is returned when the underlying cipher, KDF, or
	// random source is unavailable. Treat as fatal.
	ErrEncryptionFailed = errors.New("encryption unavailable")

	// ErrSurveyNotFound is returned when a survey is not found.
	ErrSurveyNotFound = errors.New("survey not found")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// SurveyLockError is implemented by all SDK errors.
type SurveyLockError interface {
	error
	SurveyLockError() // marker method
}

// FormatError indicates a malformed envelope: wrong field count or a field
// that is not valid base64. It is detected before any cryptographic work.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

// Is implements errors.Is for sentinel error matching.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// SurveyLockError implements the SurveyLockError interface.
func (e *FormatError) SurveyLockError() {}

// AuthenticationError indicates that tag verification failed during Open.
// It deliberately carries no detail about whether the cause was a wrong
// passphrase or a tampered envelope.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "authentication failed: wrong passphrase or tampered data"
}

// Is implements errors.Is for sentinel error matching.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthenticationFailed
}

// SurveyLockError implements the SurveyLockError interface.
func (e *AuthenticationError) SurveyLockError() {}

// EncryptionError indicates the cryptographic primitives themselves failed.
type EncryptionError struct {
	Err error
}

func (e *EncryptionError) Error() string {
	return fmt.Sprintf("encryption unavailable: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *EncryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EncryptionError) Is(target error) bool {
	return target == ErrEncryptionFailed
}

// SurveyLockError implements the SurveyLockError interface.
func (e *EncryptionError) SurveyLockError() {}

// APIError represents an HTTP error from the SurveyLock API.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		return target == ErrSurveyNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// SurveyLockError implements the SurveyLockError interface.
func (e *APIError) SurveyLockError() {}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// SurveyLockError implements the SurveyLockError interface.
func (e *NetworkError) SurveyLockError() {}

// wrapCodecError converts internal sealbox errors to public typed errors so
// that errors.Is() checks work with the package sentinels.
func wrapCodecError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sealbox.ErrInvalidFormat):
		return &FormatError{Message: err.Error()}
	case errors.Is(err, sealbox.ErrAuthenticationFailed):
		return &AuthenticationError{}
	case errors.Is(err, sealbox.ErrEncryptionFailed):
		return &EncryptionError{Err: err}
	}
	return err
}

// wrapAPIError converts internal api errors to public typed errors.
func wrapAPIError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			RequestID:  apiErr.RequestID,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:     netErr.Err,
			URL:     netErr.URL,
			Attempt: netErr.Attempt,
		}
	}

	return err
}
