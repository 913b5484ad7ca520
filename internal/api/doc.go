// Package api provides the HTTP client for the SurveyLock API. It handles
// request/response serialization and automatic retry with exponential
// backoff for transient failures.
//
// The envelope carried in survey responses is an opaque string to this
// package: it is never parsed, decoded, or logged here. Opening it belongs
// to the sealbox layer.
//
// # Retry Behavior
//
// Failed requests are retried with exponential backoff and jitter. By
// default up to 3 retries are attempted for network errors and for these
// HTTP status codes:
//
//   - 408 Request Timeout
//   - 429 Too Many Requests
//   - 500 Internal Server Error
//   - 502 Bad Gateway
//   - 503 Service Unavailable
//   - 504 Gateway Timeout
//
// # Error Handling
//
// HTTP-level failures surface as [*Error] with the status code and any
// request ID the server returned. Sentinel errors ([ErrSurveyNotFound],
// [ErrUnauthorized], [ErrRateLimited]) match via errors.Is.
//
// The [Client] type is safe for concurrent use.
package api
