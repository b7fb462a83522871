package mailjet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mailjet-community/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingCredentials is returned when the API key or secret key is empty.
	ErrMissingCredentials = errors.New("API key and secret key are required")

	// ErrUnauthorized is returned when the API rejects the credentials (401/403).
	ErrUnauthorized = errors.New("invalid or expired API credentials")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrUnknownAPIVersion is returned when a version string cannot be parsed.
	ErrUnknownAPIVersion = errors.New("unknown API version")
)

// MailjetError is implemented by all SDK errors.
type MailjetError interface {
	error
	MailjetError() // marker method
}

// APIError represents a 4xx/5xx response from the Mailjet API.
// ErrorMessage and the sibling fields carry the structured error payload
// when the API returned one; Body carries the raw response text otherwise.
type APIError struct {
	StatusCode      int
	ErrorInfo       string
	ErrorMessage    string
	ErrorIdentifier string
	Body            string
}

func (e *APIError) Error() string {
	if e.ErrorMessage != "" {
		if e.ErrorIdentifier != "" {
			return fmt.Sprintf("API error %d: %s (error_identifier: %s)", e.StatusCode, e.ErrorMessage, e.ErrorIdentifier)
		}
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.ErrorMessage)
	}
	if e.Body != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// MailjetError implements the MailjetError interface.
func (e *APIError) MailjetError() {}

// Is implements errors.Is for sentinel error matching. 401 and 403 both map
// to ErrUnauthorized so callers can distinguish bad credentials from other
// request problems without inspecting status codes.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401, 403:
		return target == ErrUnauthorized
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a transport-level failure: connection errors,
// timeouts and context cancellation.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MailjetError implements the MailjetError interface.
func (e *NetworkError) MailjetError() {}

// DecodeError reports a success response whose body could not be decoded
// into the endpoint's typed result.
type DecodeError struct {
	Err  error
	Body string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MailjetError implements the MailjetError interface.
func (e *DecodeError) MailjetError() {}

// ValidationError reports client-side payload problems detected before any
// network call is made.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// MailjetError implements the MailjetError interface.
func (e *ValidationError) MailjetError() {}

// wrapError converts internal API errors to public errors, so errors.Is
// and errors.As work against the exported taxonomy.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode:      apiErr.StatusCode,
			ErrorInfo:       apiErr.ErrorInfo,
			ErrorMessage:    apiErr.ErrorMessage,
			ErrorIdentifier: apiErr.ErrorIdentifier,
			Body:            apiErr.Body,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	var decErr *api.DecodeError
	if errors.As(err, &decErr) {
		return &DecodeError{
			Err:  decErr.Err,
			Body: decErr.Body,
		}
	}

	return err
}
