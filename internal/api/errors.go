package api

import "fmt"

// APIError represents a 4xx/5xx response from the Mailjet API.
// When the API returned its structured error payload, ErrorMessage and the
// sibling fields are populated. Otherwise Body carries the raw response text
// so callers still see what the server said.
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

// NetworkError represents a transport-level failure: connection errors,
// timeouts and context cancellation. The URL never contains credentials;
// authentication travels in the Authorization header.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error, so errors.Is reaches
// context.Canceled and context.DeadlineExceeded.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError reports a success response whose body could not be
// deserialized into the endpoint's typed result. It is distinct from
// APIError: the server accepted the request, the payload was malformed.
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
