package mailjet

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL   = "https://api.mailjet.com"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "mailjet-client-go/" + SDKVersion
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL     string
	httpClient  *http.Client
	timeout     time.Duration
	userAgent   string
	logger      *zerolog.Logger
	senderEmail string
	senderName  string
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. Tests use this to point the client at
// a local stub server.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. The client's transport settings
// (timeouts, proxies, connection pool) replace the defaults entirely.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
// Ignored when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// WithLogger enables request tracing: a debug-level event per request with
// method, URL, status code and latency. The URL never contains credentials.
// Without this option the client logs nothing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = &logger
	}
}

// WithDefaultSender sets a sender address applied to messages that do not
// specify their own From field. Name may be empty.
func WithDefaultSender(email, name string) Option {
	return func(c *clientConfig) {
		c.senderEmail = email
		c.senderName = name
	}
}
