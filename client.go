package mailjet

import (
	"context"

	"github.com/mailjet-community/client-go/internal/api"
)

// Client is the Mailjet API client. It holds the credentials and a reusable
// HTTP transport, and is otherwise stateless between calls: methods may be
// invoked concurrently from multiple goroutines.
type Client struct {
	apiClient   *api.Client
	senderEmail string
	senderName  string
}

// New creates a client from the API key pair issued by Mailjet.
// No network call is made; bad credentials surface as ErrUnauthorized on
// the first request.
func New(apiKey, secretKey string, opts ...Option) (*Client, error) {
	creds, err := api.NewCredentials(apiKey, secretKey)
	if err != nil {
		return nil, ErrMissingCredentials
	}

	cfg := &clientConfig{
		baseURL:   defaultBaseURL,
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:     cfg.baseURL,
		Credentials: creds,
		UserAgent:   cfg.userAgent,
		HTTPClient:  cfg.httpClient,
		Timeout:     cfg.timeout,
		Logger:      cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		apiClient:   apiClient,
		senderEmail: cfg.senderEmail,
		senderName:  cfg.senderName,
	}, nil
}

// Ping issues an authenticated request against the sender resource to
// verify that the credentials are accepted. Returns nil on success,
// ErrUnauthorized (via errors.Is) on bad credentials.
func (c *Client) Ping(ctx context.Context) error {
	query := (&SenderQuery{Limit: 1}).values()
	var result restResponse[Sender]
	if err := c.apiClient.Do(ctx, "GET", api.SenderPath(), query, nil, &result); err != nil {
		return wrapError(err)
	}
	return nil
}
