package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Default transport settings.
const (
	DefaultBaseURL = "https://api.mailjet.com"
	DefaultTimeout = 30 * time.Second
)

// Config configures the API client.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string
	// Credentials is the Basic Auth key pair. Required.
	Credentials Credentials
	// UserAgent is sent with every request.
	UserAgent string
	// HTTPClient replaces the default HTTP client. Tests use this to point
	// the client at a local stub server.
	HTTPClient *http.Client
	// Timeout applies to the default HTTP client only; ignored when
	// HTTPClient is set.
	Timeout time.Duration
	// Logger receives a debug-level span per request. Nil disables logging.
	Logger *zerolog.Logger
}

// Client is the low-level HTTP client for the Mailjet REST API.
// It performs a single attempt per call; retry policy belongs to the caller.
type Client struct {
	baseURL    string
	creds      Credentials
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new API client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		creds:      cfg.Credentials,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// SetHTTPClient replaces the underlying HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Do executes a single request against the API and decodes the response
// into result. body is JSON-encoded when non-nil; query may be nil.
// Error mapping: transport failures (including cancellation) return
// *NetworkError, 4xx/5xx return *APIError, malformed success bodies
// return *DecodeError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	c.creds.apply(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().
			Str("method", method).
			Str("url", fullURL).
			Dur("duration", time.Since(start)).
			Err(err).
			Msg("request failed")
		return &NetworkError{Err: err, URL: fullURL}
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("url", fullURL).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode >= 400 {
		return parseErrorResponse(resp)
	}

	if result != nil {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return &NetworkError{Err: err, URL: fullURL}
		}
		if err := json.Unmarshal(data, result); err != nil {
			return &DecodeError{Err: err, Body: string(data)}
		}
	}

	return nil
}

// parseErrorResponse maps a 4xx/5xx response to *APIError, preferring the
// structured error payload the API documents and falling back to the raw
// body text.
func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		ErrorInfo       string `json:"ErrorInfo"`
		ErrorMessage    string `json:"ErrorMessage"`
		ErrorIdentifier string `json:"ErrorIdentifier"`
		StatusCode      int    `json:"StatusCode"`
	}

	if err := json.Unmarshal(body, &errResp); err == nil && errResp.ErrorMessage != "" {
		return &APIError{
			StatusCode:      resp.StatusCode,
			ErrorInfo:       errResp.ErrorInfo,
			ErrorMessage:    errResp.ErrorMessage,
			ErrorIdentifier: errResp.ErrorIdentifier,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}
