package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testCredentials(t *testing.T) Credentials {
	t.Helper()
	creds, err := NewCredentials("test-key", "test-secret")
	if err != nil {
		t.Fatalf("NewCredentials() error = %v", err)
	}
	return creds
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{Credentials: testCredentials(t)})
	if err == nil {
		t.Error("expected error for empty base URL")
	}
}

func TestNewClient_DefaultValues(t *testing.T) {
	client, err := NewClient(Config{
		BaseURL:     "https://example.com",
		Credentials: testCredentials(t),
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.httpClient == nil {
		t.Fatal("httpClient is nil")
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.httpClient.Timeout, DefaultTimeout)
	}
}

func TestNewClient_CustomHTTPClient(t *testing.T) {
	customHTTPClient := &http.Client{Timeout: 60 * time.Second}

	client, err := NewClient(Config{
		BaseURL:     "https://example.com",
		Credentials: testCredentials(t),
		HTTPClient:  customHTTPClient,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.httpClient != customHTTPClient {
		t.Error("httpClient not set correctly")
	}
}

func TestClient_Do_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "test-key" || pass != "test-secret" {
			t.Errorf("Basic Auth = %q/%q/%v, want test-key/test-secret", user, pass, ok)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", r.Header.Get("Content-Type"))
		}
		if r.Header.Get("User-Agent") != "test-agent" {
			t.Errorf("User-Agent = %s, want test-agent", r.Header.Get("User-Agent"))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}))
	defer server.Close()

	client, err := NewClient(Config{
		BaseURL:     server.URL,
		Credentials: testCredentials(t),
		UserAgent:   "test-agent",
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	var result struct{ OK bool }
	if err := client.Do(context.Background(), "GET", "/test", nil, nil, &result); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if !result.OK {
		t.Error("result.OK = false, want true")
	}
}

func TestClient_Do_SendsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct{ Name string }
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		if body.Name != "test" {
			t.Errorf("body.Name = %s, want test", body.Name)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, Credentials: testCredentials(t)})

	err := client.Do(context.Background(), "POST", "/test", nil, map[string]string{"Name": "test"}, nil)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestClient_Do_StructuredError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"ErrorInfo":       "",
			"ErrorMessage":    "Missing mandatory property",
			"ErrorIdentifier": "f3f2b4f5-9a2b-4c0d-8b7a-000000000000",
			"StatusCode":      400,
		})
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, Credentials: testCredentials(t)})

	err := client.Do(context.Background(), "POST", "/test", nil, nil, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Do() error = %T, want *APIError", err)
	}
	if apiErr.StatusCode != 400 {
		t.Errorf("StatusCode = %d, want 400", apiErr.StatusCode)
	}
	if apiErr.ErrorMessage != "Missing mandatory property" {
		t.Errorf("ErrorMessage = %q", apiErr.ErrorMessage)
	}
	if apiErr.ErrorIdentifier == "" {
		t.Error("ErrorIdentifier is empty")
	}
}

func TestClient_Do_UnstructuredError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, Credentials: testCredentials(t)})

	err := client.Do(context.Background(), "GET", "/test", nil, nil, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Do() error = %T, want *APIError", err)
	}
	if apiErr.StatusCode != 500 {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
	if apiErr.Body != "upstream exploded" {
		t.Errorf("Body = %q, want raw body text", apiErr.Body)
	}
}

func TestClient_Do_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, Credentials: testCredentials(t)})

	var result struct{ OK bool }
	err := client.Do(context.Background(), "GET", "/test", nil, nil, &result)
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("Do() error = %T, want *DecodeError", err)
	}
	if decErr.Body != "not json at all" {
		t.Errorf("Body = %q, want raw body text", decErr.Body)
	}
}

func TestClient_Do_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client, _ := NewClient(Config{BaseURL: server.URL, Credentials: testCredentials(t)})

	err := client.Do(context.Background(), "GET", "/test", nil, nil, nil)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("Do() error = %T, want *NetworkError", err)
	}
	if netErr.URL == "" {
		t.Error("NetworkError.URL is empty")
	}
}

func TestClient_Do_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, Credentials: testCredentials(t)})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	err := client.Do(ctx, "GET", "/test", nil, nil, nil)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("Do() error = %T, want *NetworkError", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error does not unwrap to context.Canceled: %v", err)
	}
}

func TestClient_Do_QueryParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("Limit"); got != "10" {
			t.Errorf("Limit = %q, want 10", got)
		}
		if got := r.URL.Query().Get("Email"); got != "a@b.com" {
			t.Errorf("Email = %q, want a@b.com", got)
		}
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, Credentials: testCredentials(t)})

	query := map[string][]string{"Limit": {"10"}, "Email": {"a@b.com"}}
	if err := client.Do(context.Background(), "GET", "/test", query, nil, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestClient_Do_NoRetries(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, Credentials: testCredentials(t)})

	if err := client.Do(context.Background(), "GET", "/test", nil, nil, nil); err == nil {
		t.Fatal("expected error for 503 response")
	}
	if requests != 1 {
		t.Errorf("server saw %d requests, want exactly 1 (no retries)", requests)
	}
}

func TestParseErrorResponse_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL, Credentials: testCredentials(t)})

	err := client.Do(context.Background(), "GET", "/test", nil, nil, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Do() error = %T, want *APIError", err)
	}
	if apiErr.StatusCode != 401 {
		t.Errorf("StatusCode = %d, want 401", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Error(), "401") {
		t.Errorf("Error() = %q, want the status code included", apiErr.Error())
	}
}
