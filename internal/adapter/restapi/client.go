// Package restapi implements domain.BankingAPI against the bank's JSON
// over HTTP interface.
//
// Error mapping: a transport failure with no response becomes a
// *domain.NetworkError; 401 and 403 become *domain.AuthError; any other
// non-success status becomes a *domain.RemoteError whose message is the
// response body text, passed through verbatim.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/ombank/teller/internal/domain"
)

var _ domain.BankingAPI = (*Client)(nil)

// TokenSource yields the current bearer token, or "" when the client is
// not authenticated. It is consulted on every request so a login or
// logout takes effect immediately.
type TokenSource func() string

// Client is an HTTP client for the remote banking API.
// It implements domain.BankingAPI.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	tokens     TokenSource
	logger     *slog.Logger
}

// NewClient creates a Client for the API rooted at baseURL. A nil
// httpClient falls back to a default one; its transport settings own all
// timeout behavior, the client adds no retries of its own.
func NewClient(httpClient *http.Client, baseURL string, tokens TokenSource, logger *slog.Logger) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if tokens == nil {
		tokens = func() string { return "" }
	}
	if logger == nil {
		logger = slog.Default()
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    u,
		tokens:     tokens,
		logger:     logger,
	}, nil
}

// do issues one request and decodes the response into out when out is
// non-nil. body is JSON-marshalled when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.tokens(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.NetworkError{Err: err}
	}

	c.logger.Debug("api response", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errorFromResponse(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}
	return nil
}

// errorFromResponse classifies a non-success response. The body text is
// the error message, verbatim.
func errorFromResponse(statusCode int, body []byte) error {
	message := strings.TrimSpace(string(body))
	if message == "" {
		message = http.StatusText(statusCode)
	}

	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		return &domain.AuthError{Message: message}
	}
	return &domain.RemoteError{StatusCode: statusCode, Message: message}
}
