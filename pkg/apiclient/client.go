package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultTimeout = 30 * time.Second

// Error codes carried on APIError.
const (
	CodeTimeout      = "TIMEOUT"
	CodeNetworkError = "NETWORK_ERROR"
	CodeUnknownError = "UNKNOWN_ERROR"
)

// APIError is the uniform error envelope for outbound REST calls.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %s (status %d): %s", e.Code, e.Status, e.Message)
}

// TokenSource supplies the bearer token attached to each request. A nil
// source or empty token sends the request unauthenticated.
type TokenSource func() string

// Client wraps http.Client with a bearer-token header, a fixed per-request
// timeout enforced via context cancellation, and the APIError envelope.
type Client struct {
	BaseURL     string
	Timeout     time.Duration
	TokenSource TokenSource
	HTTPClient  *http.Client
}

func NewClient(baseURL string, timeout time.Duration, tokenSource TokenSource) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:     baseURL,
		Timeout:     timeout,
		TokenSource: tokenSource,
		HTTPClient:  &http.Client{},
	}
}

func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Status: 0, Code: CodeUnknownError, Message: "failed to encode request body"}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return &APIError{Status: 0, Code: CodeUnknownError, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.TokenSource != nil {
		if token := c.TokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Code: CodeNetworkError, Message: "failed to read response body"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Code: CodeUnknownError, Message: string(respBody)}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &APIError{Status: resp.StatusCode, Code: CodeUnknownError, Message: "failed to decode response body"}
		}
	}
	return nil
}

func classifyTransportError(err error) *APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &APIError{Status: 0, Code: CodeTimeout, Message: "request timed out"}
	}
	return &APIError{Status: 0, Code: CodeNetworkError, Message: err.Error()}
}
