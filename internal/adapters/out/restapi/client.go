// Package restapi is the client of the remote commerce API: orders, catalog
// products and user accounts. Every call is authenticated with the upstream
// bearer token found on the request context.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sellerdesk/internal/pkg/bearer"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	// DefaultTimeout bounds every call when no client is supplied.
	DefaultTimeout = 15 * time.Second

	networkErrorMessage = "Network error"
	maxResponseBytes    = 10 << 20
)

// ErrUpstream is the sentinel behind every APIError.
var ErrUpstream = errors.New("upstream request failed")

// APIError is a failed call to the remote API. Message is the human-readable
// text shown to operators: the server's message when it sent one, otherwise a
// per-operation fallback. StatusCode is 0 for transport failures.
type APIError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return ErrUpstream
}

// HTTPStatus is the remote status code, 0 for transport failures.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

// Client talks to one remote API base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds an instrumented client with the given timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// NewClient validates baseURL. A nil httpClient gets NewHTTPClient(DefaultTimeout).
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("upstream API base URL is required")
	}
	if httpClient == nil {
		httpClient = NewHTTPClient(DefaultTimeout)
	}
	return &Client{baseURL: baseURL, http: httpClient}, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type request struct {
	method      string
	path        string
	body        io.Reader
	contentType string
	// fallback is the operator-facing message when the server sends none.
	fallback string
}

func jsonRequest(method, path string, payload any, fallback string) (request, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return request{}, fmt.Errorf("encode request body: %w", err)
	}
	return request{
		method:      method,
		path:        path,
		body:        bytes.NewReader(raw),
		contentType: "application/json",
		fallback:    fallback,
	}, nil
}

// do sends req and returns the raw body of a 2xx response. Any other status is
// reported as an APIError carrying the server's message.
func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, req.body)
	if err != nil {
		return nil, &APIError{Message: req.fallback, Cause: err}
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if token, ok := bearer.TokenFromContext(ctx); ok {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, transportError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body, req.fallback),
		}
	}
	return body, nil
}

func transportError(err error) *APIError {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = networkErrorMessage
	}
	return &APIError{Message: msg, Cause: err}
}

// errorMessage reads the {"message": "..."} envelope of an error response.
func errorMessage(body []byte, fallback string) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fallback
	}
	if msg := strings.TrimSpace(envelope.Message); msg != "" {
		return msg
	}
	return fallback
}

// decodeError reports a 2xx body that could not be understood.
func decodeError(fallback string, err error) *APIError {
	return &APIError{StatusCode: http.StatusOK, Message: fallback, Cause: err}
}

// unwrapList accepts either a bare JSON array or an object holding the array
// under key. A missing key yields an empty list.
func unwrapList(body []byte, key string) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []json.RawMessage{}, nil
	}

	var items []json.RawMessage
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	raw, ok := envelope[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return []json.RawMessage{}, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// unwrapObject returns the object under key when present, otherwise the body
// itself.
func unwrapObject(body []byte, key string) json.RawMessage {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return body
	}
	if raw, ok := envelope[key]; ok && len(raw) > 0 && raw[0] == '{' {
		return raw
	}
	return body
}
