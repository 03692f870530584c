// Package api implements the HTTP client for the Hevy API.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hevy-tools/hevyctl/internal/config"
)

// Client is a Hevy API client. Every endpoint authenticates with the
// account API key sent in the api-key header.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
	log     *zap.Logger
}

// NewClient creates a new Hevy API client from config.
func NewClient(cfg *config.Config, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		key:     cfg.APIKey,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// TransportError is a network-level failure: the request never produced
// an HTTP response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "request failed: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError is a non-2xx response from the API. Body carries the
// server's error payload verbatim.
type RemoteError struct {
	Status int
	Body   []byte
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("hevy API returned %d: %s", e.Status, bytes.TrimSpace(e.Body))
}

// ResponseError is a 2xx response whose body could not be interpreted
// as the expected JSON.
type ResponseError struct {
	Body []byte
}

func (e *ResponseError) Error() string { return "invalid response body" }

// RequestBodyError is a --json payload that is not valid JSON. It is
// raised before any request is sent.
type RequestBodyError struct {
	Hint string
}

func (e *RequestBodyError) Error() string {
	if e.Hint == "" {
		return "invalid JSON body"
	}
	return "invalid JSON body: " + e.Hint
}

func (c *Client) do(method, path string, query url.Values, body json.RawMessage) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("api-key", c.key)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("sending request", zap.String("method", method), zap.String("url", u))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	c.log.Debug("received response",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(respBody)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{Status: resp.StatusCode, Body: respBody}
	}

	if !json.Valid(respBody) {
		return nil, &ResponseError{Body: respBody}
	}

	return respBody, nil
}

// Get performs a GET request. Query parameters are forwarded unchanged;
// pagination is the caller's business (check page_count in the response).
func (c *Client) Get(path string, query url.Values) (json.RawMessage, error) {
	return c.do(http.MethodGet, path, query, nil)
}

// Post performs a POST request with a raw JSON body.
func (c *Client) Post(path string, body json.RawMessage) (json.RawMessage, error) {
	return c.do(http.MethodPost, path, nil, body)
}

// Put performs a PUT request with a raw JSON body.
func (c *Client) Put(path string, body json.RawMessage) (json.RawMessage, error) {
	return c.do(http.MethodPut, path, nil, body)
}
