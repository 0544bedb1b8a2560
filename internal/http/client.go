// Package http implements the transport client for the Redmine REST API:
// one outbound HTTP request per call, a per-request timeout with guaranteed
// cancellation, and normalization of failures into the redmine error
// taxonomy.
package http

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

	"github.com/hashicorp/go-retryablehttp"

	"github.com/tracklight-io/redmine-mcp/internal/constants"
	"github.com/tracklight-io/redmine-mcp/pkg/redmine"
)

// Request describes a single HTTP request to the Redmine API.
type Request struct {
	// Method defaults to GET when empty.
	Method string
	// Path is appended to the client's base URL, e.g. "/issues.json".
	Path string
	// Query parameters are encoded in insertion order.
	Query *redmine.Params
	// Body is JSON-serialized when non-nil; nil sends no body at all.
	Body interface{}
}

// Response is the outcome of a successful request. Body always holds valid
// JSON: responses without a JSON content type (204-style) yield "{}".
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger redmine.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetryConfig enables transport-level retries. The default client sends
// exactly one request per call.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// Client issues HTTP requests against a single Redmine endpoint. It is
// stateless per call and safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *retryablehttp.Client
	timeout    time.Duration
	userAgent  string
	logger     redmine.Logger
	debug      bool
}

// NewClient creates a transport client for the given endpoint and API key.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: retryClient,
		timeout:    constants.DefaultHTTPTimeout,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do issues a single request and returns the parsed response.
//
// A timeout timer scoped to this call cancels the in-flight request when it
// elapses; the deferred cancel releases it on every path. Non-success
// statuses become *redmine.APIError carrying the status and body text.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	target := c.baseURL + req.Path
	if req.Query.Len() > 0 {
		target += "?" + req.Query.Encode()
	}

	var rawBody io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		rawBody = bytes.NewReader(data)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, target, rawBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set(constants.APIKeyHeader, c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": method,
			"path":   req.Path,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return nil, &redmine.TimeoutError{Timeout: c.timeout}
		}

		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	data, readErr := io.ReadAll(httpResp.Body)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method": method,
			"path":   req.Path,
			"status": httpResp.StatusCode,
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		detail := ""
		if readErr == nil {
			detail = strings.TrimSpace(string(data))
		}

		if detail == "" {
			detail = httpResp.Status
		}

		return resp, &redmine.APIError{StatusCode: httpResp.StatusCode, Detail: detail}
	}

	if readErr != nil {
		return nil, fmt.Errorf("reading response body: %w", readErr)
	}

	contentType := httpResp.Header.Get("Content-Type")
	if len(data) == 0 || !strings.Contains(contentType, "application/json") {
		data = []byte("{}")
	}

	resp.Body = data

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query *redmine.Params) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
