// Package gateway contains HTTP clients for the authors backend and the publications backend.
//
// Each backend gets its own handle with its own base URL and timeout,
// so a slow or failing backend does not affect requests to the other one.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds every request, including reading the response body.
	DefaultTimeout = 5 * time.Second

	DefaultPage     = 0
	DefaultPageSize = 10

	UserAgent = "editorial-console"

	maxErrorBody = 64 * 1024
)

// Option configures a backend handle.
type Option func(*client)

// WithTimeout sets the request timeout. It has no effect if WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithRateLimit paces requests to at most rps requests per second. Zero or less means no limit.
func WithRateLimit(rps float64) Option {
	return func(c *client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		} else {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
		}
	}
}

type client struct {
	backend    string
	baseURL    string // without trailing slash
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
}

func newClient(backend, baseURL string, opts ...Option) client {
	var c = client{
		backend: backend,
		baseURL: strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
		timeout: DefaultTimeout,
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// BaseURL returns the base URL of the backend.
func (c *client) BaseURL() string {
	return c.baseURL
}

func pageQuery(page, size int) url.Values {
	if page < 0 {
		page = DefaultPage
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return url.Values{
		"page": []string{fmt.Sprint(page)},
		"size": []string{fmt.Sprint(size)},
	}
}

// do sends a request. If body is not nil, it is sent as JSON. If out is not nil, the response body is decoded into it.
func (c *client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %s service: %v", ErrNetwork, c.backend, err)
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	var target = c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("%s service: building request: %w", c.backend, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s service: %v", ErrNetwork, c.backend, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty body
		}
		return fmt.Errorf("%w: %s service: %v", ErrInvalidResponse, c.backend, err)
	}
	return nil
}

func (c *client) apiError(resp *http.Response) error {

	var apiErr = &APIError{
		Backend:    c.backend,
		StatusCode: resp.StatusCode,
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}

	var parsed struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(b, &parsed); err == nil {
		apiErr.Message = strings.TrimSpace(parsed.Message)
		apiErr.Errors = parsed.Errors
	}
	return apiErr
}
