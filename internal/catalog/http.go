package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/arbiscout/arbiscout/internal/metrics"
)

// HTTPClient implements Client against a catalog HTTP API that serves
// GET /products/{identifier}.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures the HTTPClient.
type Option func(*HTTPClient)

// WithAPIKey sets the bearer token sent on every lookup.
func WithAPIKey(key string) Option {
	return func(c *HTTPClient) {
		c.apiKey = key
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// WithRateLimit caps outbound lookups with a token bucket. Every Lookup()
// waits for a token first.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *HTTPClient) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewHTTPClient creates a catalog client for the given base URL.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup fetches one product record by identifier.
func (c *HTTPClient) Lookup(ctx context.Context, identifier string) (*Product, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}
	metrics.CatalogLookupsTotal.Inc()

	u := fmt.Sprintf("%s/products/%s", c.baseURL, url.PathEscape(identifier))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.CatalogFailuresTotal.Inc()
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, identifier)
	case resp.StatusCode != http.StatusOK:
		metrics.CatalogFailuresTotal.Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("catalog returned %d: %s", resp.StatusCode, body)
	}

	var p Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		metrics.CatalogFailuresTotal.Inc()
		return nil, fmt.Errorf("decoding catalog response: %w", err)
	}
	if p.Identifier == "" {
		p.Identifier = identifier
	}
	return &p, nil
}
