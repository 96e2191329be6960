// Package stats fetches project statistics from the SpecStory cloud API.
package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/jeanhaley32/specstory-stats/internal/constants"
)

// Fetcher retrieves stats for a project identifier.
type Fetcher interface {
	Fetch(ctx context.Context, projectID string) (*Stats, error)
}

// Stats is the decoded response body. Its schema is owned by the server.
type Stats struct {
	// Raw is the body exactly as received.
	Raw json.RawMessage
	// Value is the body decoded into maps, slices, strings, float64s and bools.
	Value any
}

// Indent returns Raw pretty-printed with two-space indentation.
// Key order, number spelling, string escapes and duplicate keys are kept
// exactly as the server sent them.
func (s *Stats) Indent() (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(s.Raw), "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Client implements Fetcher over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(cl *Client) {
		cl.logger = l
	}
}

// NewClient creates a client for the given base URL.
// The default http.Client has no timeout; cancel through the context instead.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the stats endpoint for a project.
// The base URL and ID are concatenated as-is.
func URL(baseURL, projectID string) string {
	return baseURL + fmt.Sprintf(constants.StatsPathFormat, projectID)
}

// Fetch performs a single GET for the project's stats. There is no retry.
func (c *Client) Fetch(ctx context.Context, projectID string) (*Stats, error) {
	url := URL(c.baseURL, projectID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}

	c.logger.Debug().Str("url", url).Msg("fetching project stats")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}

	c.logger.Debug().Int("status", resp.StatusCode).Int("bytes", len(body)).Msg("received stats response")

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return nil, &ResponseFormatError{Body: string(body), Err: err}
	}

	return &Stats{Raw: body, Value: value}, nil
}
