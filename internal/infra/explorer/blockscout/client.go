// Package blockscout implements explorer.Client against the Blockscout v2 REST
// API used by the Mode network explorer.
package blockscout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gabapcia/modescope/internal/explorer"
	"github.com/gabapcia/modescope/internal/pkg/logger"
	"github.com/gabapcia/modescope/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/modescope/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the public Mode network explorer API.
const DefaultBaseURL = "https://explorer.mode.network/api"

// client implements explorer.Client over HTTP.
type client struct {
	baseURL    string                // API root without trailing slash, e.g. https://explorer.mode.network/api
	httpClient *retryablehttp.Client // single-attempt HTTP client
}

// Ensure client implements the explorer.Client interface at compile time.
var _ explorer.Client = (*client)(nil)

// list is the paginated shape shared by the list endpoints. Only the first
// page is ever read.
type list[T any] struct {
	explorer.Envelope

	Items []T `json:"items"`
}

// config holds optional configuration parameters for the Blockscout client.
type config struct {
	timeout time.Duration
}

// Option configures the Blockscout client.
type Option func(*config)

// WithTimeout bounds a single request. Zero disables the bound and leaves
// cancellation to the caller's context.
//
// Default: 15 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// NewClient creates a Blockscout client rooted at baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string, opts ...Option) *client {
	cfg := config{
		timeout: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: transporthttp.NewClient(transporthttp.WithTimeout(cfg.timeout)),
	}
}

// GetAddress calls GET /v2/addresses/{address}.
func (c *client) GetAddress(ctx context.Context, address string) (explorer.AddressInfo, error) {
	var info explorer.AddressInfo
	statusCode, err := c.get(ctx, "/v2/addresses/"+url.PathEscape(address), &info)
	if err != nil {
		return explorer.AddressInfo{}, err
	}

	if err := info.Err(statusCode); err != nil {
		return explorer.AddressInfo{}, err
	}

	return info, nil
}

// GetBlocks calls GET /v2/blocks.
func (c *client) GetBlocks(ctx context.Context) ([]explorer.Block, error) {
	var page list[explorer.Block]
	statusCode, err := c.get(ctx, "/v2/blocks", &page)
	if err != nil {
		return nil, err
	}

	if err := page.Err(statusCode); err != nil {
		return nil, err
	}

	return page.Items, nil
}

// GetAddressTransactions calls GET /v2/addresses/{address}/transactions.
func (c *client) GetAddressTransactions(ctx context.Context, address string) ([]explorer.Transaction, error) {
	var page list[explorer.Transaction]
	statusCode, err := c.get(ctx, "/v2/addresses/"+url.PathEscape(address)+"/transactions", &page)
	if err != nil {
		return nil, err
	}

	if err := page.Err(statusCode); err != nil {
		return nil, err
	}

	return page.Items, nil
}

// get issues a GET to path and decodes the JSON body into dst. It returns the
// HTTP status code so the caller can combine it with the envelope fields.
//
// An empty 2xx body yields explorer.ErrEmptyResponse. An empty non-2xx body is
// left for the envelope check, which turns the status code into an APIError.
func (c *client) get(ctx context.Context, path string, dst any) (int, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "explorer.get",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodGet),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	statusCode, err := c.do(ctx, path, dst)
	span.SetAttributes(attribute.Int("http.response.status_code", statusCode))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Debug(ctx, "explorer request failed", "url.path", path, "error", err)
	}

	return statusCode, err
}

func (c *client) do(ctx context.Context, path string, dst any) (int, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, err
	}

	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, fmt.Errorf("reading explorer response: %w", err)
	}

	ok := res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices
	if len(bytes.TrimSpace(body)) == 0 {
		if ok {
			return res.StatusCode, explorer.ErrEmptyResponse
		}
		return res.StatusCode, nil
	}

	if err := json.Unmarshal(body, dst); err != nil {
		// Proxies answer failures with HTML pages; the status code is enough there.
		if !ok {
			return res.StatusCode, nil
		}
		return res.StatusCode, fmt.Errorf("decoding explorer response: %w", err)
	}

	return res.StatusCode, nil
}
