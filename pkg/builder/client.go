package builder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

var _ Builder = (*Client)(nil)

// Client is the HTTP implementation of Builder. Its fields are set once by New
// and never mutated, so a Client may be shared by concurrent callers.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
	observer   Observer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient uses a caller-owned http.Client. It may be shared with other
// clients; timeouts and connection pooling are its concern.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent overrides UserAgent.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// New returns a Client for the service at baseURL, which must be absolute.
// Endpoint paths are resolved against it, so a base with a path component
// should end in "/".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, initErr(err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, initErr(fmt.Errorf("base url %q is not absolute", baseURL))
	}

	c := &Client{
		baseURL:   u,
		userAgent: UserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c, nil
}

// BaseURL returns a copy of the configured base URL.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

func (c *Client) SubmitBid(
	ctx context.Context,
	chainID string,
	height uint64,
	kind BidKind,
	txs [][]byte,
) (res *BidResult, err error) {
	if c.observer != nil {
		defer func(started time.Time) { c.observer.Observe(OperationBid, err, started) }(time.Now())
	}

	req := Bid{ChainID: chainID, Height: height, Kind: kind, Txs: txs}
	return call[BidResult](ctx, c, http.MethodPost, BidPath, req, bidResultFields)
}

// QueryAuction sends its query as a JSON body on a GET request, which is what
// the service expects.
func (c *Client) QueryAuction(
	ctx context.Context,
	chainID string,
	height uint64,
) (res *AuctionResult, err error) {
	if c.observer != nil {
		defer func(started time.Time) { c.observer.Observe(OperationAuction, err, started) }(time.Now())
	}

	req := AuctionQuery{ChainID: chainID, Height: height}
	return call[AuctionResult](ctx, c, http.MethodGet, AuctionPath, req, auctionResultFields)
}

// call performs one exchange. A response body must match its shape exactly:
// fields names the keys a 2xx body must carry.
func call[T any](ctx context.Context, c *Client, method, endpoint string, body any, fields []string) (*T, error) {
	target, err := c.baseURL.Parse(endpoint)
	if err != nil {
		return nil, parseErr(err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, transportErr(fmt.Errorf("encode %s request: %w", endpoint, err))
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, parseErr(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportErr(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportErr(fmt.Errorf("read %s response: %w", endpoint, err))
	}

	c.logger.Debug("Builder request completed",
		"method", method,
		"url", target.String(),
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ae AuctionError
		if err := decodeBody(data, &ae, auctionErrorFields); err != nil {
			return nil, transportErr(fmt.Errorf("decode %s error body (HTTP %d): %w", endpoint, resp.StatusCode, err))
		}
		return nil, auctionErr(&ae)
	}

	var result T
	if err := decodeBody(data, &result, fields); err != nil {
		return nil, transportErr(fmt.Errorf("decode %s response: %w", endpoint, err))
	}
	return &result, nil
}

// IsCanceled reports whether err is a transport failure caused by the
// caller's context ending rather than by the service.
func IsCanceled(err error) bool {
	return KindOf(err) == KindTransport &&
		(errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded))
}
