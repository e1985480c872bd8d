package trakt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL  = "https://api.trakt.tv"
	apiVersion      = "2"
	defaultPageSize = 100
	maxPages        = 100
)

// Sentinel errors for Trakt API responses.
var (
	ErrUnauthorized = errors.New("unauthorized: invalid client id or token")
	ErrRateLimited  = errors.New("rate limited: too many requests")
	ErrNoClientID   = errors.New("trakt client id is required")
)

// APIError is returned for unexpected HTTP statuses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("trakt API error: %d", e.StatusCode)
	}
	return fmt.Sprintf("trakt API error %d: %s", e.StatusCode, e.Body)
}

// Config holds the application credentials registered with Trakt.
// Public endpoints such as the trending feed only need ClientID.
type Config struct {
	ClientID string
	// ClientSecret is kept with the application credentials but is only
	// needed to exchange OAuth codes, which this client does not do.
	ClientSecret string
	// AccessToken, when set, is sent as a bearer token on every request.
	AccessToken string
}

// Client is a Trakt API v2 client.
type Client struct {
	cfg        Config
	baseURL    string
	pageSize   int
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithPageSize sets the number of items requested per page.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithRateLimiter replaces the default request limiter.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "trakt")
	}
}

// New creates a new Trakt client from cfg.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:      cfg,
		baseURL:  defaultBaseURL,
		pageSize: defaultPageSize,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		// Trakt allows 1000 GET calls every 5 minutes.
		limiter: rate.NewLimiter(rate.Every(300*time.Millisecond), 10),
	}
	for _, opt := range opts {
		opt(c)
	}

	if cfg.AccessToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.AccessToken,
			TokenType:   "Bearer",
		})
		c.httpClient = &http.Client{
			Timeout:   c.httpClient.Timeout,
			Transport: &oauth2.Transport{Base: c.httpClient.Transport, Source: src},
		}
	}
	return c
}

// Trending returns up to count shows from the trending feed, in feed order.
// A non-positive count returns an empty list without contacting Trakt.
func (c *Client) Trending(ctx context.Context, count int) ([]TrendingShow, error) {
	if count <= 0 {
		return []TrendingShow{}, nil
	}
	if c.cfg.ClientID == "" {
		return nil, ErrNoClientID
	}

	start := time.Now()
	limit := min(c.pageSize, count)
	shows := make([]TrendingShow, 0, count)

	page := 1
	for {
		items, pageCount, err := c.trendingPage(ctx, page, limit)
		if err != nil {
			return nil, err
		}

		for _, it := range items {
			if len(shows) == count {
				break
			}
			shows = append(shows, TrendingShow{Show: it.Show, Watchers: it.Watchers})
		}

		if len(shows) >= count || len(items) < limit {
			break
		}
		if pageCount > 0 && page >= pageCount {
			break
		}
		page++

		// Safety limit to prevent infinite loops
		if page > maxPages {
			if c.log != nil {
				c.log.Warn("hit pagination limit", "pages", maxPages, "shows", len(shows))
			}
			break
		}
	}

	if c.log != nil {
		c.log.Debug("fetched trending shows", "count", len(shows), "pages", page, "duration_ms", time.Since(start).Milliseconds())
	}

	return shows, nil
}

// trendingPage fetches a single page and the total page count reported by Trakt.
func (c *Client) trendingPage(ctx context.Context, page, limit int) ([]trendingItem, int, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, 0, fmt.Errorf("rate limiter: %w", err)
		}
	}

	endpoint := fmt.Sprintf("/shows/trending?page=%d&limit=%d", page, limit)
	resp, err := c.doRequest(ctx, http.MethodGet, endpoint)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkResponse(resp); err != nil {
		return nil, 0, err
	}

	var items []trendingItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, 0, fmt.Errorf("decode trending response: %w", err)
	}

	pageCount, _ := strconv.Atoi(resp.Header.Get("X-Pagination-Page-Count"))
	return items, pageCount, nil
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("trakt-api-version", apiVersion)
	req.Header.Set("trakt-api-key", c.cfg.ClientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	return resp, nil
}

// checkResponse maps HTTP statuses to sentinel errors.
func (c *Client) checkResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
}
