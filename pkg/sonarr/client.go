package sonarr

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const apiPath = "/api/v3"

// Client is a Sonarr v3 API client.
type Client struct {
	baseURL    string
	apiKey     string
	rootFolder string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithClientCertificate presents cert on every TLS handshake with Sonarr.
func WithClientCertificate(cert tls.Certificate) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{
			Timeout: c.httpClient.Timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				TLSClientConfig: &tls.Config{
					Certificates: []tls.Certificate{cert},
					MinVersion:   tls.VersionTLS12,
				},
			},
		}
	}
}

// WithRootFolder sets the root folder new series are added under.
// When unset, the first root folder reported by Sonarr is used.
func WithRootFolder(path string) Option {
	return func(c *Client) {
		c.rootFolder = path
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "sonarr")
	}
}

// New creates a Sonarr client. baseURL is the instance root, e.g. https://sonarr.example.com.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL builds the instance URL for host, using https unless insecure is set.
// A host that already carries a scheme is returned unchanged.
func BaseURL(host string, insecure bool) string {
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return host
	}
	if insecure {
		return "http://" + host
	}
	return "https://" + host
}

// LoadClientCertificate reads a PEM certificate and key pair.
func LoadClientCertificate(certFile, keyFile string) (tls.Certificate, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("load client certificate: %w", err)
	}
	return cert, nil
}

// QualityProfiles lists all quality profiles in the order Sonarr returns them.
func (c *Client) QualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	var profiles []QualityProfile
	if err := c.get(ctx, "/qualityprofile", &profiles); err != nil {
		return nil, fmt.Errorf("list quality profiles: %w", err)
	}
	return profiles, nil
}

// Series lists every series Sonarr tracks.
func (c *Client) Series(ctx context.Context) ([]Series, error) {
	start := time.Now()

	var series []Series
	if err := c.get(ctx, "/series", &series); err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}

	if c.log != nil {
		c.log.Debug("fetched series", "count", len(series), "duration_ms", time.Since(start).Milliseconds())
	}
	return series, nil
}

// RootFolders lists the configured library root folders.
func (c *Client) RootFolders(ctx context.Context) ([]RootFolder, error) {
	var folders []RootFolder
	if err := c.get(ctx, "/rootfolder", &folders); err != nil {
		return nil, fmt.Errorf("list root folders: %w", err)
	}
	return folders, nil
}

// BuildNewSeriesRequest templates an add request for tvdbID from Sonarr's lookup
// result. The series is monitored with season folders; AddOptions default to
// ignoring episodes without files and not searching, which callers may override.
func (c *Client) BuildNewSeriesRequest(ctx context.Context, tvdbID, qualityProfileID int) (NewSeriesRequest, error) {
	var results []lookupResult
	path := "/series/lookup?term=" + url.QueryEscape(fmt.Sprintf("tvdb:%d", tvdbID))
	if err := c.get(ctx, path, &results); err != nil {
		return NewSeriesRequest{}, fmt.Errorf("lookup tvdb:%d: %w", tvdbID, err)
	}
	if len(results) == 0 {
		return NewSeriesRequest{}, fmt.Errorf("lookup tvdb:%d: %w", tvdbID, ErrNotFound)
	}
	found := results[0]

	rootFolder, err := c.resolveRootFolder(ctx)
	if err != nil {
		return NewSeriesRequest{}, err
	}

	return NewSeriesRequest{
		TVDBID:           tvdbID,
		Title:            found.Title,
		TitleSlug:        found.TitleSlug,
		Year:             found.Year,
		QualityProfileID: qualityProfileID,
		RootFolderPath:   rootFolder,
		SeriesType:       found.SeriesType,
		Monitored:        true,
		SeasonFolder:     true,
		Images:           found.Images,
		Seasons:          found.Seasons,
		AddOptions: AddOptions{
			IgnoreEpisodesWithFiles:    false,
			IgnoreEpisodesWithoutFiles: true,
			SearchForMissingEpisodes:   false,
		},
	}, nil
}

// AddSeries submits req and returns the series Sonarr created.
func (c *Client) AddSeries(ctx context.Context, req NewSeriesRequest) (*Series, error) {
	var created Series
	if err := c.post(ctx, "/series", req, &created); err != nil {
		return nil, fmt.Errorf("add series tvdb:%d: %w", req.TVDBID, err)
	}

	if c.log != nil {
		c.log.Debug("added series", "tvdb_id", req.TVDBID, "id", created.ID, "title", created.Title)
	}
	return &created, nil
}

// resolveRootFolder returns the configured root folder or Sonarr's first one.
// The lookup result is cached for the life of the client.
func (c *Client) resolveRootFolder(ctx context.Context) (string, error) {
	if c.rootFolder != "" {
		return c.rootFolder, nil
	}

	folders, err := c.RootFolders(ctx)
	if err != nil {
		return "", err
	}
	if len(folders) == 0 {
		return "", ErrNoRootFolder
	}

	c.rootFolder = folders[0].Path
	return c.rootFolder, nil
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	return c.do(ctx, http.MethodGet, path, nil, result)
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(jsonBody), result)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, result any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPath+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkResponse(resp); err != nil {
		return err
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// checkResponse maps HTTP statuses to sentinel errors.
func checkResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
}
