package podcastapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/podview/internal/domain"
)

const (
	// DefaultBaseURL is the public podcast API
	DefaultBaseURL = "https://podcast-api.netlify.app"

	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "podview/0.1"
	maxBodyBytes     = 32 << 20
)

// Client implements domain.CatalogRepository over the podcast HTTP API.
// It never retries and never caches.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

var _ domain.CatalogRepository = (*Client)(nil)

// NewClient creates a client for baseURL. An empty baseURL uses the public API;
// a non-positive timeout uses the default.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
		logger:    logger,
	}, nil
}

// BaseURL returns the normalized API root
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchCatalog retrieves every podcast preview
func (c *Client) FetchCatalog(ctx context.Context) ([]domain.PodcastSummary, error) {
	const op = "catalog"

	body, err := c.get(ctx, op, "/")
	if err != nil {
		return nil, err
	}

	var items []PreviewDTO
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, &domain.FetchError{Kind: domain.KindParse, Op: op, Err: err}
	}

	return MapPreviews(items), nil
}

// FetchDetail retrieves one podcast including seasons and episodes
func (c *Client) FetchDetail(ctx context.Context, id string) (*domain.PodcastDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidID
	}
	op := "detail " + id

	body, err := c.get(ctx, op, "/id/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	var show *ShowDTO
	if err := json.Unmarshal(body, &show); err != nil {
		return nil, &domain.FetchError{Kind: domain.KindParse, Op: op, Err: err}
	}
	if show == nil {
		return nil, &domain.FetchError{Kind: domain.KindParse, Op: op, Err: errors.New("empty response body")}
	}

	detail := MapShow(*show)
	if detail.ID == "" {
		detail.ID = id
	}
	return detail, nil
}

// get performs a GET and returns the body of a 2xx response. Every failure
// comes back as a *domain.FetchError.
func (c *Client) get(ctx context.Context, op, path string) ([]byte, error) {
	reqURL := c.baseURL.JoinPath(path)
	if strings.HasSuffix(path, "/") && !strings.HasSuffix(reqURL.Path, "/") {
		reqURL.Path += "/"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, &domain.FetchError{Kind: domain.KindNetwork, Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("podcast api request", "op", op, "url", reqURL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("podcast api request failed", "op", op, "error", err)
		return nil, &domain.FetchError{Kind: domain.KindNetwork, Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		c.logger.Warn("podcast api error status", "op", op, "status", resp.StatusCode)
		return nil, &domain.FetchError{Kind: domain.KindHTTP, Op: op, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &domain.FetchError{Kind: domain.KindNetwork, Op: op, Err: fmt.Errorf("read response: %w", err)}
	}
	return body, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
