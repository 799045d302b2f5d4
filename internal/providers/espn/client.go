package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/cfb-meta-service/internal/providers"
	"github.com/preston-bernstein/cfb-meta-service/internal/scoreboard"
	"github.com/preston-bernstein/cfb-meta-service/internal/timeutil"
)

// Config controls how the ESPN client reaches the scoreboard API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
}

// Client fetches the college football scoreboard from ESPN's site API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  ua,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchScoreboard retrieves the scoreboard for date, or ESPN's notion of today when date is empty.
func (c *Client) FetchScoreboard(ctx context.Context, date string) (scoreboard.Document, error) {
	req, err := c.buildRequest(ctx, date)
	if err != nil {
		return nil, &providers.AcquisitionError{Source: providerName, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.AcquisitionError{Source: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.AcquisitionError{Source: providerName, Err: &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
		}}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &providers.AcquisitionError{
			Source: providerName,
			Err:    fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	doc, err := scoreboard.Decode(resp.Body)
	if err != nil {
		return nil, &providers.AcquisitionError{Source: providerName, Err: err}
	}
	return doc, nil
}

func (c *Client) buildRequest(ctx context.Context, date string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/scoreboard", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("limit", strconv.Itoa(defaultLimit))
	if date != "" {
		day, err := timeutil.ParseDate(date)
		if err != nil {
			return nil, err
		}
		q.Set("dates", timeutil.FormatFeedDate(day))
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	return req, nil
}
