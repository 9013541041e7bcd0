package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/byxorna/standings/pkg/config"
	nethttp "github.com/byxorna/standings/pkg/net/http"
	"github.com/byxorna/standings/pkg/types/v1"
	"github.com/bytedance/sonic"
)

const (
	TeamsPath = "/teams"

	// responses larger than this are refused rather than decoded
	maxBodyBytes = 8 << 20
)

var (
	ErrUnexpectedStatus = fmt.Errorf("unexpected status")
)

// Client fetches the league table from the record source.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

// NewFromConfig builds a Client for the configured environment.
func NewFromConfig(cfg *config.Config) (*Client, error) {
	base, err := cfg.BaseURL()
	if err != nil {
		return nil, err
	}
	return New(base, nethttp.NewClient(cfg.Timeout, cfg.UserAgent)), nil
}

func (c *Client) URL() string { return c.baseURL + TeamsPath }

// Teams issues a single GET for the full table. There is no retry.
func (c *Client) Teams(ctx context.Context) ([]v1.Team, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", c.URL(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.URL(), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d after %s", ErrUnexpectedStatus, c.URL(), resp.StatusCode, time.Since(start).Round(time.Millisecond))
	}

	teams := []v1.Team{}
	if err := sonic.Unmarshal(body, &teams); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}
	return teams, nil
}
