package fantasypros

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/vonadraft/draft-assistant/internal/domain/player"
	"github.com/vonadraft/draft-assistant/internal/platform/logging"
	"github.com/vonadraft/draft-assistant/internal/usecase"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL    = "https://api.fantasypros.com/public/v2/json/nfl"
	defaultTimeout    = 20 * time.Second
	maxResponseBytes  = 6 << 20
	defaultRatePerSec = 5
)

var errFantasyProsTransient = crerr.New("fantasypros transient failure")

type ClientConfig struct {
	HTTPClient    *http.Client
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	MaxRetries    int
	RatePerSecond float64
	Logger        *logging.Logger
}

// Client pulls season-long projections and consensus ADP from the FantasyPros
// public API. Every call is rate limited client-side; the vendor throttles
// aggressively.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	maxRetries int
	limiter    *rate.Limiter
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	perSecond := cfg.RatePerSecond
	if perSecond <= 0 {
		perSecond = defaultRatePerSec
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		maxRetries: maxInt(cfg.MaxRetries, 0),
		limiter:    rate.NewLimiter(rate.Limit(perSecond), 1),
		logger:     logger,
	}
}

type projectionsEnvelope struct {
	Players []struct {
		Name       string  `json:"name"`
		TeamID     string  `json:"team_id"`
		Position   string  `json:"position_id"`
		ByeWeek    string  `json:"bye_week"`
		FantasyPts float64 `json:"fpts"`
	} `json:"players"`
}

type adpEnvelope struct {
	Players []struct {
		Name    string  `json:"name"`
		RankAve float64 `json:"rank_ave"`
	} `json:"players"`
}

func (c *Client) FetchProjections(ctx context.Context, position player.Position) ([]usecase.FeedPlayer, error) {
	query := url.Values{}
	query.Set("position", string(position))
	query.Set("week", "draft")
	query.Set("scoring", "PPR")

	var envelope projectionsEnvelope
	if err := c.doJSON(ctx, "/projections", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch %s projections: %w", position, err)
	}

	out := make([]usecase.FeedPlayer, 0, len(envelope.Players))
	for _, row := range envelope.Players {
		fp := usecase.FeedPlayer{
			Name:       strings.TrimSpace(row.Name),
			Team:       strings.TrimSpace(row.TeamID),
			Position:   position,
			Projection: row.FantasyPts,
		}
		if week, err := strconv.Atoi(strings.TrimSpace(row.ByeWeek)); err == nil && week > 0 {
			fp.ByeWeek = &week
		}
		out = append(out, fp)
	}

	return out, nil
}

func (c *Client) FetchADP(ctx context.Context) (map[string]float64, error) {
	query := url.Values{}
	query.Set("position", "ALL")
	query.Set("scoring", "PPR")

	var envelope adpEnvelope
	if err := c.doJSON(ctx, "/adp", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch adp: %w", err)
	}

	out := make(map[string]float64, len(envelope.Players))
	for _, row := range envelope.Players {
		name := strings.TrimSpace(row.Name)
		if name == "" || row.RankAve <= 0 {
			continue
		}
		out[name] = row.RankAve
	}

	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query url.Values, target any) error {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err := c.executeRequest(ctx, fullURL)
	if err != nil {
		if crerr.Is(err, errFantasyProsTransient) {
			return fmt.Errorf("%w: projections feed is temporarily unavailable: %v", usecase.ErrDependencyUnavailable, err)
		}
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode feed payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("x-api-key", c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Wrapf(errFantasyProsTransient, "send request: %v", err)
		} else {
			raw, readErr := readBody(resp.Body)
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Wrapf(errFantasyProsTransient, "read response body: %v", readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Wrapf(errFantasyProsTransient, "feed status=%d", resp.StatusCode)
			default:
				return nil, fmt.Errorf("feed status=%d", resp.StatusCode)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "fantasypros request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func readBody(body io.Reader) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(body, maxResponseBytes)); err != nil {
		return nil, err
	}

	out := make([]byte, len(buf.B))
	copy(out, buf.B)
	return out, nil
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
