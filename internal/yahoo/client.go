package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Yahoo blocks requests without a browser-like User-Agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Client fetches latest-trade prices from the public Yahoo Finance chart
// API. Requests are unauthenticated, sequential, and never retried; any
// failure is reported as absence, not as an error.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Yahoo Finance chart client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// chartResponse is the subset of the chart API payload this client reads.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				PreviousClose      float64 `json:"previousClose"`
			} `json:"meta"`
		} `json:"result"`
	} `json:"chart"`
}

// FetchPrice returns the most recent known price for a ticker, preferring
// the regular market price and falling back to the previous close. The
// second return value is false when no usable price could be obtained for
// any reason; the cause is logged here, at the boundary.
func (c *Client) FetchPrice(ctx context.Context, ticker string) (decimal.Decimal, bool) {
	price, err := c.fetchPrice(ctx, ticker)
	if err != nil {
		slog.Warn("price unavailable", "ticker", ticker, "error", err)
		return decimal.Zero, false
	}
	return price, true
}

func (c *Client) fetchPrice(ctx context.Context, ticker string) (decimal.Decimal, error) {
	reqURL := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", c.baseURL, url.PathEscape(ticker))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("executing request: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return decimal.Zero, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return decimal.Zero, fmt.Errorf("parsing chart response: %w", err)
	}

	if len(chart.Chart.Result) == 0 {
		return decimal.Zero, fmt.Errorf("no chart result for %s", ticker)
	}

	meta := chart.Chart.Result[0].Meta
	value := meta.RegularMarketPrice
	if value == 0 {
		value = meta.PreviousClose
	}
	if value == 0 {
		return decimal.Zero, fmt.Errorf("no usable price for %s", ticker)
	}

	return decimal.NewFromFloat(value), nil
}
