// Package opap retrieves completed draw results from the OPAP draws API and
// provides the built-in fallback sample used when the API is unreachable.
package opap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lottoscope/lottoscope/internal/models"
)

// Client provides access to the OPAP draws API
type Client struct {
	apiBaseURL string
	httpClient *http.Client
}

// drawsResponse represents the API response envelope
type drawsResponse struct {
	Content []apiDraw `json:"content"`
}

// apiDraw represents one draw object from the API
type apiDraw struct {
	DrawID         int `json:"drawId"`
	WinningNumbers struct {
		List []int `json:"list"`
	} `json:"winningNumbers"`
	Bonus    []int  `json:"bonus"`
	DrawTime string `json:"drawTime"`
}

// drawTimeLayouts are the timestamp formats the API has been observed to use.
// The timestamp is display-only, so an unparseable value degrades to zero time.
var drawTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// NewClient creates a new OPAP client
func NewClient(apiBaseURL string, timeout time.Duration) *Client {
	return &Client{
		apiBaseURL: apiBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchRecentDraws retrieves up to count most recent completed draws. It makes
// a single attempt with no retry: any transport error, timeout, non-200 status,
// or invalid payload returns an error and discards the whole batch, leaving the
// caller to fall back to the sample data.
func (c *Client) FetchRecentDraws(ctx context.Context, count int) ([]models.DrawRecord, error) {
	url := fmt.Sprintf("%s/draws?limit=%d&status=DRAW", c.apiBaseURL, count)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch draws: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var response drawsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode draws: %w", err)
	}

	records := make([]models.DrawRecord, 0, len(response.Content))
	for _, d := range response.Content {
		record := models.DrawRecord{
			DrawID:   d.DrawID,
			Numbers:  d.WinningNumbers.List,
			Bonus:    d.Bonus,
			DrawTime: parseDrawTime(d.DrawTime),
		}
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("invalid draw %d: %w", d.DrawID, err)
		}
		records = append(records, record)
	}

	return records, nil
}

func parseDrawTime(s string) time.Time {
	for _, layout := range drawTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
