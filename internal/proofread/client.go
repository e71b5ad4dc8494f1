// Package proofread calls the Recruit A3RT proofreading API to find
// likely typos in a sentence.
package proofread

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the typo-check endpoint of the A3RT proofreading API.
const DefaultBaseURL = "https://api.a3rt.recruit-tech.co.jp/proofreading/v1/typo"

// StatusIssuesFound is the response status meaning the sentence was
// checked and at least one issue was flagged.
const StatusIssuesFound = 1

// Response is the proofreading result for one sentence.
type Response struct {
	Status int     `json:"status"`
	Alerts []Alert `json:"alerts,omitempty"`
}

// Alert is one flagged span in a checked sentence.
type Alert struct {
	// AlertCode 0 marks a low-severity "a little unnatural" note.
	AlertCode       int     `json:"alertCode"`
	RankingScore    float64 `json:"rankingScore"`
	CheckedSentence string  `json:"checkedSentence"`
}

// Client calls the proofreading API.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Client against the production endpoint.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Check proofreads a sentence. The sentence goes into the query string
// URL-encoded, so Japanese text survives the round trip.
func (c *Client) Check(ctx context.Context, sentence string) (*Response, error) {
	params := url.Values{}
	params.Set("apikey", c.APIKey)
	params.Set("sentence", sentence)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating proofread request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling proofread API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("proofread API returned status %d", resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding proofread response: %w", err)
	}
	return &out, nil
}
