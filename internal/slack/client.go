// Package slack posts messages to Slack channels via the Web API.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL is the Slack Web API host.
const DefaultBaseURL = "https://slack.com"

// botUsername is the display name the bot posts under.
const botUsername = "CC-Bot"

// Client posts to Slack on behalf of the bot user.
type Client struct {
	AppToken   string
	BotToken   string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Client against the production Slack API.
func NewClient(appToken, botToken string) *Client {
	return &Client{
		AppToken: appToken,
		BotToken: botToken,
		BaseURL:  DefaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type postMessageRequest struct {
	Token    string `json:"token"`
	Channel  string `json:"channel"`
	Text     string `json:"text"`
	Username string `json:"username"`
}

// PostMessage sends text to a channel via chat.postMessage. Delivery is
// fire-and-forget: the response body is not inspected, only transport
// failures and non-200 statuses surface as errors.
func (c *Client) PostMessage(ctx context.Context, channel, text string) error {
	body, err := json.Marshal(postMessageRequest{
		Token:    c.AppToken,
		Channel:  channel,
		Text:     text,
		Username: botUsername,
	})
	if err != nil {
		return fmt.Errorf("marshaling chat.postMessage body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/chat.postMessage", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating chat.postMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	req.Header.Set("Authorization", "Bearer "+c.BotToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling chat.postMessage: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("chat.postMessage returned status %d", resp.StatusCode)
	}
	return nil
}
