// Package handler decides how to respond to a Slack Events API callback.
package handler

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ccbot/typo-check-bot/internal/proofread"
)

// Replies returned to the Events API. Slack treats any 200 response as
// acknowledged; failing the invocation instead makes Slack redeliver.
const (
	ReplyOK        = "OK"
	ReplyAuthError = "AUTH_ERROR"
)

// Envelope is the top-level payload Slack delivers for every event.
type Envelope struct {
	Challenge string       `json:"challenge,omitempty"`
	Token     string       `json:"token,omitempty"`
	Event     *EventDetail `json:"event,omitempty"`
}

// EventDetail describes the user action behind the callback.
type EventDetail struct {
	Type    string `json:"type"`
	Subtype string `json:"subtype,omitempty"`
	Text    string `json:"text"`
	Channel string `json:"channel"`
}

// IsBot reports whether the event was produced by a bot. Reacting to bot
// messages would make the bot answer its own corrections.
func (d *EventDetail) IsBot() bool {
	return d.Subtype == "bot_message"
}

// IsMessage reports whether the event is a plain message post.
func (d *EventDetail) IsMessage() bool {
	return d.Type == "message"
}

// SentenceChecker proofreads a sentence.
type SentenceChecker interface {
	Check(ctx context.Context, sentence string) (*proofread.Response, error)
}

// MessageComposer derives the message to post from a proofreading
// response, or reports that there is nothing to post.
type MessageComposer interface {
	Compose(resp *proofread.Response) (string, bool)
}

// MessagePoster delivers a message to a Slack channel.
type MessagePoster interface {
	PostMessage(ctx context.Context, channel, text string) error
}

// Handler processes one Slack event per invocation. It holds no mutable
// state; concurrent invocations are independent.
type Handler struct {
	appToken string
	checker  SentenceChecker
	composer MessageComposer
	poster   MessagePoster
}

// New creates a Handler. appToken is the shared secret expected on every
// inbound envelope.
func New(appToken string, checker SentenceChecker, composer MessageComposer, poster MessagePoster) *Handler {
	return &Handler{
		appToken: appToken,
		checker:  checker,
		composer: composer,
		poster:   poster,
	}
}

// Handle runs the decision tree for one envelope, first match wins.
// Expected conditions come back as reply strings; errors from the
// outbound calls propagate so the invocation fails and Slack redelivers.
func (h *Handler) Handle(ctx context.Context, env Envelope) (string, error) {
	// Slack sends a challenge when the endpoint is registered for the
	// Events API; echoing it back proves we own the URL.
	if env.Challenge != "" {
		return env.Challenge, nil
	}

	// The shared secret rejects calls that did not come from our Slack
	// app. Ideally an API gateway would check this before we run.
	if env.Token != h.appToken {
		return ReplyAuthError, nil
	}

	// React only to human message posts. Slack still needs an
	// acknowledgment for everything else or it redelivers.
	detail := env.Event
	if detail == nil || detail.IsBot() || !detail.IsMessage() {
		return ReplyOK, nil
	}

	resp, err := h.checker.Check(ctx, detail.Text)
	if err != nil {
		return "", fmt.Errorf("checking sentence: %w", err)
	}
	if raw, err := json.Marshal(resp); err == nil {
		log.WithField("response", string(raw)).Info("proofreading result")
	}

	msg, ok := h.composer.Compose(resp)
	if !ok {
		return ReplyOK, nil
	}
	log.WithField("message", msg).Info("posting correction")

	if err := h.poster.PostMessage(ctx, detail.Channel, msg); err != nil {
		return "", fmt.Errorf("posting to %s: %w", detail.Channel, err)
	}

	return ReplyOK, nil
}
