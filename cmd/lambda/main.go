// Package main is the entry point for the typo-check bot Lambda function.
package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ccbot/typo-check-bot/internal/composer"
	"github.com/ccbot/typo-check-bot/internal/config"
	"github.com/ccbot/typo-check-bot/internal/handler"
	"github.com/ccbot/typo-check-bot/internal/proofread"
	"github.com/ccbot/typo-check-bot/internal/slack"
)

func main() {
	// Local development convenience; the Lambda runtime supplies the
	// real environment.
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	h := handler.New(
		cfg.SlackAppToken,
		proofread.NewClient(cfg.ProofreadAPIKey),
		composer.New(),
		slack.NewClient(cfg.SlackAppToken, cfg.SlackBotToken),
	)

	lambda.Start(func(ctx context.Context, event json.RawMessage) (interface{}, error) {
		return handleRequest(ctx, h, event)
	})
}

func handleRequest(ctx context.Context, h *handler.Handler, event json.RawMessage) (interface{}, error) {
	// Warmup detection (MUST be first - before any other processing)
	if warmup, ok := IsWarmupEvent(event); ok {
		return HandleWarmup(ctx, warmup)
	}

	log.WithField("event", string(event)).Info("received slack event")

	var env handler.Envelope
	if err := json.Unmarshal(event, &env); err != nil {
		return nil, err
	}

	// A returned error fails the invocation; Slack redelivers the event.
	reply, err := h.Handle(ctx, env)
	if err != nil {
		return nil, err
	}
	return reply, nil
}
