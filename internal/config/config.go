// Package config loads the process-wide configuration from the environment.
package config

import (
	"fmt"
	"os"
)

// Environment variable names. Fixed by the Lambda deployment; do not
// rename without updating the function configuration.
const (
	EnvSlackAppToken   = "SLACK_APP_AUTH_TOKEN"
	EnvSlackBotToken   = "SLACK_BOT_USER_ACCESS_TOKEN"
	EnvProofreadAPIKey = "PROOF_READING_API_KEY"
)

// Config holds the secrets the bot needs. It is built once at startup
// and never mutated afterwards.
type Config struct {
	// SlackAppToken is the shared secret Slack includes in every event
	// envelope. Inbound events carrying a different token are rejected.
	SlackAppToken string

	// SlackBotToken authorizes chat.postMessage calls.
	SlackBotToken string

	// ProofreadAPIKey authorizes calls to the A3RT proofreading API.
	ProofreadAPIKey string
}

// FromEnv reads the configuration from environment variables. All three
// variables are required; the error names the first one missing.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	for _, v := range []struct {
		name string
		dst  *string
	}{
		{EnvSlackAppToken, &cfg.SlackAppToken},
		{EnvSlackBotToken, &cfg.SlackBotToken},
		{EnvProofreadAPIKey, &cfg.ProofreadAPIKey},
	} {
		val := os.Getenv(v.name)
		if val == "" {
			return nil, fmt.Errorf("%s is required", v.name)
		}
		*v.dst = val
	}
	return cfg, nil
}
