// Package config provides configuration management for the transcript
// summary service.
package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all configuration for the server and its optional channels.
type Config struct {
	// ServerAddr is the address the HTTP server listens on (e.g. ":8080").
	ServerAddr string

	// Model is the completion model identifier sent with every request.
	Model string

	// OpenAIAPIKey is the server-side completion credential. It is used by
	// the chat channels and the CLI; the web UI always sends the user's own
	// credential instead.
	OpenAIAPIKey string

	// Slack integration (optional -- Socket Mode).
	// SlackBotToken is the Bot User OAuth Token (xoxb-...).
	SlackBotToken string
	// SlackAppToken is the App-Level Token (xapp-...) required for Socket Mode.
	SlackAppToken string

	// Telegram integration (optional -- long polling, no public URL needed).
	// TelegramBotToken is the token from @BotFather.
	TelegramBotToken string
}

// Load creates a Config from the config file and environment variables.
// Values are resolved in order: environment variable > config file > default.
func Load() *Config {
	// Load config file (~/.transcript-summary/config.env) into the
	// environment. Existing env vars take precedence.
	loadConfigFile()

	return &Config{
		ServerAddr:       envOr("TRANSCRIPT_SUMMARY_ADDR", ":8080"),
		Model:            envOr("TRANSCRIPT_SUMMARY_MODEL", "gpt-4o"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		SlackBotToken:    os.Getenv("SLACK_BOT_TOKEN"),
		SlackAppToken:    os.Getenv("SLACK_APP_TOKEN"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}
}

// SlackEnabled returns true if Slack Socket Mode is configured.
func (c *Config) SlackEnabled() bool {
	return c.SlackBotToken != "" && c.SlackAppToken != ""
}

// TelegramEnabled returns true if the Telegram bot is configured.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != ""
}

// loadConfigFile reads ~/.transcript-summary/config.env and sets any values
// that are not already present in the environment, so env vars always win.
func loadConfigFile() {
	f, err := os.Open(ConfigFilePath())
	if err != nil {
		return // file doesn't exist or can't be read — that's fine
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key, value := parts[0], parts[1]
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}

// ConfigFilePath returns ~/.transcript-summary/config.env.
func ConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".transcript-summary", "config.env")
	}
	return filepath.Join(home, ".transcript-summary", "config.env")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
