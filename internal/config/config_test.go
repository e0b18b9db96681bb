package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/madhavdargar/ai-transcript-summary/internal/config"
)

// clearConfigEnv unsets all environment variables that Load reads so each
// sub-test starts from a clean slate.  It also points HOME at a temp dir so a
// real ~/.transcript-summary/config.env never leaks into the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{
		"TRANSCRIPT_SUMMARY_ADDR",
		"TRANSCRIPT_SUMMARY_MODEL",
		"OPENAI_API_KEY",
		"SLACK_BOT_TOKEN",
		"SLACK_APP_TOKEN",
		"TELEGRAM_BOT_TOKEN",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// writeConfigFile writes a config.env under the current fake HOME.
func writeConfigFile(t *testing.T, contents string) {
	t.Helper()
	dir := filepath.Join(os.Getenv("HOME"), ".transcript-summary")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.env"), []byte(contents), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

func TestLoad_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg := config.Load()

	if cfg.ServerAddr != ":8080" {
		t.Errorf("ServerAddr = %q, want %q", cfg.ServerAddr, ":8080")
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("Model = %q, want %q", cfg.Model, "gpt-4o")
	}
	if cfg.OpenAIAPIKey != "" {
		t.Errorf("OpenAIAPIKey = %q, want empty", cfg.OpenAIAPIKey)
	}
	if cfg.SlackBotToken != "" {
		t.Errorf("SlackBotToken = %q, want empty", cfg.SlackBotToken)
	}
	if cfg.SlackAppToken != "" {
		t.Errorf("SlackAppToken = %q, want empty", cfg.SlackAppToken)
	}
	if cfg.TelegramBotToken != "" {
		t.Errorf("TelegramBotToken = %q, want empty", cfg.TelegramBotToken)
	}
}

func TestLoad_CustomEnvVars(t *testing.T) {
	clearConfigEnv(t)

	t.Setenv("TRANSCRIPT_SUMMARY_ADDR", ":9090")
	t.Setenv("TRANSCRIPT_SUMMARY_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_API_KEY", "sk-openai-test")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_APP_TOKEN", "xapp-test")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123456:ABC")

	cfg := config.Load()

	checks := []struct {
		field string
		got   string
		want  string
	}{
		{"ServerAddr", cfg.ServerAddr, ":9090"},
		{"Model", cfg.Model, "gpt-4o-mini"},
		{"OpenAIAPIKey", cfg.OpenAIAPIKey, "sk-openai-test"},
		{"SlackBotToken", cfg.SlackBotToken, "xoxb-test"},
		{"SlackAppToken", cfg.SlackAppToken, "xapp-test"},
		{"TelegramBotToken", cfg.TelegramBotToken, "123456:ABC"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	clearConfigEnv(t)

	writeConfigFile(t, `# comment line
TRANSCRIPT_SUMMARY_MODEL=gpt-4o-mini

OPENAI_API_KEY=sk-from-file
`)

	cfg := config.Load()

	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want value from config file", cfg.Model)
	}
	if cfg.OpenAIAPIKey != "sk-from-file" {
		t.Errorf("OpenAIAPIKey = %q, want value from config file", cfg.OpenAIAPIKey)
	}
	// Keys the file doesn't set keep their defaults.
	if cfg.ServerAddr != ":8080" {
		t.Errorf("ServerAddr = %q, want default", cfg.ServerAddr)
	}
}

func TestLoad_EnvOverridesConfigFile(t *testing.T) {
	clearConfigEnv(t)

	writeConfigFile(t, "OPENAI_API_KEY=sk-from-file\n")
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	cfg := config.Load()

	if cfg.OpenAIAPIKey != "sk-from-env" {
		t.Errorf("OpenAIAPIKey = %q, want env value to win", cfg.OpenAIAPIKey)
	}
}

// ---------------------------------------------------------------------------
// SlackEnabled
// ---------------------------------------------------------------------------

func TestSlackEnabled_True(t *testing.T) {
	cfg := &config.Config{
		SlackBotToken: "xoxb-test",
		SlackAppToken: "xapp-test",
	}
	if !cfg.SlackEnabled() {
		t.Error("SlackEnabled() = false, want true when both tokens are set")
	}
}

func TestSlackEnabled_MissingBotToken(t *testing.T) {
	cfg := &config.Config{
		SlackAppToken: "xapp-test",
	}
	if cfg.SlackEnabled() {
		t.Error("SlackEnabled() = true, want false when SlackBotToken is empty")
	}
}

func TestSlackEnabled_MissingAppToken(t *testing.T) {
	cfg := &config.Config{
		SlackBotToken: "xoxb-test",
	}
	if cfg.SlackEnabled() {
		t.Error("SlackEnabled() = true, want false when SlackAppToken is empty")
	}
}

// ---------------------------------------------------------------------------
// TelegramEnabled
// ---------------------------------------------------------------------------

func TestTelegramEnabled_True(t *testing.T) {
	cfg := &config.Config{
		TelegramBotToken: "123456:ABC",
	}
	if !cfg.TelegramEnabled() {
		t.Error("TelegramEnabled() = false, want true when TelegramBotToken is set")
	}
}

func TestTelegramEnabled_False(t *testing.T) {
	cfg := &config.Config{}
	if cfg.TelegramEnabled() {
		t.Error("TelegramEnabled() = true, want false when TelegramBotToken is empty")
	}
}
