package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/madhavdargar/ai-transcript-summary/internal/config"
)

// configKey describes a single configuration value.
type configKey struct {
	Key      string
	Desc     string
	Secret   bool
	Prefix   string // expected prefix for validation (e.g. "sk-"), empty = no check
}

// allConfigKeys lists every configurable value in display order.
var allConfigKeys = []configKey{
	{"OPENAI_API_KEY", "OpenAI API key (used by CLI and chat channels)", true, "sk-"},
	{"TRANSCRIPT_SUMMARY_ADDR", "Server listen address (default :8080)", false, ""},
	{"TRANSCRIPT_SUMMARY_MODEL", "Completion model (default gpt-4o)", false, ""},
	{"TELEGRAM_BOT_TOKEN", "Telegram bot token (from @BotFather)", true, ""},
	{"SLACK_BOT_TOKEN", "Slack Bot User OAuth Token (xoxb-...)", true, "xoxb-"},
	{"SLACK_APP_TOKEN", "Slack App-Level Token (xapp-...)", true, "xapp-"},
}

// ---------------------------------------------------------------------------
// Cobra commands
// ---------------------------------------------------------------------------

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage transcript-summary configuration",
	Long: `Manage transcript-summary configuration (API keys, tokens, etc.).

Configuration is stored in ~/.transcript-summary/config.env and can be
overridden by environment variables.

  transcript-summary config setup              Interactive setup wizard
  transcript-summary config set KEY VALUE      Set a single config value
  transcript-summary config show               Show current configuration
  transcript-summary config path               Print config file path`,
}

var configSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard",
	Long: `Guided setup that walks you through configuring transcript-summary.
Press Enter at any prompt to keep the current value.`,
	RunE: runConfigSetup,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a config value",
	Long: `Set a single configuration value. Example:
  transcript-summary config set OPENAI_API_KEY sk-xxxxxxxxxxxx`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display all configured values. Secrets are masked.",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(config.ConfigFilePath())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetupCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// ---------------------------------------------------------------------------
// Config file helpers
// ---------------------------------------------------------------------------

// loadConfigFile reads key=value pairs from the config file.
func loadConfigFile() (map[string]string, error) {
	values := make(map[string]string)

	f, err := os.Open(config.ConfigFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			values[parts[0]] = parts[1]
		}
	}
	return values, scanner.Err()
}

// saveConfigFile writes key=value pairs to the config file.
func saveConfigFile(values map[string]string) error {
	path := config.ConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	fmt.Fprintln(f, "# transcript-summary configuration")
	fmt.Fprintln(f, "# Managed by: transcript-summary config")
	fmt.Fprintln(f, "# Environment variables override these values.")
	fmt.Fprintln(f)

	// Write in a stable order: known keys first, then any extras.
	written := make(map[string]bool)
	for _, ck := range allConfigKeys {
		if v, ok := values[ck.Key]; ok && v != "" {
			fmt.Fprintf(f, "%s=%s\n", ck.Key, v)
			written[ck.Key] = true
		}
	}

	var extras []string
	for k := range values {
		if !written[k] && values[k] != "" {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	for _, k := range extras {
		fmt.Fprintf(f, "%s=%s\n", k, values[k])
	}

	return nil
}

// effectiveValue returns the current value for a key, preferring env vars over config file.
func effectiveValue(key string, fileValues map[string]string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fileValues[key]
}

// maskSecret masks a secret string, showing only the first 4 and last 4 characters.
func maskSecret(s string) string {
	if len(s) <= 12 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", len(s)-8) + s[len(s)-4:]
}

// ---------------------------------------------------------------------------
// Setup wizard
// ---------------------------------------------------------------------------

// wizard holds shared state for the interactive setup.
type wizard struct {
	reader     *bufio.Reader
	fileValues map[string]string
}

func newWizard(fileValues map[string]string) *wizard {
	return &wizard{
		reader:     bufio.NewReader(os.Stdin),
		fileValues: fileValues,
	}
}

// askYesNo asks a yes/no question and returns true for yes.
func (w *wizard) askYesNo(prompt string, defaultYes bool) (bool, error) {
	hint := "[Y/n]"
	if !defaultYes {
		hint = "[y/N]"
	}
	fmt.Printf("  %s %s ", prompt, hint)
	input, err := w.reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return defaultYes, nil
	}
	return input == "y" || input == "yes", nil
}

// askValue prompts for a single config value with prefix validation.
func (w *wizard) askValue(ck configKey) error {
	current := effectiveValue(ck.Key, w.fileValues)

	status := "\033[31m✗ not set\033[0m"
	if current != "" {
		if ck.Secret {
			status = fmt.Sprintf("\033[32m✓ set\033[0m (%s)", maskSecret(current))
		} else {
			status = fmt.Sprintf("\033[32m✓ set\033[0m (%s)", current)
		}
	}

	fmt.Printf("  %s  %s\n", ck.Key, status)

	for {
		fmt.Print("  Paste value (Enter to keep): ")
		input, err := w.reader.ReadString('\n')
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)

		// Enter = keep current.
		if input == "" {
			return nil
		}

		if ck.Prefix != "" && !strings.HasPrefix(input, ck.Prefix) {
			fmt.Printf("  \033[33m!\033[0m  That doesn't look right — expected prefix %q. Try again or press Enter to skip.\n", ck.Prefix)
			continue
		}

		w.fileValues[ck.Key] = input
		fmt.Printf("  \033[32m✓ saved\033[0m\n")
		return nil
	}
}

func runConfigSetup(cmd *cobra.Command, args []string) error {
	fileValues, err := loadConfigFile()
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	w := newWizard(fileValues)

	fmt.Println()
	fmt.Println("  \033[1mTranscript Summary Setup\033[0m")
	fmt.Println("  ────────────────────────")
	fmt.Println("  Press Enter at any prompt to keep the current value.")
	fmt.Println()

	// ── Step 1: OpenAI key ───────────────────────────────────────────────
	fmt.Println("  \033[1mStep 1 of 3 — OpenAI API Key\033[0m")
	fmt.Println("  Used by the CLI and chat channels. The web UI asks each")
	fmt.Println("  visitor for their own key, so this is optional for serve.")
	fmt.Println()
	if err := w.askValue(findKey("OPENAI_API_KEY")); err != nil {
		return err
	}
	fmt.Println()

	// ── Step 2: Telegram ─────────────────────────────────────────────────
	fmt.Println("  \033[1mStep 2 of 3 — Telegram Bot (optional)\033[0m")
	fmt.Println("  Summarize transcripts from your phone via Telegram.")
	fmt.Println()
	doTelegram, err := w.askYesNo("Set up Telegram?", false)
	if err != nil {
		return err
	}
	if doTelegram {
		fmt.Println()
		if err := w.askValue(findKey("TELEGRAM_BOT_TOKEN")); err != nil {
			return err
		}
	} else {
		fmt.Println("  Skipped. You can set this up later with: transcript-summary config setup")
	}
	fmt.Println()

	// ── Step 3: Slack ────────────────────────────────────────────────────
	fmt.Println("  \033[1mStep 3 of 3 — Slack Bot (optional)\033[0m")
	fmt.Println("  Let your team summarize transcripts by mentioning the bot.")
	fmt.Println("  Requires a Slack app with Socket Mode enabled.")
	fmt.Println()
	doSlack, err := w.askYesNo("Set up Slack?", false)
	if err != nil {
		return err
	}
	if doSlack {
		fmt.Println()
		if err := w.askValue(findKey("SLACK_BOT_TOKEN")); err != nil {
			return err
		}
		fmt.Println()
		if err := w.askValue(findKey("SLACK_APP_TOKEN")); err != nil {
			return err
		}
	} else {
		fmt.Println("  Skipped. You can set this up later with: transcript-summary config setup")
	}
	fmt.Println()

	if err := saveConfigFile(w.fileValues); err != nil {
		return err
	}

	fmt.Println("  \033[1mConfiguration Summary\033[0m")
	fmt.Println("  ────────────────────")
	printSummaryLine("OpenAI", effectiveValue("OPENAI_API_KEY", w.fileValues) != "")
	printSummaryLine("Telegram", effectiveValue("TELEGRAM_BOT_TOKEN", w.fileValues) != "")
	printSummaryLine("Slack", effectiveValue("SLACK_BOT_TOKEN", w.fileValues) != "" &&
		effectiveValue("SLACK_APP_TOKEN", w.fileValues) != "")
	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigFilePath())
	fmt.Println()

	fmt.Println("  \033[1mNext Steps\033[0m")
	fmt.Println("  ──────────")
	fmt.Println("  1. Start the server:          transcript-summary serve")
	fmt.Println("  2. Open the web UI:           http://localhost:8080")
	fmt.Println("  3. Or summarize from a file:  transcript-summary summarize notes.txt")
	fmt.Println()

	return nil
}

// findKey looks up a configKey by name.
func findKey(name string) configKey {
	for _, ck := range allConfigKeys {
		if ck.Key == name {
			return ck
		}
	}
	return configKey{Key: name}
}

// printSummaryLine prints a check or dash for a config section.
func printSummaryLine(label string, ok bool) {
	if ok {
		fmt.Printf("  \033[32m✓\033[0m %-12s configured\n", label)
	} else {
		fmt.Printf("  \033[90m-\033[0m %-12s not configured\n", label)
	}
}

// ---------------------------------------------------------------------------
// config set / config show
// ---------------------------------------------------------------------------

// runConfigSet sets a single key=value in the config file.
func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	fileValues, err := loadConfigFile()
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	fileValues[key] = value

	if err := saveConfigFile(fileValues); err != nil {
		return err
	}

	isSecret := false
	for _, ck := range allConfigKeys {
		if ck.Key == key && ck.Secret {
			isSecret = true
			break
		}
	}

	if isSecret {
		fmt.Printf("Set %s = %s\n", key, maskSecret(value))
	} else {
		fmt.Printf("Set %s = %s\n", key, value)
	}
	return nil
}

// runConfigShow displays the current effective configuration.
func runConfigShow(cmd *cobra.Command, args []string) error {
	fileValues, err := loadConfigFile()
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	fmt.Printf("Config file: %s\n\n", config.ConfigFilePath())

	for _, ck := range allConfigKeys {
		value := effectiveValue(ck.Key, fileValues)
		source := ""
		if os.Getenv(ck.Key) != "" {
			source = " (from env)"
		} else if fileValues[ck.Key] != "" {
			source = " (from config file)"
		}

		display := "(not set)"
		if value != "" {
			if ck.Secret {
				display = maskSecret(value)
			} else {
				display = value
			}
		}

		fmt.Printf("  %-25s %s%s\n", ck.Key, display, source)
	}

	return nil
}
