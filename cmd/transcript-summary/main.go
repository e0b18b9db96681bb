// Transcript Summary
//
// Paste a meeting transcript, get summary bullets and action items back.
// The heavy lifting is a single completion API call; this program is the
// plumbing around it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "transcript-summary",
	Short: "Transcript Summary - meeting transcript summarizer",
	Long: `Transcript Summary turns a raw meeting transcript into summary bullets
and action items via a completion API call.

  transcript-summary config setup             Set up API keys (first time)
  transcript-summary serve                    Start the server and web UI
  transcript-summary summarize notes.txt      Summarize a transcript file
  cat notes.txt | transcript-summary summarize    Summarize from stdin`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server",
		envOr("TRANSCRIPT_SUMMARY_SERVER", "http://localhost:8080"),
		"Transcript summary server URL")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
