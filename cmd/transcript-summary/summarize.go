package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/madhavdargar/ai-transcript-summary/internal/config"
	"github.com/madhavdargar/ai-transcript-summary/pkg/render"
	"github.com/madhavdargar/ai-transcript-summary/pkg/summary"
)

var summarizeCredential string

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Summarize a transcript via a running server",
	Long: `Read a meeting transcript from a file (or stdin when no file is given),
send it to a running transcript-summary server, and print the result.

The credential comes from --credential or OPENAI_API_KEY.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeCredential, "credential", "",
		"Completion API credential (default: OPENAI_API_KEY)")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	transcript, err := readTranscript(args)
	if err != nil {
		return err
	}

	credential := summarizeCredential
	if credential == "" {
		// The config file can hold the key too.
		credential = config.Load().OpenAIAPIKey
	}

	res, err := requestSummary(credential, transcript)
	if err != nil {
		return err
	}

	fmt.Print(render.Text(res))
	return nil
}

// readTranscript reads the transcript from the named file, or stdin.
func readTranscript(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading transcript: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// requestSummary posts the transcript to the server's summarize endpoint.
func requestSummary(credential, transcript string) (*summary.Result, error) {
	body, err := json.Marshal(map[string]string{
		"credential": credential,
		"transcript": transcript,
	})
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: 3 * time.Minute}
	resp, err := client.Post(serverURL+"/api/summarize", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("is the server running? (%w)", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&errResp) == nil && errResp.Error != "" {
			return nil, fmt.Errorf("server: %s", errResp.Error)
		}
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	var res summary.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &res, nil
}
