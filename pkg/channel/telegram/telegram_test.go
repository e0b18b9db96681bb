package telegram

import (
	"strings"
	"testing"

	"github.com/madhavdargar/ai-transcript-summary/pkg/summarizer"
	"github.com/madhavdargar/ai-transcript-summary/pkg/summary"
)

// ---------------------------------------------------------------------------
// parseCommand
// ---------------------------------------------------------------------------

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare command", input: "/help", want: "/help"},
		{name: "uppercase", input: "/HELP", want: "/help"},
		{name: "with arguments", input: "/start now please", want: "/start"},
		{name: "group chat suffix", input: "/help@summary_bot", want: "/help"},
		{name: "suffix and arguments", input: "/start@summary_bot extra", want: "/start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCommand(tt.input)
			if got != tt.want {
				t.Errorf("parseCommand(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// failureMessage
// ---------------------------------------------------------------------------

func TestFailureMessage_MissingServerCredential(t *testing.T) {
	got := failureMessage(&summary.ValidationError{Field: "credential"})
	if !strings.Contains(got, "OPENAI_API_KEY") {
		t.Errorf("failureMessage = %q; want hint about OPENAI_API_KEY", got)
	}
}

func TestFailureMessage_Busy(t *testing.T) {
	got := failureMessage(summarizer.ErrBusy)
	if !strings.Contains(got, "already in progress") {
		t.Errorf("failureMessage = %q; want busy notice", got)
	}
}

func TestFailureMessage_Generic(t *testing.T) {
	got := failureMessage(&summary.TransportError{StatusCode: 503})
	if !strings.Contains(got, "failed") {
		t.Errorf("failureMessage = %q; want generic failure notice", got)
	}
}
