// Package summarizer implements the request dispatcher: it validates the
// user-supplied inputs, makes exactly one completion call per invocation, and
// parses the result into a summary.Result.
//
// This is not a pipeline -- one transcript in, one strictly-shaped JSON
// summary out, with a single suspension point at the network round trip.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/madhavdargar/ai-transcript-summary/pkg/llm"
	"github.com/madhavdargar/ai-transcript-summary/pkg/summary"
)

const systemPrompt = `You are a meeting assistant. You will be given a raw meeting transcript.
Respond with a JSON object of exactly this shape and nothing else:
{"summary": ["..."], "actionItems": ["..."]}
"summary" is a list of bullet-point strings covering the key points of the
meeting. "actionItems" is a list of concrete follow-up tasks, each naming an
owner when the transcript makes one clear. Do not add any other keys, prose,
or markdown.`

// ErrBusy is returned when a dispatch is attempted while another is still in
// flight. Overlapping requests are rejected, never queued.
var ErrBusy = errors.New("summarization already in progress")

// Summarizer dispatches transcripts to a completion client.
type Summarizer struct {
	llm        llm.Client
	processing atomic.Bool
}

// New creates a Summarizer backed by the given completion client.
func New(client llm.Client) *Summarizer {
	return &Summarizer{llm: client}
}

// Processing reports whether a dispatch is currently in flight. It is true
// strictly between dispatch initiation and the settling (success or failure)
// of that dispatch.
func (s *Summarizer) Processing() bool {
	return s.processing.Load()
}

// Summarize validates the inputs, makes one completion call, and parses the
// returned content into a Result.
//
// Failure modes: a missing input yields a *summary.ValidationError before any
// network activity; a failed round trip yields a *summary.TransportError; and
// content that doesn't parse into the expected shape yields a
// *summary.FormatError. No retries, no partial results.
func (s *Summarizer) Summarize(ctx context.Context, credential, transcript string) (*summary.Result, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return nil, &summary.ValidationError{Field: "transcript"}
	}
	if strings.TrimSpace(credential) == "" {
		return nil, &summary.ValidationError{Field: "credential"}
	}

	if !s.processing.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer s.processing.Store(false)

	id := uuid.New().String()[:8]
	log.Printf("Dispatching summarization %s (%d bytes of transcript)", id, len(transcript))

	// The credential is forwarded verbatim as the bearer token; it is only
	// trimmed for the presence check above.
	content, err := s.llm.Complete(ctx, credential, systemPrompt, userPrompt(transcript))
	if err != nil {
		log.Printf("Summarization %s failed: %v", id, err)
		return nil, err
	}

	res, err := summary.ParseContent(content)
	if err != nil {
		log.Printf("Summarization %s returned unusable content: %v", id, err)
		return nil, err
	}

	log.Printf("Summarization %s done (%d bullets, %d action items)", id, len(res.Summary), len(res.ActionItems))
	return res, nil
}

// userPrompt embeds the literal transcript into the fixed instruction.
func userPrompt(transcript string) string {
	return fmt.Sprintf("Summarize this meeting transcript in 8-10 bullet points and extract all action items.\n\nTranscript:\n%s", transcript)
}
