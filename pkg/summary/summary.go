// Package summary defines the summarization result type, the parsing of the
// model's double-encoded JSON output, and the error taxonomy shared by every
// surface (HTTP API, CLI, chat channels).
package summary

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Result is the outcome of a single summarization: an ordered list of summary
// bullets and an ordered list of action items. Both slices are always
// non-nil; a parse failure discards the whole result rather than producing a
// partial one.
type Result struct {
	Summary     []string `json:"summary"`
	ActionItems []string `json:"actionItems"`
}

// ParseContent parses the completion message content into a Result.
//
// The completion endpoint returns the result as a JSON-encoded string inside
// the response message content (JSON inside JSON). Chat models routinely wrap
// that payload in a markdown code fence, so the fence is trimmed before the
// single parse attempt. Anything that doesn't unmarshal into the two-array
// shape is a *FormatError.
func ParseContent(content string) (*Result, error) {
	text := trimCodeFence(strings.TrimSpace(content))
	if text == "" {
		return nil, &FormatError{Err: fmt.Errorf("empty completion content")}
	}

	var res Result
	if err := json.Unmarshal([]byte(text), &res); err != nil {
		return nil, &FormatError{Err: err}
	}

	// The renderer contract: both fields present, possibly empty, never nil.
	if res.Summary == nil {
		res.Summary = []string{}
	}
	if res.ActionItems == nil {
		res.ActionItems = []string{}
	}
	return &res, nil
}

// trimCodeFence strips a surrounding markdown code fence (``` or ```json).
func trimCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ---------------------------------------------------------------------------
// Error taxonomy
// ---------------------------------------------------------------------------

// ValidationError reports a missing required input, caught before any
// network activity.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " required"
}

// TransportError reports a failed round trip to the completion endpoint:
// either the request never completed or the endpoint answered with a
// non-success status.
type TransportError struct {
	StatusCode int   // 0 if the request itself failed
	Err        error // underlying error, if any
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("completion endpoint returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("completion request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// FormatError reports completion content that does not parse into the
// expected two-array shape.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unexpected completion content: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
