package summary

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// ParseContent
// ---------------------------------------------------------------------------

func TestParseContent_Valid(t *testing.T) {
	content := `{"summary":["Discussed Q3 roadmap","Agreed on hiring plan"],"actionItems":["Alice drafts the RFC"]}`

	res, err := ParseContent(content)
	if err != nil {
		t.Fatalf("ParseContent returned error: %v", err)
	}
	if len(res.Summary) != 2 {
		t.Errorf("len(Summary) = %d; want 2", len(res.Summary))
	}
	if res.Summary[0] != "Discussed Q3 roadmap" {
		t.Errorf("Summary[0] = %q; want %q", res.Summary[0], "Discussed Q3 roadmap")
	}
	if len(res.ActionItems) != 1 {
		t.Errorf("len(ActionItems) = %d; want 1", len(res.ActionItems))
	}
	if res.ActionItems[0] != "Alice drafts the RFC" {
		t.Errorf("ActionItems[0] = %q; want %q", res.ActionItems[0], "Alice drafts the RFC")
	}
}

func TestParseContent_CodeFence(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "plain fence",
			content: "```\n{\"summary\":[\"a\"],\"actionItems\":[]}\n```",
		},
		{
			name:    "json fence",
			content: "```json\n{\"summary\":[\"a\"],\"actionItems\":[]}\n```",
		},
		{
			name:    "fence with surrounding whitespace",
			content: "  \n```json\n{\"summary\":[\"a\"],\"actionItems\":[]}\n```  \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseContent(tt.content)
			if err != nil {
				t.Fatalf("ParseContent returned error: %v", err)
			}
			if len(res.Summary) != 1 || res.Summary[0] != "a" {
				t.Errorf("Summary = %v; want [a]", res.Summary)
			}
		})
	}
}

func TestParseContent_MissingKeysNormalized(t *testing.T) {
	// A field absent from the payload still comes back as an empty,
	// non-nil slice so renderers never see nil.
	tests := []struct {
		name    string
		content string
	}{
		{name: "no action items key", content: `{"summary":["a"]}`},
		{name: "no summary key", content: `{"actionItems":["a"]}`},
		{name: "empty object", content: `{}`},
		{name: "explicit nulls", content: `{"summary":null,"actionItems":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseContent(tt.content)
			if err != nil {
				t.Fatalf("ParseContent returned error: %v", err)
			}
			if res.Summary == nil {
				t.Error("Summary is nil; want empty slice")
			}
			if res.ActionItems == nil {
				t.Error("ActionItems is nil; want empty slice")
			}
		})
	}
}

func TestParseContent_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "whitespace only", content: "   \n\t "},
		{name: "prose instead of JSON", content: "Sure! Here is your summary: the team met and..."},
		{name: "truncated JSON", content: `{"summary":["a"`},
		{name: "wrong types", content: `{"summary":"not an array","actionItems":[]}`},
		{name: "bare fence", content: "```json\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseContent(tt.content)
			if err == nil {
				t.Fatalf("ParseContent(%q) = %+v; want FormatError", tt.content, res)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Errorf("error is %T; want *FormatError", err)
			}
		})
	}
}

func TestParseContent_NoPartialResult(t *testing.T) {
	// One malformed field discards the whole result.
	res, err := ParseContent(`{"summary":["kept"],"actionItems":"broken"}`)
	if err == nil {
		t.Fatalf("ParseContent = %+v; want error", res)
	}
	if res != nil {
		t.Errorf("result = %+v; want nil on parse failure", res)
	}
}

// ---------------------------------------------------------------------------
// trimCodeFence
// ---------------------------------------------------------------------------

func TestTrimCodeFence_NoFence(t *testing.T) {
	input := `{"summary":[]}`
	if got := trimCodeFence(input); got != input {
		t.Errorf("trimCodeFence(%q) = %q; want unchanged", input, got)
	}
}

func TestTrimCodeFence_InteriorBackticksKept(t *testing.T) {
	input := "```json\n{\"summary\":[\"use `go test`\"]}\n```"
	got := trimCodeFence(input)
	if !strings.Contains(got, "`go test`") {
		t.Errorf("trimCodeFence removed interior backticks: %q", got)
	}
	if strings.HasPrefix(got, "```") || strings.HasSuffix(got, "```") {
		t.Errorf("trimCodeFence left outer fence: %q", got)
	}
}

// ---------------------------------------------------------------------------
// Error taxonomy
// ---------------------------------------------------------------------------

func TestValidationError_Message(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{field: "transcript", want: "transcript required"},
		{field: "credential", want: "credential required"},
	}

	for _, tt := range tests {
		err := &ValidationError{Field: tt.field}
		if err.Error() != tt.want {
			t.Errorf("ValidationError{%q}.Error() = %q; want %q", tt.field, err.Error(), tt.want)
		}
	}
}

func TestTransportError_Message(t *testing.T) {
	withStatus := &TransportError{StatusCode: 429}
	if !strings.Contains(withStatus.Error(), "429") {
		t.Errorf("Error() = %q; want status code in message", withStatus.Error())
	}

	cause := errors.New("connection refused")
	withErr := &TransportError{Err: cause}
	if !strings.Contains(withErr.Error(), "connection refused") {
		t.Errorf("Error() = %q; want underlying error in message", withErr.Error())
	}
	if !errors.Is(withErr, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestFormatError_Unwrap(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &FormatError{Err: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if !strings.Contains(err.Error(), "unexpected end of JSON input") {
		t.Errorf("Error() = %q; want underlying error in message", err.Error())
	}
}
