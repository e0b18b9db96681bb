// Package render formats a summary.Result for text surfaces (terminal, Slack,
// Telegram). It is pure presentation with no state of its own.
package render

import (
	"fmt"
	"strings"

	"github.com/madhavdargar/ai-transcript-summary/pkg/summary"
)

// NoActionItemsNotice is shown when a result contains no action items.
const NoActionItemsNotice = "No action items."

// Text renders a result as plain text: a bulleted summary section followed by
// a numbered action-item section with a count badge.
func Text(res *summary.Result) string {
	var b strings.Builder

	b.WriteString("Summary\n")
	for _, line := range res.Summary {
		fmt.Fprintf(&b, "  • %s\n", line)
	}

	fmt.Fprintf(&b, "\nAction items [%d]\n", len(res.ActionItems))
	if len(res.ActionItems) == 0 {
		fmt.Fprintf(&b, "  %s\n", NoActionItemsNotice)
		return b.String()
	}
	for i, item := range res.ActionItems {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, item)
	}
	return b.String()
}

// Markdown renders a result in the markdown dialect common to chat surfaces:
// bold section headers, dash bullets.
func Markdown(res *summary.Result) string {
	var b strings.Builder

	b.WriteString("*Summary*\n")
	for _, line := range res.Summary {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	fmt.Fprintf(&b, "\n*Action items [%d]*\n", len(res.ActionItems))
	if len(res.ActionItems) == 0 {
		b.WriteString(NoActionItemsNotice + "\n")
		return b.String()
	}
	for i, item := range res.ActionItems {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return b.String()
}
