// Package llm defines the completion client interface for transcript summarization.
package llm

import "context"

// Client is a minimal interface for making completion API calls.
// Implementations provide the actual HTTP transport to a specific provider.
// The credential is supplied per call because it belongs to the requesting
// user, not to the process.
type Client interface {
	Complete(ctx context.Context, credential, system, user string) (string, error)
}
