// Package channel defines the Channel interface for chat transports that
// accept pasted transcripts and reply with rendered summaries.
package channel

import "context"

// Channel represents a chat transport (Slack, Telegram, etc.).
type Channel interface {
	Name() string
	Run(ctx context.Context) error
}
