// Package transcriptsummary is the top-level entry point for the transcript
// summary service.
//
// Use the Builder to compose an application:
//
//	app, err := transcriptsummary.NewBuilder().Build()
//	app.Start(ctx)
//
// Or customize components:
//
//	app, err := transcriptsummary.NewBuilder().
//	    WithLLM(myClient).
//	    WithChannel(myChannel).
//	    Build()
package transcriptsummary

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/madhavdargar/ai-transcript-summary/internal/httpapi"
	"github.com/madhavdargar/ai-transcript-summary/pkg/channel"
	slackChannel "github.com/madhavdargar/ai-transcript-summary/pkg/channel/slack"
	telegramChannel "github.com/madhavdargar/ai-transcript-summary/pkg/channel/telegram"
	"github.com/madhavdargar/ai-transcript-summary/pkg/llm"
	llmOpenAI "github.com/madhavdargar/ai-transcript-summary/pkg/llm/openai"
	"github.com/madhavdargar/ai-transcript-summary/pkg/summarizer"
)

// Config holds top-level configuration for the application.
type Config struct {
	// ServerAddr is the address the HTTP server listens on (default ":8080").
	ServerAddr string

	// Model is the completion model identifier (default "gpt-4o").
	Model string

	// OpenAIAPIKey is the server-side credential used by the chat channels.
	// The web UI always sends the user's own credential instead.
	OpenAIAPIKey string

	// Slack integration (optional -- Socket Mode).
	SlackBotToken string
	SlackAppToken string

	// Telegram integration (optional -- long polling).
	TelegramBotToken string
}

// SlackEnabled returns true if Slack Socket Mode is configured.
func (c Config) SlackEnabled() bool {
	return c.SlackBotToken != "" && c.SlackAppToken != ""
}

// TelegramEnabled returns true if the Telegram bot is configured.
func (c Config) TelegramEnabled() bool {
	return c.TelegramBotToken != ""
}

// Builder constructs an App.
type Builder struct {
	config   Config
	llm      llm.Client
	channels []channel.Channel
}

// NewBuilder creates a new Builder with sensible defaults.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithConfig sets the application configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithLLM sets the completion client implementation.
func (b *Builder) WithLLM(client llm.Client) *Builder {
	b.llm = client
	return b
}

// WithChannel adds a chat channel (Slack, Telegram, etc.) to the application.
func (b *Builder) WithChannel(ch channel.Channel) *Builder {
	b.channels = append(b.channels, ch)
	return b
}

// Build creates the App. Missing components are filled with defaults, and
// configured chat channels are wired to the summarizer.
func (b *Builder) Build() (*App, error) {
	if b.config.ServerAddr == "" {
		b.config.ServerAddr = ":8080"
	}
	if b.llm == nil {
		b.llm = llmOpenAI.New(b.config.Model)
	}

	s := summarizer.New(b.llm)
	channels := b.channels

	if b.config.SlackEnabled() {
		channels = append(channels, slackChannel.NewBot(
			b.config.SlackBotToken, b.config.SlackAppToken, b.config.OpenAIAPIKey, s))
		log.Println("Slack channel enabled (Socket Mode)")
	}

	if b.config.TelegramEnabled() {
		bot, err := telegramChannel.NewBot(b.config.TelegramBotToken, b.config.OpenAIAPIKey, s)
		if err != nil {
			log.Printf("Warning: failed to initialize Telegram bot: %v", err)
		} else {
			channels = append(channels, bot)
			log.Println("Telegram channel enabled (long polling)")
		}
	}

	return &App{
		config:     b.config,
		summarizer: s,
		handler:    httpapi.New(s),
		channels:   channels,
	}, nil
}

// App is a running transcript summary application.
type App struct {
	config     Config
	summarizer *summarizer.Summarizer
	handler    *httpapi.Handler
	channels   []channel.Channel
}

// Summarizer returns the underlying dispatcher for direct access.
func (a *App) Summarizer() *summarizer.Summarizer { return a.summarizer }

// Start starts the HTTP server and all channels. Blocks until ctx is done.
func (a *App) Start(ctx context.Context) error {
	for _, ch := range a.channels {
		ch := ch
		go func() {
			if err := ch.Run(ctx); err != nil {
				log.Printf("%s channel error: %v", ch.Name(), err)
			}
		}()
	}

	srv := &http.Server{
		Addr:    a.config.ServerAddr,
		Handler: a.handler.Router(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Transcript summary server listening on %s", a.config.ServerAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
