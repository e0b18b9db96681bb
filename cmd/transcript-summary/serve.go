package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	transcriptsummary "github.com/madhavdargar/ai-transcript-summary"
	"github.com/madhavdargar/ai-transcript-summary/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the transcript summary server",
	Long: `Start the HTTP server hosting the web UI and the summarize API.
Channels (Slack, Telegram) are enabled when their tokens are configured.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	app, err := transcriptsummary.NewBuilder().
		WithConfig(transcriptsummary.Config{
			ServerAddr:       cfg.ServerAddr,
			Model:            cfg.Model,
			OpenAIAPIKey:     cfg.OpenAIAPIKey,
			SlackBotToken:    cfg.SlackBotToken,
			SlackAppToken:    cfg.SlackAppToken,
			TelegramBotToken: cfg.TelegramBotToken,
		}).
		Build()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	return app.Start(ctx)
}
