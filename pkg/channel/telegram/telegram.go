// Package telegram provides a Telegram bot channel using long polling. Send
// the bot a meeting transcript as a plain message and it replies with the
// summary.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/madhavdargar/ai-transcript-summary/pkg/render"
	"github.com/madhavdargar/ai-transcript-summary/pkg/summarizer"
	"github.com/madhavdargar/ai-transcript-summary/pkg/summary"
)

// Dispatcher is the summarization entry point the bot calls.
type Dispatcher interface {
	Summarize(ctx context.Context, credential, transcript string) (*summary.Result, error)
}

// Bot is the Telegram bot.
type Bot struct {
	api        *tgbotapi.BotAPI
	dispatcher Dispatcher
	credential string
}

// NewBot creates a new Telegram bot. The credential is the server-side
// completion API key applied to every request from this channel.
func NewBot(token, credential string, d Dispatcher) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating Telegram bot: %w", err)
	}

	log.Printf("Telegram bot authorized as @%s", api.Self.UserName)

	return &Bot{
		api:        api,
		dispatcher: d,
		credential: credential,
	}, nil
}

// Name returns the channel name.
func (b *Bot) Name() string { return "telegram" }

// Run starts the long-polling loop. Blocks until ctx is canceled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)

	log.Println("Telegram bot listening for messages...")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message != nil {
				go b.handleMessage(ctx, update.Message)
			}
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	chatID := msg.Chat.ID

	if strings.HasPrefix(text, "/") {
		b.handleCommand(chatID, msg.MessageID, text)
		return
	}

	b.sendChatAction(chatID)

	res, err := b.dispatcher.Summarize(ctx, b.credential, text)
	if err != nil {
		b.sendReply(chatID, msg.MessageID, failureMessage(err))
		return
	}

	b.sendReply(chatID, msg.MessageID, render.Text(res))
}

func (b *Bot) handleCommand(chatID int64, replyTo int, text string) {
	cmd := parseCommand(text)

	switch cmd {
	case "/start", "/help":
		b.sendHelp(chatID, replyTo)
	default:
		b.sendReply(chatID, replyTo, fmt.Sprintf("Unknown command %s. Try /help", cmd))
	}
}

// parseCommand extracts the lowercased command name, dropping arguments and
// the @botname suffix Telegram appends in group chats.
func parseCommand(text string) string {
	cmd := strings.ToLower(strings.Fields(text)[0])
	if at := strings.Index(cmd, "@"); at >= 0 {
		cmd = cmd[:at]
	}
	return cmd
}

func (b *Bot) sendHelp(chatID int64, replyTo int) {
	b.sendReply(chatID, replyTo, ""+
		"Transcript Summary: paste a meeting transcript, get the short version.\n\n"+
		"Send the transcript as a plain message and I'll reply with summary "+
		"bullets and the action items.\n\n"+
		"Commands:\n"+
		"/help -- Show this message")
}

// failureMessage collapses the error taxonomy into short user-facing text.
func failureMessage(err error) string {
	var ve *summary.ValidationError
	switch {
	case errors.As(err, &ve) && ve.Field == "credential":
		return "No completion API key is configured on the server (set OPENAI_API_KEY)."
	case errors.Is(err, summarizer.ErrBusy):
		return "A summarization is already in progress, try again in a moment."
	default:
		return "Summarization failed, please try again."
	}
}

func (b *Bot) sendChatAction(chatID int64) {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	b.api.Send(action)
}

func (b *Bot) sendReply(chatID int64, replyTo int, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = replyTo

	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Telegram: failed to send message: %v", err)
	}
}
