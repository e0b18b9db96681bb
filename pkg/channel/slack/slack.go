// Package slack provides a Slack bot channel using Socket Mode. Mention the
// bot with a pasted transcript and it replies in the thread with the summary.
package slack

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"

	"github.com/madhavdargar/ai-transcript-summary/pkg/render"
	"github.com/madhavdargar/ai-transcript-summary/pkg/summarizer"
	"github.com/madhavdargar/ai-transcript-summary/pkg/summary"
)

// Dispatcher is the summarization entry point the bot calls.
type Dispatcher interface {
	Summarize(ctx context.Context, credential, transcript string) (*summary.Result, error)
}

// Bot is the Slack Socket Mode bot.
type Bot struct {
	api          *slack.Client
	socketClient *socketmode.Client
	dispatcher   Dispatcher
	credential   string
}

// NewBot creates a new Slack Socket Mode bot. The credential is the
// server-side completion API key applied to every request from this channel.
func NewBot(botToken, appToken, credential string, d Dispatcher) *Bot {
	api := slack.New(
		botToken,
		slack.OptionAppLevelToken(appToken),
	)

	socketClient := socketmode.New(
		api,
		socketmode.OptionLog(log.New(log.Writer(), "slack-socketmode: ", log.LstdFlags)),
	)

	return &Bot{
		api:          api,
		socketClient: socketClient,
		dispatcher:   d,
		credential:   credential,
	}
}

// Name returns the channel name.
func (b *Bot) Name() string { return "slack" }

// Run connects to Slack via Socket Mode and processes events.
func (b *Bot) Run(ctx context.Context) error {
	go b.eventLoop(ctx)
	log.Println("Slack bot connecting via Socket Mode...")
	return b.socketClient.RunContext(ctx)
}

func (b *Bot) eventLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-b.socketClient.Events:
			if !ok {
				return
			}
			b.handleEvent(ctx, evt)
		}
	}
}

func (b *Bot) handleEvent(ctx context.Context, evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		log.Println("Slack: connecting...")
	case socketmode.EventTypeConnected:
		log.Println("Slack: connected")
	case socketmode.EventTypeConnectionError:
		log.Println("Slack: connection error, will retry...")
	case socketmode.EventTypeEventsAPI:
		eventsAPIEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			return
		}
		b.socketClient.Ack(*evt.Request)

		if eventsAPIEvent.Type == slackevents.CallbackEvent {
			if ev, ok := eventsAPIEvent.InnerEvent.Data.(*slackevents.AppMentionEvent); ok {
				go b.handleMention(ctx, ev)
			}
		}
	case socketmode.EventTypeInteractive:
		b.socketClient.Ack(*evt.Request)
	}
}

func (b *Bot) handleMention(ctx context.Context, ev *slackevents.AppMentionEvent) {
	transcript := stripMention(ev.Text)

	threadTS := ev.TimeStamp
	if ev.ThreadTimeStamp != "" {
		threadTS = ev.ThreadTimeStamp
	}

	if transcript == "" {
		b.postThread(ev.Channel, threadTS,
			"Please paste a meeting transcript after the mention and I'll summarize it.")
		return
	}

	res, err := b.dispatcher.Summarize(ctx, b.credential, transcript)
	if err != nil {
		b.postThread(ev.Channel, threadTS, failureMessage(err))
		return
	}

	b.postThread(ev.Channel, threadTS, render.Markdown(res))
}

// stripMention removes the leading <@BOTID> mention tag, leaving the pasted
// transcript.
func stripMention(text string) string {
	if idx := strings.Index(text, ">"); idx >= 0 {
		return strings.TrimSpace(text[idx+1:])
	}
	return strings.TrimSpace(text)
}

// failureMessage collapses the error taxonomy into short user-facing text.
// A missing server credential and a busy dispatcher are called out
// specifically; everything else is the generic failure notice.
func failureMessage(err error) string {
	var ve *summary.ValidationError
	switch {
	case errors.As(err, &ve) && ve.Field == "credential":
		return ":x: No completion API key is configured on the server (set OPENAI_API_KEY)."
	case errors.Is(err, summarizer.ErrBusy):
		return ":hourglass: A summarization is already in progress, try again in a moment."
	default:
		return ":x: Summarization failed, please try again."
	}
}

func (b *Bot) postThread(channel, threadTS, text string) {
	_, _, err := b.api.PostMessage(channel,
		slack.MsgOptionText(text, false),
		slack.MsgOptionTS(threadTS),
	)
	if err != nil {
		log.Printf("Slack: failed to post message to %s: %v", channel, err)
	}
}
