package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/roster/internal/core"
	"github.com/sandevgo/roster/pkg/log"
	"github.com/sandevgo/roster/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot     *tele.Bot
	sender  *sender
	router  core.CmdRouter
	ownerID int64
}

func NewBot(
	ctx context.Context,
	cfg core.TelegramConfig,
	router core.CmdRouter,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.GetTelegramToken(),
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		// One update at a time keeps registry commands in arrival order
		Synchronous: true,
	}

	var b *tele.Bot
	retrier := retry.NewRetrierWithPermanent(func(err error) bool {
		return errors.Is(err, tele.ErrUnauthorized)
	})
	err := retrier.Do(ctx, func() error {
		var err error
		b, err = tele.NewBot(pref)
		if err != nil {
			log.FromCtx(ctx).Warn().Err(err).Msg("telegram bot not ready, retrying")
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return newBot(ctx, b, cfg.GetTelegramOwnerID(), router), nil
}

func newBot(ctx context.Context, b *tele.Bot, ownerID int64, router core.CmdRouter) *Bot {
	bot := &Bot{
		bot:     b,
		sender:  newSender(b),
		router:  router,
		ownerID: ownerID,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil || !bot.authorized(c.Sender().ID) {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) authorized(senderID int64) bool {
	return senderID == b.ownerID
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	md := b.execute(ctx, c.Text())
	if md == "" {
		return nil
	}

	if err := b.sender.sendMarkdown(ctx, c.Recipient(), md); err != nil {
		logger.Error().Err(err).Msg("failed to send telegram reply")
		return err
	}
	return nil
}

// execute runs every non-blank line of a message in order and joins the replies.
func (b *Bot) execute(ctx context.Context, text string) string {
	var replies []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		replies = append(replies, b.router.Execute(ctx, line).Markdown)
	}
	return strings.Join(replies, "\n")
}
