package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyRegistered(ctx context.Context, user *domain.User, event *domain.Event) {
	n.send(ctx, user.TelegramChatID, registeredText(event))
}

func (n *TelegramNotifier) NotifyReminder(ctx context.Context, user *domain.User, event *domain.Event) {
	n.send(ctx, user.TelegramChatID, reminderText(event))
}

func (n *TelegramNotifier) NotifyEnquiryReplied(ctx context.Context, user *domain.User, event *domain.Event, enquiry domain.Enquiry) {
	n.send(ctx, user.TelegramChatID, replyText(event, enquiry))
}

func registeredText(event *domain.Event) string {
	return fmt.Sprintf(
		"*Registration confirmed!*\n\n"+"Event: %s\n"+"Starts: %s %s",
		event.Title, event.Date, event.Time,
	)
}

func reminderText(event *domain.Event) string {
	text := fmt.Sprintf(
		"*Starting now*\n\n"+"Event: %s\n"+"Starts: %s %s",
		event.Title, event.Date, event.Time,
	)
	if event.VideoLink != "" {
		text += "\nJoin: " + event.VideoLink
	}
	return text
}

func replyText(event *domain.Event, enquiry domain.Enquiry) string {
	return fmt.Sprintf(
		"*Your enquiry was answered*\n\n"+"Event: %s\n"+"Subject: %s\n"+"Reply: %s",
		event.Title, enquiry.Subject, enquiry.Reply,
	)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
