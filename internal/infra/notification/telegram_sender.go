package notification

import (
	"context"
	"strconv"

	"dispatch/internal/domain/service"
	"dispatch/internal/errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// telegramSender posts merchant order notifications to the restaurant's Telegram chat.
type telegramSender struct {
	bot *tgbotapi.BotAPI
}

// NewTelegramSender authenticates the bot token against the Telegram API.
func NewTelegramSender(botToken string) (Sender, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Telegram bot")
	}

	return &telegramSender{bot: bot}, nil
}

// Send ignores ctx: the bot client has no context-aware API.
func (s *telegramSender) Send(_ context.Context, n *service.Notification) error {
	chatID, err := strconv.ParseInt(n.Target, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid telegram chat id %q", n.Target)
	}

	msg := tgbotapi.NewMessage(chatID, n.Title+"\n"+n.Body)
	if orderID, ok := n.Data["order_id"]; ok {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("View order", "order:"+orderID),
			),
		)
	}

	if _, err := s.bot.Send(msg); err != nil {
		return errors.Wrapf(err, "failed to send telegram message to chat %d", chatID)
	}

	return nil
}
