// Package notification routes notifications to push and chat channels.
package notification

import (
	"context"
	"log/slog"

	"dispatch/config"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"

	"go.uber.org/fx"
)

// Sender delivers notifications of one channel.
type Sender interface {
	Send(ctx context.Context, n *service.Notification) error
}

// logSender writes notifications to the log when a channel is disabled.
type logSender struct {
	channel service.NotificationChannel
	logger  *slog.Logger
}

func (s *logSender) Send(_ context.Context, n *service.Notification) error {
	s.logger.Debug("Notification channel disabled, logging only",
		slog.String("channel", string(s.channel)),
		slog.String("target", n.Target),
		slog.String("title", n.Title),
	)

	return nil
}

// router implements service.Notifier by dispatching on the notification channel.
type router struct {
	senders map[service.NotificationChannel]Sender
}

// NewRouter builds a Notifier over the given channel senders.
func NewRouter(senders map[service.NotificationChannel]Sender) service.Notifier {
	return &router{senders: senders}
}

func (r *router) Notify(ctx context.Context, n *service.Notification) error {
	sender, ok := r.senders[n.Channel]
	if !ok {
		return errors.Errorf("no sender for notification channel %q", n.Channel)
	}

	return sender.Send(ctx, n)
}

// NotifierParams holds dependencies for the Notifier, injected by Fx.
type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier wires the push and Telegram senders enabled in configuration. Disabled
// channels fall back to logging.
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	senders := map[service.NotificationChannel]Sender{
		service.ChannelPush:     &logSender{channel: service.ChannelPush, logger: params.Logger},
		service.ChannelTelegram: &logSender{channel: service.ChannelTelegram, logger: params.Logger},
	}

	if fb := params.Config.Firebase; fb != nil && fb.Enabled {
		sender, err := NewFirebaseSender(params.Ctx, fb.ProjectID, fb.CredentialsPath)
		if err != nil {
			return nil, err
		}
		senders[service.ChannelPush] = sender
		params.Logger.Info("Firebase push notifications enabled", slog.String("project_id", fb.ProjectID))
	}

	if tg := params.Config.Telegram; tg != nil && tg.Enabled {
		sender, err := NewTelegramSender(tg.BotToken)
		if err != nil {
			return nil, err
		}
		senders[service.ChannelTelegram] = sender
		params.Logger.Info("Telegram merchant notifications enabled")
	}

	return NewRouter(senders), nil
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
