package service

import (
	"context"
)

// NotificationChannel names a delivery channel of the notification service
type NotificationChannel string

const (
	// ChannelPush delivers to a push topic subscribed by customer, agent or merchant apps
	ChannelPush NotificationChannel = "push"
	// ChannelTelegram delivers to a merchant's Telegram chat
	ChannelTelegram NotificationChannel = "telegram"
)

// Notification is a single fire-and-forget message
type Notification struct {
	Channel NotificationChannel
	Target  string // push topic or telegram chat id
	Title   string
	Body    string
	Data    map[string]string
}

// Notifier defines the interface of the external notification service.
// Callers log failures and never propagate them.
type Notifier interface {
	Notify(ctx context.Context, notification *Notification) error
}
