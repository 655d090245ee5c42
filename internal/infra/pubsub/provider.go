// Package pubsub publishes committed order transitions to the event stream the dispatch
// worker consumes.
package pubsub

import (
	"context"
	"log/slog"

	"dispatch/config"
	"dispatch/internal/domain/constants"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured. Dispatch then relies on the
// synchronous auto-dispatch path and the worker's retry sweep.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishOrderEvent(_ context.Context, event *service.OrderEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("order_id", event.OrderID),
		slog.String("to_status", event.ToStatus),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the publisher for the configured provider and closes it on stop.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: params.Logger}, nil
	}

	if err := validateProvider(cfg); err != nil {
		return nil, err
	}

	publisher, err := newPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing EventPublisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

// validateProvider checks the settings the chosen provider needs before anything connects.
func validateProvider(cfg *config.PubSubConfig) error {
	required := map[string][]struct{ name, value string }{
		constants.PubSubProviderLocal: {
			{"localEndpoint", cfg.LocalEndpoint},
		},
		constants.PubSubProviderGoogle: {
			{"projectId", cfg.ProjectID},
			{"topicId", cfg.TopicID},
		},
		constants.PubSubProviderRabbitMQ: {
			{"rabbitmqUrl", cfg.RabbitMQURL},
			{"rabbitmqExchange", cfg.RabbitMQExchange},
		},
	}

	fields, ok := required[cfg.Provider]
	if !ok {
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
	for _, field := range fields {
		if field.value == "" {
			return errors.Errorf("pubsub.%s is required for the %s provider", field.name, cfg.Provider)
		}
	}

	return nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		logger.Info("Using local HTTP publisher", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID))

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		logger.Info("Using RabbitMQ publisher", slog.String("exchange", cfg.RabbitMQExchange))

		return NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange, logger)
	}
}
