package pubsub

import (
	"context"
	"testing"

	"dispatch/config"
	"dispatch/internal/domain/constants"
	"dispatch/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestValidateProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.PubSubConfig
		wantErr string
	}{
		{name: "local ok", cfg: config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "pubsub.localEndpoint"},
		{name: "google without topic", cfg: config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "pubsub.topicId"},
		{name: "rabbitmq without exchange", cfg: config.PubSubConfig{Provider: constants.PubSubProviderRabbitMQ, RabbitMQURL: "amqp://x"}, wantErr: "pubsub.rabbitmqExchange"},
		{name: "unknown provider", cfg: config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateProvider(&tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewEventPublisher_DisabledFallsBackToNoop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)

	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{OrderID: "o-1"}))
}

func TestNewEventPublisher_LocalClosesOnStop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:  lc,
		Ctx: context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: "http://127.0.0.1:1/push",
		}},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)
	assert.NotNil(t, publisher)

	lc.RequireStart().RequireStop()
}
