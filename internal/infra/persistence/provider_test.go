package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dispatch/config"
	"dispatch/internal/domain/constants"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, driver, locator string) Params {
	t.Helper()

	return Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config: &config.Config{
			Storage:  &config.StorageConfig{Driver: driver},
			Dispatch: &config.DispatchConfig{Locator: locator},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNew_MemoryDriverSharesOneStore(t *testing.T) {
	repos, err := New(newParams(t, constants.StorageDriverMemory, constants.LocatorMemory))
	require.NoError(t, err)

	ctx := context.Background()
	order := &entity.Order{
		ID:           uuid.New(),
		RestaurantID: uuid.New(),
		Status:       entity.OrderStatusPending,
		CreatedAt:    time.Now(),
	}

	err = repos.TxManager.Execute(ctx, func(tx repository.RepositoryFactory) error {
		return tx.NewOrderRepository().CreateOrder(ctx, order)
	})
	require.NoError(t, err)

	found, err := repos.Orders.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, found.Status)
	assert.NotNil(t, repos.Locator)
}

func TestNew_RejectsMismatchedBackends(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		locator string
		wantErr string
	}{
		{"unknown driver", "sqlite", constants.LocatorMemory, "unsupported storage driver"},
		{"postgis without postgres", constants.StorageDriverMemory, constants.LocatorPostGIS, "requires the postgres storage driver"},
		{"unknown locator", constants.StorageDriverMemory, "grid", "unsupported agent locator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(newParams(t, tt.driver, tt.locator))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
