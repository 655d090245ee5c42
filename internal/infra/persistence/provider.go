// Package persistence selects the repository and agent locator backends from configuration.
package persistence

import (
	"log/slog"

	"dispatch/config"
	"dispatch/internal/domain/constants"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"
	"dispatch/internal/infra/geo"
	"dispatch/internal/infra/persistence/memory"
	"dispatch/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is every storage-backed dependency the usecases need.
type Repositories struct {
	fx.Out

	TxManager      repository.TransactionManager
	Orders         repository.OrderRepository
	Agents         repository.AgentRepository
	Restaurants    repository.RestaurantRepository
	Permissions    repository.PermissionRepository
	ChangeRequests repository.ChangeRequestRepository
	Earnings       repository.EarningRepository
	Catalog        repository.CatalogRepository
	Locator        service.AgentLocator
}

// New builds the repositories for the configured driver and the locator for the configured
// backend. The postgis locator needs the postgres driver.
func New(params Params) (Repositories, error) {
	driver := constants.StorageDriverPostgres
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}
	locatorKind := constants.LocatorPostGIS
	if params.Config.Dispatch != nil && params.Config.Dispatch.Locator != "" {
		locatorKind = params.Config.Dispatch.Locator
	}

	var (
		out   Repositories
		repos repository.RepositoryFactory
		db    *gorm.DB
		store *memory.Store
	)

	switch driver {
	case constants.StorageDriverPostgres:
		var err error
		db, err = postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return out, err
		}
		repos = postgres.NewRepositoryFactory(db)
		out.TxManager = postgres.NewTransactionManager(db)
	case constants.StorageDriverMemory:
		store = memory.NewStore()
		repos = store.Repositories()
		out.TxManager = store.NewTransactionManager()
		params.Logger.Warn("Using in-memory storage, state is lost on restart")
	default:
		return out, errors.Errorf("unsupported storage driver %q", driver)
	}

	out.Orders = repos.NewOrderRepository()
	out.Agents = repos.NewAgentRepository()
	out.Restaurants = repos.NewRestaurantRepository()
	out.Permissions = repos.NewPermissionRepository()
	out.ChangeRequests = repos.NewChangeRequestRepository()
	out.Earnings = repos.NewEarningRepository()
	out.Catalog = repos.NewCatalogRepository()

	locator, err := newLocator(params, locatorKind, db, store)
	if err != nil {
		return out, err
	}
	out.Locator = locator

	params.Logger.Info("Storage configured",
		slog.String("driver", driver),
		slog.String("locator", locatorKind))

	return out, nil
}

func newLocator(params Params, kind string, db *gorm.DB, store *memory.Store) (service.AgentLocator, error) {
	switch kind {
	case constants.LocatorPostGIS:
		if db == nil {
			return nil, errors.New("postgis locator requires the postgres storage driver")
		}

		return postgres.NewAgentLocator(db), nil
	case constants.LocatorRedis:
		return geo.NewRedisLocator(geo.RedisLocatorParams{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
	case constants.LocatorMemory:
		if store == nil {
			return nil, errors.New("memory locator requires the memory storage driver")
		}

		return memory.NewAgentLocator(store), nil
	default:
		return nil, errors.Errorf("unsupported agent locator %q", kind)
	}
}
