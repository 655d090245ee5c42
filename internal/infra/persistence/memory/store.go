// Package memory is an in-process implementation of every repository. It serialises
// transactions behind one mutex and applies the same compare-and-swap rules as the
// PostgreSQL repositories, so it backs both local development and scenario tests.
package memory

import (
	"context"
	"sync"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"

	"github.com/google/uuid"
)

type state struct {
	restaurants        map[uuid.UUID]*entity.Restaurant
	permissions        map[uuid.UUID]*entity.RestaurantPermission
	agents             map[uuid.UUID]*entity.Agent
	orders             map[uuid.UUID]*entity.Order
	history            []*entity.OrderStatusChange
	categories         map[uuid.UUID]*entity.Category
	products           map[uuid.UUID]*entity.Product
	changeRequests     map[uuid.UUID]*entity.ChangeRequest
	agentEarnings      []*entity.AgentEarning
	restaurantEarnings []*entity.RestaurantEarning
	rewardEntries      []*entity.RewardPointEntry
}

func newState() *state {
	return &state{
		restaurants:    make(map[uuid.UUID]*entity.Restaurant),
		permissions:    make(map[uuid.UUID]*entity.RestaurantPermission),
		agents:         make(map[uuid.UUID]*entity.Agent),
		orders:         make(map[uuid.UUID]*entity.Order),
		categories:     make(map[uuid.UUID]*entity.Category),
		products:       make(map[uuid.UUID]*entity.Product),
		changeRequests: make(map[uuid.UUID]*entity.ChangeRequest),
	}
}

// clone copies the maps and slices. Rows are replaced, never mutated in place, so sharing
// row pointers between the snapshot and the live state is safe.
func (s *state) clone() *state {
	c := &state{
		restaurants:        cloneMap(s.restaurants),
		permissions:        cloneMap(s.permissions),
		agents:             cloneMap(s.agents),
		orders:             cloneMap(s.orders),
		history:            append([]*entity.OrderStatusChange(nil), s.history...),
		categories:         cloneMap(s.categories),
		products:           cloneMap(s.products),
		changeRequests:     cloneMap(s.changeRequests),
		agentEarnings:      append([]*entity.AgentEarning(nil), s.agentEarnings...),
		restaurantEarnings: append([]*entity.RestaurantEarning(nil), s.restaurantEarnings...),
		rewardEntries:      append([]*entity.RewardPointEntry(nil), s.rewardEntries...),
	}

	return c
}

func cloneMap[V any](m map[uuid.UUID]*V) map[uuid.UUID]*V {
	out := make(map[uuid.UUID]*V, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// Store owns the in-memory state.
type Store struct {
	mu    sync.Mutex
	state *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{state: newState()}
}

// access runs fn against a state. The auto-commit accessor locks the store per call; the
// transactional accessor is already inside the store lock.
type access interface {
	read(fn func(*state) error) error
	write(fn func(*state) error) error
}

type autoCommit struct{ store *Store }

func (a autoCommit) read(fn func(*state) error) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	return fn(a.store.state)
}

// write runs fn on a snapshot and publishes it only on success, so a failing call leaves no trace.
func (a autoCommit) write(fn func(*state) error) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	snapshot := a.store.state.clone()
	if err := fn(snapshot); err != nil {
		return err
	}
	a.store.state = snapshot

	return nil
}

type inTx struct{ state *state }

func (t inTx) read(fn func(*state) error) error  { return fn(t.state) }
func (t inTx) write(fn func(*state) error) error { return fn(t.state) }

// factory builds repositories over one accessor.
type factory struct{ db access }

func (f factory) NewOrderRepository() repository.OrderRepository { return &orderRepository{db: f.db} }
func (f factory) NewAgentRepository() repository.AgentRepository { return &agentRepository{db: f.db} }
func (f factory) NewRestaurantRepository() repository.RestaurantRepository {
	return &restaurantRepository{db: f.db}
}
func (f factory) NewPermissionRepository() repository.PermissionRepository {
	return &permissionRepository{db: f.db}
}
func (f factory) NewChangeRequestRepository() repository.ChangeRequestRepository {
	return &changeRequestRepository{db: f.db}
}
func (f factory) NewEarningRepository() repository.EarningRepository { return &earningRepository{db: f.db} }
func (f factory) NewCatalogRepository() repository.CatalogRepository { return &catalogRepository{db: f.db} }

// Repositories returns auto-commit repositories, each call atomic on its own.
func (s *Store) Repositories() repository.RepositoryFactory {
	return factory{db: autoCommit{store: s}}
}

// NewTransactionManager returns a TransactionManager over the store.
func (s *Store) NewTransactionManager() repository.TransactionManager {
	return &transactionManager{store: s}
}

type transactionManager struct {
	store *Store
}

// Execute runs fn against a private snapshot while holding the store lock and publishes the
// snapshot only if fn succeeds. Transactions are fully serialised.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snapshot := tm.store.state.clone()
	if err := fn(factory{db: inTx{state: snapshot}}); err != nil {
		return err
	}
	tm.store.state = snapshot

	return nil
}
