package memory

import (
	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// SeedRestaurant inserts or replaces a restaurant. Restaurant profiles are owned outside the
// engine, so seeding is the only way to create them in memory.
func (s *Store) SeedRestaurant(restaurant *entity.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.restaurants[restaurant.ID] = copyRestaurant(restaurant)
}

// SeedAgent inserts or replaces an agent. A zero capacity falls back to the default.
func (s *Store) SeedAgent(agent *entity.Agent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := copyAgent(agent)
	if c.Capacity <= 0 {
		c.Capacity = entity.DefaultAgentCapacity
	}
	s.state.agents[agent.ID] = c
}

func (s *Store) SeedCategory(category *entity.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *category
	s.state.categories[category.ID] = &c
}

func (s *Store) SeedProduct(product *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.products[product.ID] = copyProduct(product)
}

func (s *Store) SeedPermission(permission *entity.RestaurantPermission) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *permission
	s.state.permissions[permission.RestaurantID] = &c
}

// DeleteCategory removes a category, leaving its products in place.
func (s *Store) DeleteCategory(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.state.categories, id)
}

// RewardEntries returns a copy of the reward point journal.
func (s *Store) RewardEntries() []*entity.RewardPointEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.RewardPointEntry, 0, len(s.state.rewardEntries))
	for _, e := range s.state.rewardEntries {
		c := *e
		out = append(out, &c)
	}

	return out
}
