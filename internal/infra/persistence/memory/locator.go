package memory

import (
	"context"
	"sort"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geo"
)

type agentLocator struct {
	store *Store
}

// NewAgentLocator returns a locator that scans the store's agents. It serves development and
// tests; production deployments use the PostGIS or Redis locator.
func NewAgentLocator(store *Store) service.AgentLocator {
	return &agentLocator{store: store}
}

// FindNearest returns active agents with spare capacity within range, nearest first.
func (l *agentLocator) FindNearest(_ context.Context, point entity.Point, maxDistanceMeters float64, limit int) ([]*entity.NearbyAgent, error) {
	origin := point.Orb()

	var hits []*entity.NearbyAgent
	err := autoCommit{store: l.store}.read(func(s *state) error {
		for _, agent := range s.agents {
			if !agent.HasCapacity() {
				continue
			}

			distance := geo.DistanceHaversine(origin, agent.Location.Orb())
			if distance > maxDistanceMeters {
				continue
			}

			hits = append(hits, &entity.NearbyAgent{
				AgentID:        agent.ID,
				Location:       agent.Location,
				DistanceMeters: distance,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].DistanceMeters < hits[j].DistanceMeters })
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	return hits, nil
}

// UpdatePosition is a no-op: the agent row is the index and is written by the repository.
func (l *agentLocator) UpdatePosition(context.Context, uuid.UUID, entity.Point) error {
	return nil
}
