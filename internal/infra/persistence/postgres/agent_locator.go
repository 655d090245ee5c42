package postgres

import (
	"context"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"
	"dispatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// agentLocator finds agents with a PostGIS proximity query over the agents table.
type agentLocator struct {
	db *gorm.DB
}

// NewAgentLocator creates a PostGIS-backed AgentLocator.
func NewAgentLocator(db *gorm.DB) service.AgentLocator {
	return &agentLocator{db: db}
}

// FindNearest returns active agents with spare capacity within range, nearest first.
// ST_DWithin on the geography column uses the GIST index; the distance is in meters.
func (l *agentLocator) FindNearest(ctx context.Context, point entity.Point, maxDistanceMeters float64, limit int) ([]*entity.NearbyAgent, error) {
	query := `
		SELECT a.id,
		       a.longitude,
		       a.latitude,
		       ST_Distance(a.location, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography) AS distance
		FROM agents a
		WHERE a.active = true
		  AND a.order_count < a.capacity
		  AND ST_DWithin(a.location, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)
		ORDER BY distance ASC
		LIMIT ?
	`

	var rows []*model.NearbyAgentRow
	if err := l.db.WithContext(ctx).
		Raw(query,
			point.Longitude, point.Latitude,
			point.Longitude, point.Latitude, maxDistanceMeters,
			limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find agents within radius")
	}

	agents := make([]*entity.NearbyAgent, 0, len(rows))
	for _, row := range rows {
		agents = append(agents, &entity.NearbyAgent{
			AgentID:        row.ID,
			Location:       entity.Point{Longitude: row.Longitude, Latitude: row.Latitude},
			DistanceMeters: row.Distance,
		})
	}

	return agents, nil
}

// UpdatePosition is a no-op: the generated location column follows the agent row,
// which the agent repository has already written.
func (l *agentLocator) UpdatePosition(context.Context, uuid.UUID, entity.Point) error {
	return nil
}
