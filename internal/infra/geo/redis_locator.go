// Package geo holds agent position indexes that live outside the relational store.
package geo

import (
	"context"
	"log/slog"

	"dispatch/config"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/lifecycle"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// redisLocator keeps live agent positions in a Redis GEO set. It knows nothing about
// activity or capacity; the dispatch engine enforces both when it reserves an agent.
type redisLocator struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

// RedisLocatorParams holds dependencies for the Redis locator, injected by Fx.
type RedisLocatorParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisLocator connects to Redis and registers the client with the Fx lifecycle.
func NewRedisLocator(params RedisLocatorParams) (service.AgentLocator, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis address is required for the redis locator")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLocatorWithClient(client, cfg.GeoKey, params.Logger), nil
}

// NewRedisLocatorWithClient builds a locator over an existing client.
func NewRedisLocatorWithClient(client *redis.Client, key string, logger *slog.Logger) service.AgentLocator {
	return &redisLocator{client: client, key: key, logger: logger}
}

// FindNearest runs GEOSEARCH around point, nearest first.
func (l *redisLocator) FindNearest(ctx context.Context, point entity.Point, maxDistanceMeters float64, limit int) ([]*entity.NearbyAgent, error) {
	locations, err := l.client.GeoSearchLocation(ctx, l.key, &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  point.Longitude,
			Latitude:   point.Latitude,
			Radius:     maxDistanceMeters,
			RadiusUnit: "m",
			Sort:       "ASC",
			Count:      limit,
		},
		WithCoord: true,
		WithDist:  true,
	}).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to search agent positions")
	}

	agents := make([]*entity.NearbyAgent, 0, len(locations))
	for _, loc := range locations {
		agentID, err := uuid.Parse(loc.Name)
		if err != nil {
			l.logger.Warn("Skipping malformed agent id in position index", slog.String("member", loc.Name))

			continue
		}

		agents = append(agents, &entity.NearbyAgent{
			AgentID:        agentID,
			Location:       entity.Point{Longitude: loc.Longitude, Latitude: loc.Latitude},
			DistanceMeters: loc.Dist,
		})
	}

	return agents, nil
}

// UpdatePosition upserts the agent's member in the GEO set.
func (l *redisLocator) UpdatePosition(ctx context.Context, agentID uuid.UUID, point entity.Point) error {
	if err := l.client.GeoAdd(ctx, l.key, &redis.GeoLocation{
		Name:      agentID.String(),
		Longitude: point.Longitude,
		Latitude:  point.Latitude,
	}).Err(); err != nil {
		return errors.Wrap(err, "failed to index agent position")
	}

	return nil
}
