package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/errors"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type permissionService struct {
	permissionRepo repository.PermissionRepository
	logger         *slog.Logger
}

// PermissionServiceParams holds dependencies for PermissionService, injected by Fx.
type PermissionServiceParams struct {
	fx.In

	PermissionRepo repository.PermissionRepository
	Logger         *slog.Logger
}

// NewPermissionService creates a new permission service instance
func NewPermissionService(params PermissionServiceParams) usecase.PermissionUsecase {
	return &permissionService{
		permissionRepo: params.PermissionRepo,
		logger:         params.Logger,
	}
}

func (s *permissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetPermission never fails on absence; a restaurant without a row has every flag off.
func (s *permissionService) GetPermission(ctx context.Context, restaurantID uuid.UUID) (*entity.RestaurantPermission, error) {
	return findPermission(ctx, s.permissionRepo, restaurantID)
}

func (s *permissionService) UpdatePermission(ctx context.Context, restaurantID uuid.UUID, flags map[string]any) (*entity.RestaurantPermission, error) {
	accepted, err := parsePermissionFlags(flags)
	if err != nil {
		return nil, err
	}

	perm, err := s.permissionRepo.UpsertPermission(ctx, restaurantID, accepted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert restaurant permission")
	}

	s.log(ctx).Info("Restaurant permission updated",
		slog.Any("restaurantID", restaurantID),
		slog.Any("flags", accepted))

	return perm, nil
}

// parsePermissionFlags keeps recognised keys, rejects recognised keys carrying non-boolean
// values and silently drops everything else.
func parsePermissionFlags(flags map[string]any) (map[string]bool, error) {
	accepted := make(map[string]bool, len(entity.PermissionKeys))
	var invalid []string

	for key, raw := range flags {
		if !entity.IsPermissionKey(key) {
			continue
		}

		value, ok := raw.(bool)
		if !ok {
			invalid = append(invalid, key)

			continue
		}
		accepted[key] = value
	}

	if len(invalid) > 0 {
		sort.Strings(invalid)

		return nil, domainerrors.ErrValidationFailed.WithDetails("permission values must be boolean: " + strings.Join(invalid, ", "))
	}

	if len(accepted) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no recognised permission flags supplied")
	}

	return accepted, nil
}
