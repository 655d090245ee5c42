package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	mockRepo "dispatch/internal/mocks/repository"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type permissionServiceFixtures struct {
	service        usecase.PermissionUsecase
	permissionRepo *mockRepo.MockPermissionRepository
}

func createTestPermissionService(t *testing.T) permissionServiceFixtures {
	permissionRepo := mockRepo.NewMockPermissionRepository(t)

	return permissionServiceFixtures{
		service: NewPermissionService(PermissionServiceParams{
			PermissionRepo: permissionRepo,
			Logger:         discardLogger(),
		}),
		permissionRepo: permissionRepo,
	}
}

func TestPermissionService_GetPermission_DefaultsWhenMissing(t *testing.T) {
	fx := createTestPermissionService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	fx.permissionRepo.EXPECT().
		FindPermissionByRestaurant(ctx, restaurantID).
		Return(nil, repository.ErrPermissionNotFound)

	perm, err := fx.service.GetPermission(ctx, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, restaurantID, perm.RestaurantID)
	assert.False(t, perm.CanManageMenu)
	assert.False(t, perm.CanAcceptOrder)
	assert.False(t, perm.CanRejectOrder)
	assert.False(t, perm.CanManageOffers)
	assert.False(t, perm.CanViewReports)
}

func TestPermissionService_GetPermission_RepositoryError(t *testing.T) {
	fx := createTestPermissionService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	fx.permissionRepo.EXPECT().
		FindPermissionByRestaurant(ctx, restaurantID).
		Return(nil, errors.New("connection reset"))

	perm, err := fx.service.GetPermission(ctx, restaurantID)
	assert.Error(t, err)
	assert.Nil(t, perm)
}

func TestPermissionService_UpdatePermission_DropsUnknownKeys(t *testing.T) {
	fx := createTestPermissionService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	expected := &entity.RestaurantPermission{RestaurantID: restaurantID, CanManageMenu: true}

	fx.permissionRepo.EXPECT().
		UpsertPermission(ctx, restaurantID, map[string]bool{entity.PermissionCanManageMenu: true}).
		Return(expected, nil)

	perm, err := fx.service.UpdatePermission(ctx, restaurantID, map[string]any{
		entity.PermissionCanManageMenu: true,
		"canLaunchRockets":             true,
	})
	require.NoError(t, err)
	assert.Equal(t, expected, perm)
}

func TestPermissionService_UpdatePermission_Validation(t *testing.T) {
	tests := []struct {
		name  string
		flags map[string]any
	}{
		{name: "non-boolean value", flags: map[string]any{entity.PermissionCanAcceptOrder: "yes"}},
		{name: "only unknown keys", flags: map[string]any{"canLaunchRockets": true}},
		{name: "empty", flags: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPermissionService(t)

			perm, err := fx.service.UpdatePermission(context.Background(), uuid.New(), tt.flags)
			assert.True(t, domainerrors.IsValidation(err))
			assert.Nil(t, perm)
		})
	}
}

func TestPermissionService_UpdatePermission_RepositoryError(t *testing.T) {
	fx := createTestPermissionService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	fx.permissionRepo.EXPECT().
		UpsertPermission(ctx, restaurantID, map[string]bool{entity.PermissionCanViewReports: false}).
		Return(nil, errors.New("deadlock detected"))

	_, err := fx.service.UpdatePermission(ctx, restaurantID, map[string]any{entity.PermissionCanViewReports: false})
	assert.Error(t, err)
}

func TestPermissionService_UpdateKeepsPriorFlags(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()

	before, err := f.permissions.GetPermission(ctx, f.restaurant.ID)
	require.NoError(t, err)
	require.True(t, before.CanAcceptOrder)
	require.True(t, before.CanRejectOrder)

	updated, err := f.permissions.UpdatePermission(ctx, f.restaurant.ID, map[string]any{
		entity.PermissionCanManageMenu: true,
	})
	require.NoError(t, err)
	assert.True(t, updated.CanManageMenu)

	after, err := f.permissions.GetPermission(ctx, f.restaurant.ID)
	require.NoError(t, err)
	assert.True(t, after.CanManageMenu)
	assert.True(t, after.CanAcceptOrder)
	assert.True(t, after.CanRejectOrder)
	assert.False(t, after.CanManageOffers)
	assert.False(t, after.CanViewReports)

	_, err = f.permissions.UpdatePermission(ctx, f.restaurant.ID, map[string]any{
		entity.PermissionCanAcceptOrder: false,
	})
	require.NoError(t, err)

	after, err = f.permissions.GetPermission(ctx, f.restaurant.ID)
	require.NoError(t, err)
	assert.False(t, after.CanAcceptOrder)
	assert.True(t, after.CanManageMenu)
	assert.True(t, after.CanRejectOrder)
}
