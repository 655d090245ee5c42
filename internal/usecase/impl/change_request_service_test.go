package impl

import (
	"context"
	"testing"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeRequestService_ApproveReplaysUpdate(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()

	price := 12.5
	result, err := f.menu.UpdateProduct(ctx, f.merchant, f.product.ID, entity.ProductPatch{Price: &price}, "new price list")
	require.NoError(t, err)
	require.True(t, result.Forwarded)
	require.NotNil(t, result.ChangeRequest)
	assert.Equal(t, entity.ChangeRequestPending, result.ChangeRequest.Status)
	assert.Equal(t, entity.ChangeActionUpdateProduct, result.ChangeRequest.Action())

	unchanged, err := f.repos.NewCatalogRepository().FindProduct(ctx, f.product.ID)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, unchanged.Price, 1e-9)

	reviewed, err := f.changeRequests.Review(ctx, f.admin, result.ChangeRequest.ID, entity.ReviewApprove)
	require.NoError(t, err)
	assert.Equal(t, entity.ChangeRequestApproved, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, f.admin.UserID, *reviewed.ReviewedBy)
	assert.NotNil(t, reviewed.ReviewedAt)

	updated, err := f.repos.NewCatalogRepository().FindProduct(ctx, f.product.ID)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, updated.Price, 1e-9)

	_, err = f.changeRequests.Review(ctx, f.admin, reviewed.ID, entity.ReviewReject)
	assert.True(t, domainerrors.IsConflict(err))
}

// Approving a create whose category disappeared fails and leaves the request reviewable.
func TestChangeRequestService_FailedReplayStaysPending(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()

	result, err := f.menu.CreateProduct(ctx, f.merchant, &entity.CreateProductPayload{
		CategoryID: f.category.ID,
		Name:       "Xiao long bao",
		Price:      8,
		Active:     true,
	}, "")
	require.NoError(t, err)
	require.True(t, result.Forwarded)

	f.store.DeleteCategory(f.category.ID)

	_, err = f.changeRequests.Review(ctx, f.admin, result.ChangeRequest.ID, entity.ReviewApprove)
	assert.True(t, domainerrors.IsNotFound(err))

	pending, err := f.changeRequests.List(ctx, entity.ChangeRequestFilter{Status: entity.ChangeRequestPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, result.ChangeRequest.ID, pending[0].ID)

	rejected, err := f.changeRequests.Review(ctx, f.admin, result.ChangeRequest.ID, entity.ReviewReject)
	require.NoError(t, err)
	assert.Equal(t, entity.ChangeRequestRejected, rejected.Status)

	pending, err = f.changeRequests.List(ctx, entity.ChangeRequestFilter{Status: entity.ChangeRequestPending})
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestChangeRequestService_ReviewGuards(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()

	request, err := f.changeRequests.Submit(ctx, f.restaurant.ID, f.merchant.UserID, &entity.DeleteProductPayload{ProductID: f.product.ID}, "")
	require.NoError(t, err)

	_, err = f.changeRequests.Review(ctx, f.merchant, request.ID, entity.ReviewApprove)
	assert.True(t, domainerrors.IsForbidden(err))

	_, err = f.changeRequests.Review(ctx, f.admin, request.ID, entity.ReviewDecision("MAYBE"))
	assert.True(t, domainerrors.IsValidation(err))

	_, err = f.changeRequests.Review(ctx, f.admin, uuid.New(), entity.ReviewApprove)
	assert.True(t, domainerrors.IsNotFound(err))

	_, err = f.changeRequests.Review(ctx, f.admin, request.ID, entity.ReviewApprove)
	require.NoError(t, err)

	_, err = f.repos.NewCatalogRepository().FindProduct(ctx, f.product.ID)
	assert.Error(t, err)
}

func TestChangeRequestService_SubmitValidation(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		payload entity.ChangePayload
	}{
		{name: "missing payload", payload: nil},
		{name: "create without name", payload: &entity.CreateProductPayload{CategoryID: f.category.ID}},
		{name: "create without category", payload: &entity.CreateProductPayload{Name: "Tea"}},
		{name: "empty patch", payload: &entity.UpdateProductPayload{ProductID: f.product.ID}},
		{name: "toggle without product", payload: &entity.ToggleProductActivePayload{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.changeRequests.Submit(ctx, f.restaurant.ID, f.merchant.UserID, tt.payload, "")
			assert.True(t, domainerrors.IsValidation(err))
		})
	}
}

func TestChangeRequestService_ListFilters(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()
	other := f.seedRestaurant(t)

	for range 3 {
		_, err := f.changeRequests.Submit(ctx, f.restaurant.ID, f.merchant.UserID, &entity.ToggleProductActivePayload{ProductID: f.product.ID}, "")
		require.NoError(t, err)
	}
	_, err := f.changeRequests.Submit(ctx, other.ID, uuid.New(), &entity.ToggleProductActivePayload{ProductID: uuid.New()}, "")
	require.NoError(t, err)

	all, err := f.changeRequests.List(ctx, entity.ChangeRequestFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	restaurantID := f.restaurant.ID
	mine, err := f.changeRequests.List(ctx, entity.ChangeRequestFilter{RestaurantID: &restaurantID})
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	page, err := f.changeRequests.List(ctx, entity.ChangeRequestFilter{Limit: 2, Offset: 3})
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestMenuService_DirectWithManageMenu(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()
	f.setPermission(f.restaurant.ID, map[string]bool{entity.PermissionCanManageMenu: true})

	result, err := f.menu.ToggleProductActive(ctx, f.merchant, f.product.ID, "")
	require.NoError(t, err)
	assert.False(t, result.Forwarded)
	require.NotNil(t, result.Product)
	assert.False(t, result.Product.Active)

	created, err := f.menu.CreateProduct(ctx, f.merchant, &entity.CreateProductPayload{
		CategoryID: f.category.ID,
		Name:       "  Dumplings ",
		Price:      6,
		Active:     true,
	}, "")
	require.NoError(t, err)
	require.NotNil(t, created.Product)
	assert.Equal(t, "Dumplings", created.Product.Name)

	stored, err := f.repos.NewCatalogRepository().FindProduct(ctx, created.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, f.restaurant.ID, stored.RestaurantID)

	deleted, err := f.menu.DeleteProduct(ctx, f.merchant, created.Product.ID, "")
	require.NoError(t, err)
	assert.False(t, deleted.Forwarded)
	assert.Nil(t, deleted.Product)

	pending, err := f.changeRequests.List(ctx, entity.ChangeRequestFilter{})
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestMenuService_Guards(t *testing.T) {
	f := newEngineFixtures(t)
	ctx := context.Background()

	other := f.seedRestaurant(t)
	otherID := other.ID
	f.setPermission(otherID, map[string]bool{entity.PermissionCanManageMenu: true})
	otherMerchant := entity.Actor{UserID: other.OwnerID, Role: entity.RoleMerchant, RestaurantID: &otherID}

	_, err := f.menu.ToggleProductActive(ctx, otherMerchant, f.product.ID, "")
	assert.True(t, domainerrors.IsNotFound(err))

	_, err = f.menu.ToggleProductActive(ctx, f.customer, f.product.ID, "")
	assert.True(t, domainerrors.IsForbidden(err))

	_, err = f.menu.CreateProduct(ctx, f.merchant, nil, "")
	assert.True(t, domainerrors.IsValidation(err))
}
