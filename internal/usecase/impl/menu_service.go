package impl

import (
	"context"
	"log/slog"

	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type menuService struct {
	txManager      repository.TransactionManager
	permissionRepo repository.PermissionRepository
	changeRequests usecase.ChangeRequestUsecase
	logger         *slog.Logger
}

// MenuServiceParams holds dependencies for MenuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	PermissionRepo repository.PermissionRepository
	ChangeRequests usecase.ChangeRequestUsecase
	Logger         *slog.Logger
}

// NewMenuService creates a new menu service instance
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		txManager:      params.TxManager,
		permissionRepo: params.PermissionRepo,
		changeRequests: params.ChangeRequests,
		logger:         params.Logger,
	}
}

func (s *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *menuService) CreateProduct(ctx context.Context, actor entity.Actor, payload *entity.CreateProductPayload, note string) (*usecase.MenuResult, error) {
	if payload == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payload is required")
	}

	return s.mutate(ctx, actor, payload, note)
}

func (s *menuService) UpdateProduct(ctx context.Context, actor entity.Actor, productID uuid.UUID, patch entity.ProductPatch, note string) (*usecase.MenuResult, error) {
	return s.mutate(ctx, actor, &entity.UpdateProductPayload{ProductID: productID, Patch: patch}, note)
}

func (s *menuService) DeleteProduct(ctx context.Context, actor entity.Actor, productID uuid.UUID, note string) (*usecase.MenuResult, error) {
	return s.mutate(ctx, actor, &entity.DeleteProductPayload{ProductID: productID}, note)
}

func (s *menuService) ToggleProductActive(ctx context.Context, actor entity.Actor, productID uuid.UUID, note string) (*usecase.MenuResult, error) {
	return s.mutate(ctx, actor, &entity.ToggleProductActivePayload{ProductID: productID}, note)
}

// mutate applies the payload directly when the restaurant holds canManageMenu and forwards it
// to the change request queue otherwise.
func (s *menuService) mutate(ctx context.Context, actor entity.Actor, payload entity.ChangePayload, note string) (*usecase.MenuResult, error) {
	if actor.Role != entity.RoleMerchant || actor.RestaurantID == nil {
		return nil, domainerrors.ErrForbidden.WithDetails("caller does not operate a restaurant")
	}
	if err := validateChangePayload(payload); err != nil {
		return nil, err
	}

	restaurantID := *actor.RestaurantID
	perm, err := findPermission(ctx, s.permissionRepo, restaurantID)
	if err != nil {
		return nil, err
	}

	if !perm.CanManageMenu {
		request, err := s.changeRequests.Submit(ctx, restaurantID, actor.UserID, payload, note)
		if err != nil {
			return nil, err
		}

		return &usecase.MenuResult{Forwarded: true, ChangeRequest: request}, nil
	}

	var product *entity.Product
	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		replayer := newCatalogReplayer(repos.NewCatalogRepository(), restaurantID)
		if err := payload.Accept(ctx, replayer); err != nil {
			return err
		}
		product = replayer.product

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Menu changed directly",
		slog.Any("restaurantID", restaurantID),
		slog.String("action", string(payload.Action())))

	return &usecase.MenuResult{Product: product}, nil
}
