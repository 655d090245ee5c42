package postgres

import (
	"context"
	"sort"
	"time"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"
	"dispatch/internal/errors"
	"dispatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// permissionRepository implements the repository.PermissionRepository interface.
type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository is the constructor for permissionRepository.
func NewPermissionRepository(db *gorm.DB) repository.PermissionRepository {
	return &permissionRepository{
		db: db,
	}
}

// FindPermissionByRestaurant retrieves the flags of a restaurant.
func (repo *permissionRepository) FindPermissionByRestaurant(ctx context.Context, restaurantID uuid.UUID) (*entity.RestaurantPermission, error) {
	var permM model.RestaurantPermissionModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		First(&permM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPermissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant permission")
	}

	return toPermissionDomain(&permM), nil
}

// UpsertPermission inserts all-false defaults overlaid with flags; on conflict only the
// supplied columns are overwritten so the remaining flags keep their stored values.
func (repo *permissionRepository) UpsertPermission(ctx context.Context, restaurantID uuid.UUID, flags map[string]bool) (*entity.RestaurantPermission, error) {
	perm := entity.DefaultPermission(restaurantID)
	perm.Apply(flags)
	perm.UpdatedAt = time.Now()

	permM := fromPermissionDomain(perm)
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "restaurant_id"}},
			DoUpdates: clause.AssignmentColumns(permissionUpdateColumns(flags)),
		}).
		Create(permM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to upsert restaurant permission")
	}

	return repo.FindPermissionByRestaurant(ctx, restaurantID)
}

// permissionUpdateColumns lists the columns an upsert conflict may overwrite: the supplied flags
// and updated_at.
func permissionUpdateColumns(flags map[string]bool) []string {
	columns := []string{"updated_at"}
	for key := range flags {
		if column, ok := model.PermissionColumns[key]; ok {
			columns = append(columns, column)
		}
	}
	sort.Strings(columns)

	return columns
}

// --- Mapper Functions ---

func toPermissionDomain(data *model.RestaurantPermissionModel) *entity.RestaurantPermission {
	return &entity.RestaurantPermission{
		RestaurantID:    data.RestaurantID,
		CanManageMenu:   data.CanManageMenu,
		CanAcceptOrder:  data.CanAcceptOrder,
		CanRejectOrder:  data.CanRejectOrder,
		CanManageOffers: data.CanManageOffers,
		CanViewReports:  data.CanViewReports,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromPermissionDomain(data *entity.RestaurantPermission) *model.RestaurantPermissionModel {
	return &model.RestaurantPermissionModel{
		RestaurantID:    data.RestaurantID,
		CanManageMenu:   data.CanManageMenu,
		CanAcceptOrder:  data.CanAcceptOrder,
		CanRejectOrder:  data.CanRejectOrder,
		CanManageOffers: data.CanManageOffers,
		CanViewReports:  data.CanViewReports,
		UpdatedAt:       data.UpdatedAt,
	}
}
