package postgres

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"
	"dispatch/internal/errors"
	"dispatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

// FindRestaurantByID retrieves a restaurant by its unique ID.
func (repo *restaurantRepository) FindRestaurantByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	return &entity.Restaurant{
		ID:                  restaurantM.ID,
		OwnerID:             restaurantM.OwnerID,
		Name:                restaurantM.Name,
		Location:            entity.Point{Longitude: restaurantM.Longitude, Latitude: restaurantM.Latitude},
		AutoDispatch:        restaurantM.AutoDispatch,
		TelegramChatID:      restaurantM.TelegramChatID,
		CompletedOrderCount: restaurantM.CompletedOrderCount,
		RewardPoints:        restaurantM.RewardPoints,
		CreatedAt:           restaurantM.CreatedAt,
		UpdatedAt:           restaurantM.UpdatedAt,
	}, nil
}

// IncrementCompletedOrders bumps the counter and reads the new value back in one statement.
func (repo *restaurantRepository) IncrementCompletedOrders(ctx context.Context, id uuid.UUID) (int64, error) {
	var restaurantM model.RestaurantModel

	result := repo.db.WithContext(ctx).
		Model(&restaurantM).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "completed_order_count"}}}).
		Where("id = ?", id).
		Updates(map[string]any{
			"completed_order_count": gorm.Expr("completed_order_count + 1"),
			"updated_at":            time.Now(),
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to increment completed orders")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrRestaurantNotFound
	}

	return restaurantM.CompletedOrderCount, nil
}

// AddRewardPoints adds points to the restaurant's reward total.
func (repo *restaurantRepository) AddRewardPoints(ctx context.Context, id uuid.UUID, points int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", id).
		Update("reward_points", gorm.Expr("reward_points + ?", points))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to add restaurant reward points")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}
