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

// agentRepository implements the repository.AgentRepository interface.
type agentRepository struct {
	db *gorm.DB
}

// NewAgentRepository is the constructor for agentRepository.
func NewAgentRepository(db *gorm.DB) repository.AgentRepository {
	return &agentRepository{
		db: db,
	}
}

// FindAgentByID retrieves an agent by its unique ID.
func (repo *agentRepository) FindAgentByID(ctx context.Context, id uuid.UUID) (*entity.Agent, error) {
	var agentM model.AgentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&agentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAgentNotFound
		}

		return nil, errors.Wrap(err, "failed to find agent by ID")
	}

	return toAgentDomain(&agentM), nil
}

// ReserveCapacity is a single conditional update, so two concurrent reservations can never
// push the agent past its capacity.
func (repo *agentRepository) ReserveCapacity(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AgentModel{}).
		Where("id = ? AND active = ? AND order_count < capacity", id, true).
		Updates(map[string]any{
			"order_count": gorm.Expr("order_count + 1"),
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reserve agent capacity")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindAgentByID(ctx, id); err != nil {
			return err
		}

		return repository.ErrAgentUnavailable
	}

	return nil
}

// ReleaseCapacity decrements the running order count, never below zero.
func (repo *agentRepository) ReleaseCapacity(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AgentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"order_count": gorm.Expr("GREATEST(order_count - 1, 0)"),
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to release agent capacity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAgentNotFound
	}

	return nil
}

// UpdateLocation stores the agent's position; the generated location column follows.
func (repo *agentRepository) UpdateLocation(ctx context.Context, id uuid.UUID, point entity.Point) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AgentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"longitude":  point.Longitude,
			"latitude":   point.Latitude,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update agent location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAgentNotFound
	}

	return nil
}

// AddRewardPoints adds points to the agent's reward total.
func (repo *agentRepository) AddRewardPoints(ctx context.Context, id uuid.UUID, points int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AgentModel{}).
		Where("id = ?", id).
		Update("reward_points", gorm.Expr("reward_points + ?", points))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to add agent reward points")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAgentNotFound
	}

	return nil
}

// RecordReview folds the rating into the running average in one statement.
func (repo *agentRepository) RecordReview(ctx context.Context, id uuid.UUID, rating int) (*entity.Agent, error) {
	var agentM model.AgentModel

	result := repo.db.WithContext(ctx).
		Model(&agentM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"average_rating": gorm.Expr("(average_rating * review_count + ?) / (review_count + 1)", rating),
			"review_count":   gorm.Expr("review_count + 1"),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to record agent review")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrAgentNotFound
	}

	return toAgentDomain(&agentM), nil
}

// --- Mapper Functions ---

func toAgentDomain(data *model.AgentModel) *entity.Agent {
	if data == nil {
		return nil
	}

	return &entity.Agent{
		ID:            data.ID,
		UserID:        data.UserID,
		Active:        data.Active,
		Location:      entity.Point{Longitude: data.Longitude, Latitude: data.Latitude},
		OrderCount:    data.OrderCount,
		Capacity:      data.Capacity,
		ReviewCount:   data.ReviewCount,
		AverageRating: data.AverageRating,
		Payout: entity.PayoutDetail{
			AccountHolder: data.PayoutHolder,
			BankName:      data.PayoutBank,
			AccountNumber: data.PayoutAccount,
		},
		RewardPoints: data.RewardPoints,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
