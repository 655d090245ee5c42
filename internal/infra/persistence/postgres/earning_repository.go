package postgres

import (
	"context"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/errors"
	"dispatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// earningRepository implements the repository.EarningRepository interface.
// The ledger tables are append-only; nothing here updates or deletes a row.
type earningRepository struct {
	db *gorm.DB
}

// NewEarningRepository is the constructor for earningRepository.
func NewEarningRepository(db *gorm.DB) repository.EarningRepository {
	return &earningRepository{
		db: db,
	}
}

func (repo *earningRepository) CreateAgentEarning(ctx context.Context, earning *entity.AgentEarning) error {
	earningM := &model.AgentEarningModel{
		ID:        earning.ID,
		AgentID:   earning.AgentID,
		OrderID:   earning.OrderID,
		Amount:    earning.Amount,
		Type:      string(earning.Type),
		Remarks:   earning.Remarks,
		CreatedAt: earning.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(earningM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEarning
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAgentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create agent earning")
	}

	return nil
}

func (repo *earningRepository) CreateRestaurantEarning(ctx context.Context, earning *entity.RestaurantEarning) error {
	earningM := &model.RestaurantEarningModel{
		ID:           earning.ID,
		RestaurantID: earning.RestaurantID,
		OrderID:      earning.OrderID,
		GrossAmount:  earning.GrossAmount,
		Commission:   earning.Commission,
		Amount:       earning.Amount,
		Category:     earning.Category,
		PayoutStatus: string(earning.PayoutStatus),
		CreatedAt:    earning.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(earningM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEarning
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("restaurant earning violates a ledger constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant earning")
	}

	return nil
}

func (repo *earningRepository) FindAgentEarnings(ctx context.Context, agentID uuid.UUID) ([]*entity.AgentEarning, error) {
	var earningModels []*model.AgentEarningModel

	if err := repo.db.WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("created_at DESC").
		Find(&earningModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find agent earnings")
	}

	earnings := make([]*entity.AgentEarning, 0, len(earningModels))
	for _, earningM := range earningModels {
		earnings = append(earnings, &entity.AgentEarning{
			ID:        earningM.ID,
			AgentID:   earningM.AgentID,
			OrderID:   earningM.OrderID,
			Amount:    earningM.Amount,
			Type:      entity.EarningType(earningM.Type),
			Remarks:   earningM.Remarks,
			CreatedAt: earningM.CreatedAt,
		})
	}

	return earnings, nil
}

func (repo *earningRepository) SumAgentEarningsByType(ctx context.Context, agentID uuid.UUID) (map[entity.EarningType]float64, error) {
	var rows []model.EarningSumRow

	if err := repo.db.WithContext(ctx).
		Model(&model.AgentEarningModel{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("agent_id = ?", agentID).
		Group("type").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum agent earnings")
	}

	sums := make(map[entity.EarningType]float64, len(rows))
	for _, row := range rows {
		sums[entity.EarningType(row.Type)] = row.Total
	}

	return sums, nil
}

func (repo *earningRepository) FindRestaurantEarnings(ctx context.Context, restaurantID uuid.UUID) ([]*entity.RestaurantEarning, error) {
	var earningModels []*model.RestaurantEarningModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&earningModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find restaurant earnings")
	}

	earnings := make([]*entity.RestaurantEarning, 0, len(earningModels))
	for _, earningM := range earningModels {
		earnings = append(earnings, &entity.RestaurantEarning{
			ID:           earningM.ID,
			RestaurantID: earningM.RestaurantID,
			OrderID:      earningM.OrderID,
			GrossAmount:  earningM.GrossAmount,
			Commission:   earningM.Commission,
			Amount:       earningM.Amount,
			Category:     earningM.Category,
			PayoutStatus: entity.PayoutStatus(earningM.PayoutStatus),
			CreatedAt:    earningM.CreatedAt,
		})
	}

	return earnings, nil
}

func (repo *earningRepository) CreateRewardPointEntry(ctx context.Context, entry *entity.RewardPointEntry) error {
	entryM := &model.RewardPointEntryModel{
		ID:        entry.ID,
		OwnerID:   entry.OwnerID,
		OwnerType: string(entry.OwnerType),
		OrderID:   entry.OrderID,
		Points:    entry.Points,
		Reason:    entry.Reason,
		CreatedAt: entry.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create reward point entry")
	}

	return nil
}
