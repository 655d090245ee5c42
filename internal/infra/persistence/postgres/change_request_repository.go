package postgres

import (
	"context"
	"encoding/json"
	"time"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"
	"dispatch/internal/errors"
	"dispatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// changeRequestRepository implements the repository.ChangeRequestRepository interface.
type changeRequestRepository struct {
	db *gorm.DB
}

// NewChangeRequestRepository is the constructor for changeRequestRepository.
func NewChangeRequestRepository(db *gorm.DB) repository.ChangeRequestRepository {
	return &changeRequestRepository{
		db: db,
	}
}

// CreateChangeRequest persists a new pending change request with its payload as JSONB.
func (repo *changeRequestRepository) CreateChangeRequest(ctx context.Context, request *entity.ChangeRequest) error {
	requestM, err := fromChangeRequestDomain(request)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return errors.Wrap(err, "failed to create change request")
	}

	return nil
}

// FindChangeRequestByID retrieves a change request by its unique ID.
func (repo *changeRequestRepository) FindChangeRequestByID(ctx context.Context, id uuid.UUID) (*entity.ChangeRequest, error) {
	var requestM model.ChangeRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChangeRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find change request by ID")
	}

	return toChangeRequestDomain(&requestM)
}

// FindChangeRequests lists change requests matching the filter, newest first.
func (repo *changeRequestRepository) FindChangeRequests(ctx context.Context, filter entity.ChangeRequestFilter) ([]*entity.ChangeRequest, error) {
	query := repo.db.WithContext(ctx).Model(&model.ChangeRequestModel{})
	if filter.RestaurantID != nil {
		query = query.Where("restaurant_id = ?", *filter.RestaurantID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var requestModels []*model.ChangeRequestModel
	if err := query.Order("created_at DESC").Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list change requests")
	}

	requests := make([]*entity.ChangeRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		request, err := toChangeRequestDomain(requestM)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// MarkReviewed only touches rows still PENDING, so a request is reviewed at most once.
func (repo *changeRequestRepository) MarkReviewed(
	ctx context.Context,
	id uuid.UUID,
	status entity.ChangeRequestStatus,
	reviewerID uuid.UUID,
	reviewedAt time.Time,
) (*entity.ChangeRequest, error) {
	var requestM model.ChangeRequestModel

	result := repo.db.WithContext(ctx).
		Model(&requestM).
		Clauses(clause.Returning{}).
		Where("id = ? AND status = ?", id, string(entity.ChangeRequestPending)).
		Updates(map[string]any{
			"status":      string(status),
			"reviewed_by": reviewerID,
			"reviewed_at": reviewedAt,
			"updated_at":  reviewedAt,
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to mark change request reviewed")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindChangeRequestByID(ctx, id); err != nil {
			return nil, err
		}

		return nil, repository.ErrChangeRequestNotPending
	}

	return toChangeRequestDomain(&requestM)
}

// --- Mapper Functions ---

func toChangeRequestDomain(data *model.ChangeRequestModel) (*entity.ChangeRequest, error) {
	payload, err := entity.DecodeChangePayload(entity.ChangeAction(data.Action), data.Payload)
	if err != nil {
		return nil, errors.Wrapf(err, "change request %s", data.ID)
	}

	return &entity.ChangeRequest{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		RequesterID:  data.RequesterID,
		Type:         entity.ChangeRequestType(data.Type),
		Payload:      payload,
		Status:       entity.ChangeRequestStatus(data.Status),
		ReviewedBy:   data.ReviewedBy,
		ReviewedAt:   data.ReviewedAt,
		Note:         data.Note,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}

func fromChangeRequestDomain(data *entity.ChangeRequest) (*model.ChangeRequestModel, error) {
	payload, err := json.Marshal(data.Payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode change request payload")
	}

	return &model.ChangeRequestModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		RequesterID:  data.RequesterID,
		Type:         string(data.Type),
		Action:       string(data.Action()),
		Payload:      payload,
		Status:       string(data.Status),
		ReviewedBy:   data.ReviewedBy,
		ReviewedAt:   data.ReviewedAt,
		Note:         data.Note,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}
