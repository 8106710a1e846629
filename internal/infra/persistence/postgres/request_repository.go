// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// CreateRequest persists a new blood request. The coordinates written here
// are never updated afterwards.
func (repo *requestRepository) CreateRequest(ctx context.Context, request *entity.BloodRequest) error {
	requestM := model.FromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid requester reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required request information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blood request")
	}

	// Update the entity with generated values
	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindRequestByID retrieves a request by its unique ID.
func (repo *requestRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error) {
	var requestM model.RequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find blood request by ID")
	}

	return requestM.ToDomain(), nil
}

// FindRequestsByRequester retrieves all requests created by a user, newest first.
func (repo *requestRepository) FindRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.BloodRequest, error) {
	var requestModels []*model.RequestModel

	if err := repo.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find blood requests by requester")
	}

	requests := make([]*entity.BloodRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, requestM.ToDomain())
	}

	return requests, nil
}

// FindOpenRequests retrieves pending requests in a city whose requested group
// is one of the given groups, newest first. Powers the donor-side feed.
func (repo *requestRepository) FindOpenRequests(ctx context.Context, city string, bloodGroups []entity.BloodGroup) ([]*entity.BloodRequest, error) {
	groups := make([]string, 0, len(bloodGroups))
	for _, group := range bloodGroups {
		groups = append(groups, string(group))
	}

	var requestModels []*model.RequestModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.RequestStatusPending)).
		Where("city = ?", city).
		Where("blood_group IN ?", groups).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find open blood requests")
	}

	requests := make([]*entity.BloodRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, requestM.ToDomain())
	}

	return requests, nil
}

// ClaimRequest atomically moves a request to accepted on behalf of a donor.
// The WHERE clause admits exactly two cases: the request is still pending, or
// it was already claimed by this same donor (a retried accept). Any other
// state leaves zero rows affected and the claim is reported lost.
func (repo *requestRepository) ClaimRequest(ctx context.Context, requestID, donorID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("id = ?", requestID).
		Where("status = ? OR (status = ? AND accepted_donor_id = ?)",
			string(entity.RequestStatusPending), string(entity.RequestStatusAccepted), donorID).
		Updates(map[string]interface{}{
			"status":            string(entity.RequestStatusAccepted),
			"accepted_donor_id": donorID,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to claim blood request")
	}

	return result.RowsAffected > 0, nil
}

// MarkRequestFulfilled sets the request status to fulfilled. Allowed from any
// prior status so the receiver can close out their side unconditionally.
func (repo *requestRepository) MarkRequestFulfilled(ctx context.Context, requestID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("id = ?", requestID).
		Update("status", string(entity.RequestStatusFulfilled))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark blood request fulfilled")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// DeleteRequest soft-deletes a request.
func (repo *requestRepository) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RequestModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete blood request")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}
