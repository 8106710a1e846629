// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// matchRepository implements the repository.MatchRepository interface.
//
// Every status transition is a conditional UPDATE keyed on the expected
// current status. Concurrent transitions race on the database row, and
// exactly one wins; the caller inspects the returned bool instead of
// trusting a previously read status.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// CreateMatch persists a new match in pending status. The partial unique
// index on (donor_id, receiver_id, request_id) rejects a second active match
// for the same triple, which surfaces here as ErrDuplicateActiveMatch.
func (repo *matchRepository) CreateMatch(ctx context.Context, match *entity.Match) error {
	matchM := model.FromMatchDomain(match)

	if err := repo.db.WithContext(ctx).Create(matchM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateActiveMatch
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid donor, receiver or request reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create match")
	}

	// Update the entity with generated values
	match.ID = matchM.ID
	match.CreatedAt = matchM.CreatedAt

	return nil
}

// FindMatchByID retrieves a match by its unique ID.
func (repo *matchRepository) FindMatchByID(ctx context.Context, id uuid.UUID) (*entity.Match, error) {
	var matchM model.MatchModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&matchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find match by ID")
	}

	return matchM.ToDomain(), nil
}

// FindMatchesByDonor retrieves all matches where the user is the donor, newest first.
func (repo *matchRepository) FindMatchesByDonor(ctx context.Context, donorID uuid.UUID) ([]*entity.Match, error) {
	var matchModels []*model.MatchModel

	if err := repo.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Find(&matchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find matches by donor")
	}

	matches := make([]*entity.Match, 0, len(matchModels))
	for _, matchM := range matchModels {
		matches = append(matches, matchM.ToDomain())
	}

	return matches, nil
}

// FindMatchByRequestAndDonor retrieves the match for a request/donor pair
// holding one of the given statuses.
func (repo *matchRepository) FindMatchByRequestAndDonor(ctx context.Context, requestID, donorID uuid.UUID, statuses ...entity.MatchStatus) (*entity.Match, error) {
	query := repo.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Where("donor_id = ?", donorID)

	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, string(status))
		}
		query = query.Where("status IN ?", values)
	}

	var matchM model.MatchModel

	if err := query.First(&matchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find match by request and donor")
	}

	return matchM.ToDomain(), nil
}

// UpdateMatchStatusIf atomically transitions a match from an expected status
// to a new one. Zero rows affected means the match was not in the expected
// status; the caller re-reads to find out what happened.
func (repo *matchRepository) UpdateMatchStatusIf(ctx context.Context, id uuid.UUID, from, to entity.MatchStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MatchModel{}).
		Where("id = ?", id).
		Where("status = ?", string(from)).
		Update("status", string(to))

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update match status")
	}

	return result.RowsAffected > 0, nil
}

// MarkMatchCompleted atomically transitions an accepted match to completed,
// recording the completion timestamp alongside the status flip.
func (repo *matchRepository) MarkMatchCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MatchModel{}).
		Where("id = ?", id).
		Where("status = ?", string(entity.MatchStatusAccepted)).
		Updates(map[string]interface{}{
			"status":       string(entity.MatchStatusCompleted),
			"completed_at": completedAt,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark match completed")
	}

	return result.RowsAffected > 0, nil
}
