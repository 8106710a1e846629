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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateUser persists a new user profile.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUser
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateUser persists changes to the user-editable profile fields only.
// Engine-owned fields (availability, location, cooldown, device token) have
// their own dedicated writes and are never touched here.
func (repo *userRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"email":       user.Email,
			"name":        user.Name,
			"blood_group": string(user.BloodGroup),
			"city":        user.City,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateUser
		}

		return errors.Wrap(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// FindUserByID retrieves a single user by their unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return userM.ToDomain(), nil
}

// ListDonorCandidates retrieves every user currently flagged available.
// Staleness, cooldown, compatibility and distance are evaluated by the
// matching service on top of this coarse pre-filter.
func (repo *userRepository) ListDonorCandidates(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("available = ?", true).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list donor candidates")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, userM.ToDomain())
	}

	return users, nil
}

// UpdateAvailability sets the donor-controlled availability flag.
func (repo *userRepository) UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("available", available)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update availability")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateLocation records freshly captured coordinates for a user.
func (repo *userRepository) UpdateLocation(ctx context.Context, id uuid.UUID, location entity.GeoLocation) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"latitude":             location.Latitude,
			"longitude":            location.Longitude,
			"location_captured_at": location.CapturedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateFCMToken records the device token used for push delivery.
func (repo *userRepository) UpdateFCMToken(ctx context.Context, id uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("fcm_token", token)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update fcm token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SetDonationCooldown records a completed donation in one field-level write:
// last donation moment, cooldown expiry, and the automatic availability
// opt-out. A concurrent profile save can never clobber these fields.
func (repo *userRepository) SetDonationCooldown(ctx context.Context, id uuid.UUID, donatedAt, cooldownUntil time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_donation_at": donatedAt,
			"cooldown_until":   cooldownUntil,
			"available":        false,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set donation cooldown")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
