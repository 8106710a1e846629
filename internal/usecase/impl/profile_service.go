package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lifeline/config"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	executor *storeExecutor
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		executor: newStoreExecutor(txManager, cfg.Store, logger),
		logger:   logger,
	}
}

// UpsertProfile creates the caller's profile on first use, or updates the
// user-editable fields afterwards. Engine-owned fields (availability,
// cooldown, location) are never touched here.
func (srv *profileService) UpsertProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpsertProfileInput) (*entity.User, error) {
	srv.logger.Info("Upserting profile", "userID", userID)

	bloodGroup, ok := entity.ParseBloodGroup(input.BloodGroup)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrInvalidBloodGroup, "unknown blood group %q", input.BloodGroup)
	}
	city := strings.ToLower(strings.TrimSpace(input.City))

	var user *entity.User

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, err := userRepo.FindUserByID(ctx, userID)
		if err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to find user")
			}

			// First use: new profiles start unavailable until the donor
			// opts in.
			now := time.Now()
			user = &entity.User{
				ID:         userID,
				Email:      input.Email,
				Name:       input.Name,
				BloodGroup: bloodGroup,
				City:       city,
				Available:  false,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := userRepo.CreateUser(ctx, user); err != nil {
				return errors.Wrap(err, "failed to create user")
			}

			return nil
		}

		found.Name = input.Name
		found.Email = input.Email
		found.BloodGroup = bloodGroup
		found.City = city
		found.UpdatedAt = time.Now()

		if err := userRepo.UpdateUser(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert profile")
	}

	return user, nil
}

// GetProfile retrieves the caller's profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return user, nil
}

// SetAvailability sets the donor-controlled availability flag.
func (srv *profileService) SetAvailability(ctx context.Context, userID uuid.UUID, available bool) error {
	srv.logger.Info("Setting availability", "userID", userID, "available", available)

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().UpdateAvailability(ctx, userID, available); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to update availability")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to set availability")
	}

	return nil
}

// UpdateLocation records freshly captured coordinates for the caller.
func (srv *profileService) UpdateLocation(ctx context.Context, userID uuid.UUID, input *usecase.UpdateLocationInput) error {
	srv.logger.Debug("Updating location", "userID", userID)

	location := entity.GeoLocation{
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		CapturedAt: time.Now(),
	}

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().UpdateLocation(ctx, userID, location); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to update location")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to update location")
	}

	return nil
}

// RegisterDevice records the caller's device token for push delivery.
func (srv *profileService) RegisterDevice(ctx context.Context, userID uuid.UUID, fcmToken string) error {
	srv.logger.Info("Registering device", "userID", userID)

	if strings.TrimSpace(fcmToken) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "device token must not be empty")
	}

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().UpdateFCMToken(ctx, userID, fcmToken); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to update device token")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to register device")
	}

	return nil
}
