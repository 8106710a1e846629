package impl

import (
	"context"
	"testing"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	mockRepo "lifeline/internal/mocks/repository"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service usecase.ProfileUsecase
	repos   *repoFixtures
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	repos := newRepoFixtures(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	stubTransaction(txManager, repos)

	service := NewProfileService(txManager, newTestConfig(), newTestLogger())

	return profileServiceFixtures{
		service: service,
		repos:   repos,
	}
}

func TestProfileService_UpsertProfile_CreatesUnavailable(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.repos.userRepo.EXPECT().FindUserByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	var created *entity.User
	fx.repos.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			created = user
		}).
		Return(nil)

	user, err := fx.service.UpsertProfile(ctx, userID, &usecase.UpsertProfileInput{
		Name:       "Alex Chen",
		Email:      "alex@example.com",
		BloodGroup: "AB-",
		City:       " Taipei ",
	})

	require.NoError(t, err)
	assert.Equal(t, created, user)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, entity.BloodGroupABNeg, user.BloodGroup)
	assert.Equal(t, "taipei", user.City)
	assert.False(t, user.Available, "new profiles must start unavailable")
}

func TestProfileService_UpsertProfile_UpdatesEditableFieldsOnly(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	existing := newTestDonor(entity.BloodGroupAPos, 25.05, 121.55)
	existing.Available = true

	fx.repos.userRepo.EXPECT().FindUserByID(ctx, existing.ID).Return(existing, nil)
	fx.repos.userRepo.EXPECT().UpdateUser(ctx, existing).Return(nil)

	user, err := fx.service.UpsertProfile(ctx, existing.ID, &usecase.UpsertProfileInput{
		Name:       "New Name",
		Email:      "new@example.com",
		BloodGroup: "O-",
		City:       "kaohsiung",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
	assert.Equal(t, entity.BloodGroupONeg, user.BloodGroup)
	assert.Equal(t, "kaohsiung", user.City)
	assert.True(t, user.Available, "availability is engine-owned and untouched by upsert")
}

func TestProfileService_UpsertProfile_InvalidBloodGroup(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.UpsertProfile(context.Background(), uuid.New(), &usecase.UpsertProfileInput{
		Name:       "Alex",
		BloodGroup: "X+",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBloodGroup)
}

func TestProfileService_SetAvailability(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.repos.userRepo.EXPECT().UpdateAvailability(ctx, userID, true).Return(nil)

	require.NoError(t, fx.service.SetAvailability(ctx, userID, true))
}

func TestProfileService_SetAvailability_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.repos.userRepo.EXPECT().UpdateAvailability(ctx, userID, false).
		Return(repository.ErrUserNotFound)

	err := fx.service.SetAvailability(ctx, userID, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateLocation_StampsCaptureTime(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.repos.userRepo.EXPECT().
		UpdateLocation(ctx, userID, mock.MatchedBy(func(location entity.GeoLocation) bool {
			return location.Latitude == 25.05 && location.Longitude == 121.55 && !location.CapturedAt.IsZero()
		})).
		Return(nil)

	err := fx.service.UpdateLocation(ctx, userID, &usecase.UpdateLocationInput{
		Latitude:  25.05,
		Longitude: 121.55,
	})

	require.NoError(t, err)
}

func TestProfileService_RegisterDevice_EmptyTokenRejected(t *testing.T) {
	fx := createTestProfileService(t)

	err := fx.service.RegisterDevice(context.Background(), uuid.New(), "  ")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_RegisterDevice_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.repos.userRepo.EXPECT().UpdateFCMToken(ctx, userID, "token-123").Return(nil)

	require.NoError(t, fx.service.RegisterDevice(ctx, userID, "token-123"))
}
