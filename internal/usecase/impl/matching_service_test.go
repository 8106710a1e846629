package impl

import (
	"context"
	"testing"
	"time"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	"lifeline/internal/errors"
	mockRepo "lifeline/internal/mocks/repository"
	mockService "lifeline/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Taipei 101 as the request origin in these tests.
const (
	requestLat = 25.0340
	requestLng = 121.5645
)

func newTestRequest(requesterID uuid.UUID) *entity.BloodRequest {
	return &entity.BloodRequest{
		ID:          uuid.New(),
		RequesterID: requesterID,
		BloodGroup:  entity.BloodGroupAPos,
		Status:      entity.RequestStatusPending,
		Location: entity.GeoLocation{
			Latitude:   requestLat,
			Longitude:  requestLng,
			CapturedAt: time.Now(),
		},
	}
}

func newTestDonor(group entity.BloodGroup, lat, lng float64) *entity.User {
	return &entity.User{
		ID:         uuid.New(),
		Name:       "Donor",
		BloodGroup: group,
		Available:  true,
		Location: &entity.GeoLocation{
			Latitude:   lat,
			Longitude:  lng,
			CapturedAt: time.Now(),
		},
	}
}

func TestMatchingService_FindCandidates_FiltersIneligibleDonors(t *testing.T) {
	requesterID := uuid.New()
	request := newTestRequest(requesterID)
	now := time.Now()

	eligible := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)

	unavailable := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)
	unavailable.Available = false

	incompatible := newTestDonor(entity.BloodGroupBPos, 25.05, 121.55)

	stale := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)
	stale.Location.CapturedAt = now.Add(-time.Hour)

	noLocation := newTestDonor(entity.BloodGroupONeg, 0, 0)
	noLocation.Location = nil

	cooldownUntil := now.Add(24 * time.Hour)
	onCooldown := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)
	onCooldown.CooldownUntil = &cooldownUntil

	// Kaohsiung, roughly 300 km away.
	tooFar := newTestDonor(entity.BloodGroupONeg, 22.6273, 120.3014)

	self := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)
	self.ID = requesterID

	fixtures := newRepoFixtures(t)
	fixtures.requestRepo.EXPECT().FindRequestByID(mock.Anything, request.ID).Return(request, nil)
	fixtures.userRepo.EXPECT().ListDonorCandidates(mock.Anything).Return([]*entity.User{
		eligible, unavailable, incompatible, stale, noLocation, onCooldown, tooFar, self,
	}, nil)

	txManager := mockRepo.NewMockTransactionManager(t)
	stubTransaction(txManager, fixtures)

	svc := NewMatchingService(txManager, newTestConfig(), nil, newTestLogger())

	candidates, err := svc.FindCandidates(context.Background(), request.ID, requesterID)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, eligible.ID, candidates[0].DonorID)
	assert.Equal(t, entity.BloodGroupONeg, candidates[0].BloodGroup)
	assert.Greater(t, candidates[0].DistanceKm, 0.0)
	assert.Less(t, candidates[0].DistanceKm, 100.0)
}

func TestMatchingService_FindCandidates_RanksByDistance(t *testing.T) {
	requesterID := uuid.New()
	request := newTestRequest(requesterID)

	near := newTestDonor(entity.BloodGroupAPos, 25.04, 121.56)
	mid := newTestDonor(entity.BloodGroupONeg, 25.10, 121.60)
	far := newTestDonor(entity.BloodGroupANeg, 25.30, 121.70)

	fixtures := newRepoFixtures(t)
	fixtures.requestRepo.EXPECT().FindRequestByID(mock.Anything, request.ID).Return(request, nil)
	fixtures.userRepo.EXPECT().ListDonorCandidates(mock.Anything).
		Return([]*entity.User{far, near, mid}, nil)

	txManager := mockRepo.NewMockTransactionManager(t)
	stubTransaction(txManager, fixtures)

	svc := NewMatchingService(txManager, newTestConfig(), nil, newTestLogger())

	candidates, err := svc.FindCandidates(context.Background(), request.ID, requesterID)

	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, near.ID, candidates[0].DonorID)
	assert.Equal(t, mid.ID, candidates[1].DonorID)
	assert.Equal(t, far.ID, candidates[2].DonorID)
	assert.LessOrEqual(t, candidates[0].DistanceKm, candidates[1].DistanceKm)
	assert.LessOrEqual(t, candidates[1].DistanceKm, candidates[2].DistanceKm)
}

func TestMatchingService_FindCandidates_OnlyOwnerMaySearch(t *testing.T) {
	request := newTestRequest(uuid.New())

	fixtures := newRepoFixtures(t)
	fixtures.requestRepo.EXPECT().FindRequestByID(mock.Anything, request.ID).Return(request, nil)

	txManager := mockRepo.NewMockTransactionManager(t)
	stubTransaction(txManager, fixtures)

	svc := NewMatchingService(txManager, newTestConfig(), nil, newTestLogger())

	_, err := svc.FindCandidates(context.Background(), request.ID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestMatchingService_FindCandidates_RequestNotFound(t *testing.T) {
	requestID := uuid.New()

	fixtures := newRepoFixtures(t)
	fixtures.requestRepo.EXPECT().FindRequestByID(mock.Anything, requestID).
		Return(nil, repository.ErrRequestNotFound)

	txManager := mockRepo.NewMockTransactionManager(t)
	stubTransaction(txManager, fixtures)

	svc := NewMatchingService(txManager, newTestConfig(), nil, newTestLogger())

	_, err := svc.FindCandidates(context.Background(), requestID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
}

func TestMatchingService_FindCandidates_RouteDecoration(t *testing.T) {
	requesterID := uuid.New()
	request := newTestRequest(requesterID)
	donor := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)

	fixtures := newRepoFixtures(t)
	fixtures.requestRepo.EXPECT().FindRequestByID(mock.Anything, request.ID).Return(request, nil)
	fixtures.userRepo.EXPECT().ListDonorCandidates(mock.Anything).Return([]*entity.User{donor}, nil)

	estimator := mockService.NewMockRouteEstimator(t)
	estimator.EXPECT().
		EstimateRoutes(mock.Anything, request.Location.Point(), mock.Anything).
		Return([]*service.RouteEstimate{{DistanceKm: 3.2, DurationSeconds: 420}}, nil)

	txManager := mockRepo.NewMockTransactionManager(t)
	stubTransaction(txManager, fixtures)

	svc := NewMatchingService(txManager, newTestConfig(), estimator, newTestLogger())

	candidates, err := svc.FindCandidates(context.Background(), request.ID, requesterID)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	require.NotNil(t, candidates[0].DrivingKm)
	require.NotNil(t, candidates[0].DrivingETA)
	assert.InDelta(t, 3.2, *candidates[0].DrivingKm, 1e-9)
	assert.InDelta(t, 420.0, *candidates[0].DrivingETA, 1e-9)
}

func TestMatchingService_FindCandidates_ProviderFailureDropsDecorationOnly(t *testing.T) {
	requesterID := uuid.New()
	request := newTestRequest(requesterID)
	donor := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)

	fixtures := newRepoFixtures(t)
	fixtures.requestRepo.EXPECT().FindRequestByID(mock.Anything, request.ID).Return(request, nil)
	fixtures.userRepo.EXPECT().ListDonorCandidates(mock.Anything).Return([]*entity.User{donor}, nil)

	estimator := mockService.NewMockRouteEstimator(t)
	estimator.EXPECT().
		EstimateRoutes(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("osrm down"))

	txManager := mockRepo.NewMockTransactionManager(t)
	stubTransaction(txManager, fixtures)

	svc := NewMatchingService(txManager, newTestConfig(), estimator, newTestLogger())

	candidates, err := svc.FindCandidates(context.Background(), request.ID, requesterID)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Nil(t, candidates[0].DrivingKm)
	assert.Nil(t, candidates[0].DrivingETA)
}
