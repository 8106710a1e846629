package impl

import (
	"context"
	"testing"
	"time"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	mockRepo "lifeline/internal/mocks/repository"
	mockService "lifeline/internal/mocks/service"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type matchServiceFixtures struct {
	service  usecase.MatchUsecase
	repos    *repoFixtures
	notifier *mockService.MockDispatchNotifier
}

func createTestMatchService(t *testing.T) matchServiceFixtures {
	repos := newRepoFixtures(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	stubTransaction(txManager, repos)

	notifier := mockService.NewMockDispatchNotifier(t)
	service := NewMatchService(txManager, newTestConfig(), notifier, newTestLogger())

	return matchServiceFixtures{
		service:  service,
		repos:    repos,
		notifier: notifier,
	}
}

func newPendingMatch(requestID, donorID, receiverID uuid.UUID) *entity.Match {
	return &entity.Match{
		ID:         uuid.New(),
		RequestID:  requestID,
		DonorID:    donorID,
		ReceiverID: receiverID,
		BloodGroup: entity.BloodGroupONeg,
		Status:     entity.MatchStatusPending,
		CreatedAt:  time.Now(),
	}
}

func TestMatchService_ProposeMatch_Success(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	receiverID := uuid.New()
	request := newTestRequest(receiverID)
	donor := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)

	fx.repos.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	fx.repos.userRepo.EXPECT().FindUserByID(ctx, donor.ID).Return(donor, nil)
	fx.repos.matchRepo.EXPECT().
		CreateMatch(ctx, mock.AnythingOfType("*entity.Match")).
		Return(nil)

	match, err := fx.service.ProposeMatch(ctx, receiverID, &usecase.ProposeMatchInput{
		RequestID: request.ID,
		DonorID:   donor.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.MatchStatusPending, match.Status)
	assert.Equal(t, donor.ID, match.DonorID)
	assert.Equal(t, receiverID, match.ReceiverID)
	assert.Equal(t, request.ID, match.RequestID)
	assert.Equal(t, donor.BloodGroup, match.BloodGroup)
}

func TestMatchService_ProposeMatch_DuplicateActiveMatch(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	receiverID := uuid.New()
	request := newTestRequest(receiverID)
	donor := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)

	fx.repos.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	fx.repos.userRepo.EXPECT().FindUserByID(ctx, donor.ID).Return(donor, nil)
	fx.repos.matchRepo.EXPECT().
		CreateMatch(ctx, mock.AnythingOfType("*entity.Match")).
		Return(repository.ErrDuplicateActiveMatch)

	_, err := fx.service.ProposeMatch(ctx, receiverID, &usecase.ProposeMatchInput{
		RequestID: request.ID,
		DonorID:   donor.ID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateMatch)
}

func TestMatchService_ProposeMatch_OnlyOwnerMayPropose(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	request := newTestRequest(uuid.New())

	fx.repos.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)

	_, err := fx.service.ProposeMatch(ctx, uuid.New(), &usecase.ProposeMatchInput{
		RequestID: request.ID,
		DonorID:   uuid.New(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestMatchService_AcceptMatch_FirstAcceptWins(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	receiverID := uuid.New()
	donor := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)
	match := newPendingMatch(uuid.New(), donor.ID, receiverID)

	fx.repos.matchRepo.EXPECT().FindMatchByID(ctx, match.ID).Return(match, nil)
	fx.repos.requestRepo.EXPECT().ClaimRequest(ctx, match.RequestID, donor.ID).Return(true, nil)
	fx.repos.matchRepo.EXPECT().
		UpdateMatchStatusIf(ctx, match.ID, entity.MatchStatusPending, entity.MatchStatusAccepted).
		Return(true, nil)
	fx.repos.userRepo.EXPECT().
		UpdateLocation(ctx, donor.ID, mock.AnythingOfType("entity.GeoLocation")).
		Return(nil)
	fx.repos.userRepo.EXPECT().FindUserByID(ctx, donor.ID).Return(donor, nil)
	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.ToUserID == receiverID && n.Type == entity.NotificationTypeMatchAccepted
		})).
		Return()

	accepted, err := fx.service.AcceptMatch(ctx, match.ID, donor.ID, &usecase.AcceptMatchInput{
		Latitude:  25.05,
		Longitude: 121.55,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.MatchStatusAccepted, accepted.Status)
}

func TestMatchService_AcceptMatch_LoserGetsRequestAlreadyMatched(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	donor := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)
	match := newPendingMatch(uuid.New(), donor.ID, uuid.New())

	fx.repos.matchRepo.EXPECT().FindMatchByID(ctx, match.ID).Return(match, nil)
	fx.repos.requestRepo.EXPECT().ClaimRequest(ctx, match.RequestID, donor.ID).Return(false, nil)

	_, err := fx.service.AcceptMatch(ctx, match.ID, donor.ID, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRequestAlreadyMatched)
}

func TestMatchService_AcceptMatch_RetryByWinnerIsIdempotent(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	receiverID := uuid.New()
	donor := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)
	match := newPendingMatch(uuid.New(), donor.ID, receiverID)
	match.Status = entity.MatchStatusAccepted

	fx.repos.matchRepo.EXPECT().FindMatchByID(ctx, match.ID).Return(match, nil)
	// The conditional claim recognizes the winning donor and succeeds again.
	fx.repos.requestRepo.EXPECT().ClaimRequest(ctx, match.RequestID, donor.ID).Return(true, nil)
	fx.repos.userRepo.EXPECT().FindUserByID(ctx, donor.ID).Return(donor, nil)
	fx.notifier.EXPECT().Notify(ctx, mock.AnythingOfType("*entity.Notification")).Return()

	accepted, err := fx.service.AcceptMatch(ctx, match.ID, donor.ID, nil)

	require.NoError(t, err)
	assert.Equal(t, entity.MatchStatusAccepted, accepted.Status)
}

func TestMatchService_AcceptMatch_OnlyDonorMayAccept(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	match := newPendingMatch(uuid.New(), uuid.New(), uuid.New())

	fx.repos.matchRepo.EXPECT().FindMatchByID(ctx, match.ID).Return(match, nil)

	_, err := fx.service.AcceptMatch(ctx, match.ID, uuid.New(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestMatchService_AcceptMatch_TerminalMatchIsWrongState(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	donor := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)
	match := newPendingMatch(uuid.New(), donor.ID, uuid.New())
	match.Status = entity.MatchStatusRejected

	fx.repos.matchRepo.EXPECT().FindMatchByID(ctx, match.ID).Return(match, nil)

	_, err := fx.service.AcceptMatch(ctx, match.ID, donor.ID, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWrongState)
}

func TestMatchService_RejectMatch_Success(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	receiverID := uuid.New()
	donor := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)
	match := newPendingMatch(uuid.New(), donor.ID, receiverID)

	fx.repos.matchRepo.EXPECT().FindMatchByID(ctx, match.ID).Return(match, nil)
	fx.repos.matchRepo.EXPECT().
		UpdateMatchStatusIf(ctx, match.ID, entity.MatchStatusPending, entity.MatchStatusRejected).
		Return(true, nil)
	fx.repos.userRepo.EXPECT().FindUserByID(ctx, donor.ID).Return(donor, nil)
	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.ToUserID == receiverID && n.Type == entity.NotificationTypeMatchRejected
		})).
		Return()

	rejected, err := fx.service.RejectMatch(ctx, match.ID, donor.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.MatchStatusRejected, rejected.Status)
}

func TestMatchService_RejectMatch_AcceptedMatchIsWrongState(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	donor := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)
	match := newPendingMatch(uuid.New(), donor.ID, uuid.New())
	match.Status = entity.MatchStatusAccepted

	fx.repos.matchRepo.EXPECT().FindMatchByID(ctx, match.ID).Return(match, nil).Twice()
	fx.repos.matchRepo.EXPECT().
		UpdateMatchStatusIf(ctx, match.ID, entity.MatchStatusPending, entity.MatchStatusRejected).
		Return(false, nil)

	_, err := fx.service.RejectMatch(ctx, match.ID, donor.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWrongState)
}

func TestMatchService_CompleteMatch_AppliesCooldown(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	receiverID := uuid.New()
	donor := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)
	requestID := uuid.New()
	match := newPendingMatch(requestID, donor.ID, receiverID)
	match.Status = entity.MatchStatusAccepted

	var recordedCompletedAt, recordedCooldownUntil time.Time

	fx.repos.matchRepo.EXPECT().
		FindMatchByRequestAndDonor(ctx, requestID, donor.ID,
			entity.MatchStatusAccepted, entity.MatchStatusCompleted).
		Return(match, nil)
	fx.repos.matchRepo.EXPECT().
		MarkMatchCompleted(ctx, match.ID, mock.AnythingOfType("time.Time")).
		Return(true, nil)
	fx.repos.userRepo.EXPECT().
		SetDonationCooldown(ctx, donor.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Run(func(_ context.Context, _ uuid.UUID, donatedAt, cooldownUntil time.Time) {
			recordedCompletedAt = donatedAt
			recordedCooldownUntil = cooldownUntil
		}).
		Return(nil)
	fx.repos.userRepo.EXPECT().FindUserByID(ctx, donor.ID).Return(donor, nil)
	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.ToUserID == receiverID && n.Type == entity.NotificationTypeDonationCompleted
		})).
		Return()

	completed, err := fx.service.CompleteMatch(ctx, requestID, donor.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.MatchStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, recordedCompletedAt.Add(90*24*time.Hour), recordedCooldownUntil)
}

func TestMatchService_CompleteMatch_RetryReusesRecordedTimestamp(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	receiverID := uuid.New()
	donor := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)
	requestID := uuid.New()

	completedAt := time.Now().Add(-time.Hour)
	match := newPendingMatch(requestID, donor.ID, receiverID)
	match.Status = entity.MatchStatusCompleted
	match.CompletedAt = &completedAt

	fx.repos.matchRepo.EXPECT().
		FindMatchByRequestAndDonor(ctx, requestID, donor.ID,
			entity.MatchStatusAccepted, entity.MatchStatusCompleted).
		Return(match, nil)
	// The cooldown is re-derived from the recorded completion, never from
	// the retry's wall clock.
	fx.repos.userRepo.EXPECT().
		SetDonationCooldown(ctx, donor.ID, completedAt, completedAt.Add(90*24*time.Hour)).
		Return(nil)
	fx.repos.userRepo.EXPECT().FindUserByID(ctx, donor.ID).Return(donor, nil)
	fx.notifier.EXPECT().Notify(ctx, mock.AnythingOfType("*entity.Notification")).Return()

	completed, err := fx.service.CompleteMatch(ctx, requestID, donor.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.MatchStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	assert.True(t, completed.CompletedAt.Equal(completedAt))
}

func TestMatchService_CompleteMatch_NoActiveMatch(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	requestID := uuid.New()
	donorID := uuid.New()

	fx.repos.matchRepo.EXPECT().
		FindMatchByRequestAndDonor(ctx, requestID, donorID,
			entity.MatchStatusAccepted, entity.MatchStatusCompleted).
		Return(nil, repository.ErrMatchNotFound)

	_, err := fx.service.CompleteMatch(ctx, requestID, donorID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveMatch)
}

func TestMatchService_ListDonorMatches_JoinsRequestsAndDistance(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	donor := newTestDonor(entity.BloodGroupONeg, 25.05, 121.55)
	request := newTestRequest(uuid.New())
	match := newPendingMatch(request.ID, donor.ID, request.RequesterID)

	deletedRequestMatch := newPendingMatch(uuid.New(), donor.ID, uuid.New())

	fx.repos.userRepo.EXPECT().FindUserByID(ctx, donor.ID).Return(donor, nil)
	fx.repos.matchRepo.EXPECT().FindMatchesByDonor(ctx, donor.ID).
		Return([]*entity.Match{match, deletedRequestMatch}, nil)
	fx.repos.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	fx.repos.requestRepo.EXPECT().FindRequestByID(ctx, deletedRequestMatch.RequestID).
		Return(nil, repository.ErrRequestNotFound)

	views, err := fx.service.ListDonorMatches(ctx, donor.ID)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, match.ID, views[0].Match.ID)
	assert.Equal(t, request.ID, views[0].Request.ID)
	require.NotNil(t, views[0].DistanceKm)
	assert.Greater(t, *views[0].DistanceKm, 0.0)
}
