package impl

import (
	"context"
	"testing"
	"time"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	mockRepo "lifeline/internal/mocks/repository"
	mockService "lifeline/internal/mocks/service"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type requestServiceFixtures struct {
	service   usecase.RequestUsecase
	repos     *repoFixtures
	publisher *mockService.MockEventPublisher
}

func createTestRequestService(t *testing.T) requestServiceFixtures {
	repos := newRepoFixtures(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	stubTransaction(txManager, repos)

	publisher := mockService.NewMockEventPublisher(t)
	service := NewRequestService(txManager, newTestConfig(), publisher, newTestLogger())

	return requestServiceFixtures{
		service:   service,
		repos:     repos,
		publisher: publisher,
	}
}

func TestRequestService_CreateRequest_Success(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	requesterID := uuid.New()

	var created *entity.BloodRequest
	fx.repos.requestRepo.EXPECT().
		CreateRequest(ctx, mock.AnythingOfType("*entity.BloodRequest")).
		Run(func(_ context.Context, request *entity.BloodRequest) {
			created = request
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishMatchEvent(ctx, mock.MatchedBy(func(event *service.MatchEvent) bool {
			return event.Type == entity.NotificationTypeRequestCreated
		})).
		Return(nil)

	request, err := fx.service.CreateRequest(ctx, requesterID, &usecase.CreateRequestInput{
		BloodGroup:   "A+",
		Units:        2,
		RequiredBy:   time.Now().Add(48 * time.Hour),
		PatientName:  "Jordan Lee",
		HospitalName: "City General",
		City:         "  Taipei ",
		Latitude:     25.0340,
		Longitude:    121.5645,
	})

	require.NoError(t, err)
	assert.Equal(t, created, request)
	assert.Equal(t, entity.RequestStatusPending, request.Status)
	assert.Equal(t, entity.BloodGroupAPos, request.BloodGroup)
	assert.Equal(t, "taipei", request.City)
	assert.Equal(t, requesterID, request.RequesterID)
	assert.False(t, request.Location.CapturedAt.IsZero())
}

func TestRequestService_CreateRequest_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()

	fx.repos.requestRepo.EXPECT().
		CreateRequest(ctx, mock.AnythingOfType("*entity.BloodRequest")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishMatchEvent(ctx, mock.AnythingOfType("*service.MatchEvent")).
		Return(assert.AnError)

	_, err := fx.service.CreateRequest(ctx, uuid.New(), &usecase.CreateRequestInput{
		BloodGroup: "O-",
		Units:      1,
		City:       "taipei",
	})

	require.NoError(t, err)
}

func TestRequestService_CreateRequest_InvalidBloodGroup(t *testing.T) {
	fx := createTestRequestService(t)

	_, err := fx.service.CreateRequest(context.Background(), uuid.New(), &usecase.CreateRequestInput{
		BloodGroup: "C+",
		Units:      1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBloodGroup)
}

func TestRequestService_CreateRequest_NonPositiveUnits(t *testing.T) {
	fx := createTestRequestService(t)

	_, err := fx.service.CreateRequest(context.Background(), uuid.New(), &usecase.CreateRequestInput{
		BloodGroup: "A+",
		Units:      0,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRequestService_ListOpenRequests_UsesDonorCityAndRecipients(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	donor := newTestDonor(entity.BloodGroupAPos, 25.05, 121.55)
	donor.City = "taipei"

	open := []*entity.BloodRequest{newTestRequest(uuid.New())}

	fx.repos.userRepo.EXPECT().FindUserByID(ctx, donor.ID).Return(donor, nil)
	fx.repos.requestRepo.EXPECT().
		FindOpenRequests(ctx, "taipei", donor.BloodGroup.Recipients()).
		Return(open, nil)

	requests, err := fx.service.ListOpenRequests(ctx, donor.ID)

	require.NoError(t, err)
	assert.Equal(t, open, requests)
}

func TestRequestService_FulfillRequest_Success(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	receiverID := uuid.New()
	request := newTestRequest(receiverID)
	request.Status = entity.RequestStatusAccepted

	fx.repos.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	fx.repos.requestRepo.EXPECT().MarkRequestFulfilled(ctx, request.ID).Return(nil)

	fulfilled, err := fx.service.FulfillRequest(ctx, request.ID, receiverID)

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusFulfilled, fulfilled.Status)
}

func TestRequestService_FulfillRequest_OnlyOwner(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	request := newTestRequest(uuid.New())

	fx.repos.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)

	_, err := fx.service.FulfillRequest(ctx, request.ID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRequestService_DeleteRequest_OnlyOwner(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	request := newTestRequest(uuid.New())

	fx.repos.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)

	err := fx.service.DeleteRequest(ctx, request.ID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRequestService_GetRequest_NotFound(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	requestID := uuid.New()

	fx.repos.requestRepo.EXPECT().FindRequestByID(ctx, requestID).
		Return(nil, repository.ErrRequestNotFound)

	_, err := fx.service.GetRequest(ctx, requestID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
}
