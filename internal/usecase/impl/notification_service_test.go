package impl

import (
	"context"
	"testing"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	mockRepo "lifeline/internal/mocks/repository"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service usecase.NotificationUsecase
	repos   *repoFixtures
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	repos := newRepoFixtures(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	stubTransaction(txManager, repos)

	service := NewNotificationService(txManager, newTestConfig(), newTestLogger())

	return notificationServiceFixtures{
		service: service,
		repos:   repos,
	}
}

func TestNotificationService_ListNotifications_AppliesPageDefaults(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Notification{{ID: uuid.New(), ToUserID: userID}}

	fx.repos.notificationRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, defaultNotificationPageSize, 0).
		Return(expected, nil)

	notifications, err := fx.service.ListNotifications(ctx, userID, 0, -5)

	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}

func TestNotificationService_ListNotifications_CapsPageSize(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.repos.notificationRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, maxNotificationPageSize, 10).
		Return(nil, nil)

	_, err := fx.service.ListNotifications(ctx, userID, 5000, 10)

	require.NoError(t, err)
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notification := &entity.Notification{ID: uuid.New(), ToUserID: userID}

	fx.repos.notificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).
		Return(notification, nil)
	fx.repos.notificationRepo.EXPECT().MarkNotificationRead(ctx, notification.ID).Return(nil)

	require.NoError(t, fx.service.MarkRead(ctx, userID, notification.ID))
}

func TestNotificationService_MarkRead_OtherUsersNotificationForbidden(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	notification := &entity.Notification{ID: uuid.New(), ToUserID: uuid.New()}

	fx.repos.notificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).
		Return(notification, nil)

	err := fx.service.MarkRead(ctx, uuid.New(), notification.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestNotificationService_DeleteNotification_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notification := &entity.Notification{ID: uuid.New(), ToUserID: userID}

	fx.repos.notificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).
		Return(notification, nil)
	fx.repos.notificationRepo.EXPECT().DeleteNotification(ctx, notification.ID).Return(nil)

	require.NoError(t, fx.service.DeleteNotification(ctx, userID, notification.ID))
}
