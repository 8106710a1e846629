package impl

import (
	"context"
	"testing"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/service"
	"lifeline/internal/errors"
	mockRepo "lifeline/internal/mocks/repository"
	mockService "lifeline/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDispatchNotifier_PersistsAndPublishes(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	notifier := NewDispatchNotifier(notificationRepo, publisher, newTestLogger())

	ctx := context.Background()
	toUserID := uuid.New()
	fromUserID := uuid.New()
	matchID := uuid.New()

	var persisted *entity.Notification
	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			persisted = notification
		}).
		Return(nil)

	var published *service.MatchEvent
	publisher.EXPECT().
		PublishMatchEvent(ctx, mock.AnythingOfType("*service.MatchEvent")).
		Run(func(_ context.Context, event *service.MatchEvent) {
			published = event
		}).
		Return(nil)

	notifier.Notify(ctx, &entity.Notification{
		ToUserID:   toUserID,
		FromUserID: &fromUserID,
		MatchID:    &matchID,
		Type:       entity.NotificationTypeMatchAccepted,
		Message:    "accepted",
	})

	require.NotNil(t, persisted)
	assert.NotEqual(t, uuid.Nil, persisted.ID)
	assert.False(t, persisted.CreatedAt.IsZero())
	assert.False(t, persisted.Read)

	require.NotNil(t, published)
	assert.Equal(t, persisted.ID.String(), published.NotificationID)
	assert.Equal(t, toUserID.String(), published.ToUserID)
	assert.Equal(t, fromUserID.String(), published.FromUserID)
	assert.Equal(t, matchID.String(), published.MatchID)
	assert.Equal(t, entity.NotificationTypeMatchAccepted, published.Type)
}

func TestDispatchNotifier_PersistFailureSkipsPublish(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	notifier := NewDispatchNotifier(notificationRepo, publisher, newTestLogger())

	ctx := context.Background()

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(errors.New("insert failed"))

	// Must not panic and must not publish; failures here never propagate.
	notifier.Notify(ctx, &entity.Notification{
		ToUserID: uuid.New(),
		Type:     entity.NotificationTypeMatchRejected,
		Message:  "rejected",
	})
}

func TestDispatchNotifier_PublishFailureIsSwallowed(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	notifier := NewDispatchNotifier(notificationRepo, publisher, newTestLogger())

	ctx := context.Background()

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	publisher.EXPECT().
		PublishMatchEvent(ctx, mock.AnythingOfType("*service.MatchEvent")).
		Return(errors.New("broker down"))

	notifier.Notify(ctx, &entity.Notification{
		ToUserID: uuid.New(),
		Type:     entity.NotificationTypeDonationCompleted,
		Message:  "completed",
	})
}
