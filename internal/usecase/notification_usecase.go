package usecase

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for notification inbox use cases
type NotificationUsecase interface {
	// ListNotifications retrieves the caller's notifications, newest first,
	// with pagination.
	ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flags one of the caller's notifications as read.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// DeleteNotification removes one of the caller's notifications.
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error
}
