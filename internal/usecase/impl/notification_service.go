package impl

import (
	"context"
	"log/slog"

	"lifeline/config"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultNotificationPageSize = 50
	maxNotificationPageSize     = 100
)

// notificationService implements the NotificationUsecase interface. It only
// serves the recipient's own inbox; writes happen through the dispatch
// notifier.
type notificationService struct {
	executor *storeExecutor
	logger   *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		executor: newStoreExecutor(txManager, cfg.Store, logger),
		logger:   logger,
	}
}

// ListNotifications retrieves the caller's notifications, newest first.
func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	if limit > maxNotificationPageSize {
		limit = maxNotificationPageSize
	}
	if offset < 0 {
		offset = 0
	}

	var notifications []*entity.Notification

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewNotificationRepository().FindNotificationsByUser(ctx, userID, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list notifications")
		}
		notifications = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead flags one of the caller's notifications as read.
func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		notificationRepo := repoFactory.NewNotificationRepository()

		notification, err := notificationRepo.FindNotificationByID(ctx, notificationID)
		if err != nil {
			if errors.Is(err, repository.ErrNotificationNotFound) {
				return errors.Wrap(domainerrors.ErrNotificationNotFound, "notification not found")
			}

			return errors.Wrap(err, "failed to find notification")
		}

		if notification.ToUserID != userID {
			return errors.Wrap(domainerrors.ErrForbidden, "notification belongs to another user")
		}

		if err := notificationRepo.MarkNotificationRead(ctx, notificationID); err != nil {
			return errors.Wrap(err, "failed to mark notification read")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// DeleteNotification removes one of the caller's notifications.
func (srv *notificationService) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		notificationRepo := repoFactory.NewNotificationRepository()

		notification, err := notificationRepo.FindNotificationByID(ctx, notificationID)
		if err != nil {
			if errors.Is(err, repository.ErrNotificationNotFound) {
				return errors.Wrap(domainerrors.ErrNotificationNotFound, "notification not found")
			}

			return errors.Wrap(err, "failed to find notification")
		}

		if notification.ToUserID != userID {
			return errors.Wrap(domainerrors.ErrForbidden, "notification belongs to another user")
		}

		if err := notificationRepo.DeleteNotification(ctx, notificationID); err != nil {
			return errors.Wrap(err, "failed to delete notification")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}
