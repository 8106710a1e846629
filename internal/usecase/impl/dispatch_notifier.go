package impl

import (
	"context"
	"log/slog"
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"

	"github.com/google/uuid"
)

// dispatchNotifier persists notification records and publishes the matching
// event. It is fire-and-forget: persistence or publish failures are logged
// and swallowed so they can never fail the state transition that triggered
// them. At-least-once semantics; duplicates on retry are acceptable.
type dispatchNotifier struct {
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// NewDispatchNotifier is the constructor for dispatchNotifier.
func NewDispatchNotifier(
	notificationRepo repository.NotificationRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) service.DispatchNotifier {
	return &dispatchNotifier{
		notificationRepo: notificationRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

// Notify persists the notification and publishes a MatchEvent for it.
func (n *dispatchNotifier) Notify(ctx context.Context, notification *entity.Notification) {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	if err := n.notificationRepo.CreateNotification(ctx, notification); err != nil {
		n.logger.Error("failed to persist notification",
			"toUserID", notification.ToUserID,
			"type", notification.Type,
			"error", err)

		return
	}

	event := &service.MatchEvent{
		NotificationID: notification.ID.String(),
		Type:           notification.Type,
		ToUserID:       notification.ToUserID.String(),
		Message:        notification.Message,
	}
	if notification.FromUserID != nil {
		event.FromUserID = notification.FromUserID.String()
	}
	if notification.MatchID != nil {
		event.MatchID = notification.MatchID.String()
	}
	if notification.RequestID != nil {
		event.BloodRequestID = notification.RequestID.String()
	}

	if err := n.publisher.PublishMatchEvent(ctx, event); err != nil {
		n.logger.Error("failed to publish match event",
			"notificationID", notification.ID,
			"type", notification.Type,
			"error", err)
	}
}
