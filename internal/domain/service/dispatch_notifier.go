package service

import (
	"context"

	"lifeline/internal/domain/entity"
)

// DispatchNotifier persists a notification and emits the corresponding match
// event. Delivery is at-least-once and best-effort: implementations never
// return an error to the triggering state transition — failures are logged
// and swallowed.
type DispatchNotifier interface {
	// Notify persists the notification and publishes a MatchEvent for it.
	Notify(ctx context.Context, notification *entity.Notification)
}
