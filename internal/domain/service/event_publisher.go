package service

import (
	"context"
)

// MatchEvent is published on every match state transition. Consumers (the
// dispatch worker, live UI feeds) subscribe to the channel; the engine only
// emits and never manages subscriber fan-out.
type MatchEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing.
	NotificationID string `json:"notification_id"`
	MatchID        string `json:"match_id,omitempty"`
	BloodRequestID string `json:"blood_request_id,omitempty"`
	Type           string `json:"type"` // match_accepted, match_rejected, donation_completed, request_created.
	ToUserID       string `json:"to_user_id"`
	FromUserID     string `json:"from_user_id,omitempty"`
	Message        string `json:"message"`
}

// EventPublisher defines the interface for publishing events to a message queue.
// Delivery is at-least-once; duplicate events on retry are tolerated.
type EventPublisher interface {
	// PublishMatchEvent publishes a match transition event for async processing.
	PublishMatchEvent(ctx context.Context, event *MatchEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
