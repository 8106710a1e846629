package service

import (
	"context"
)

// PushSender defines the interface for push notification delivery.
type PushSender interface {
	// SendSingleNotification sends a push notification to a single device token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
