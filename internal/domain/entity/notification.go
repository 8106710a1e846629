// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification types emitted by the dispatch notifier on match transitions.
const (
	NotificationTypeMatchAccepted     = "match_accepted"
	NotificationTypeMatchRejected     = "match_rejected"
	NotificationTypeDonationCompleted = "donation_completed"
	NotificationTypeRequestCreated    = "request_created"
)

// Notification is a persisted message for a user, written by the engine on
// match state transitions. The engine only ever appends; the recipient marks
// it read or deletes it. Duplicate notifications from a retried transition
// are tolerated (at-least-once).
type Notification struct {
	ID         uuid.UUID  `json:"id"`
	ToUserID   uuid.UUID  `json:"to_user_id"`   // Recipient.
	FromUserID *uuid.UUID `json:"from_user_id"` // Acting user, when one exists.
	MatchID    *uuid.UUID `json:"match_id"`     // Originating match, when applicable.
	RequestID  *uuid.UUID `json:"request_id"`   // Originating request, when applicable.
	Type       string     `json:"type"`
	Message    string     `json:"message"`
	Read       bool       `json:"read"`
	CreatedAt  time.Time  `json:"created_at"`
}
