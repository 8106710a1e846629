// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus is the lifecycle state of a donor-receiver match.
type MatchStatus string

// Match lifecycle states. rejected and completed are terminal; accepted can
// only transition to completed.
const (
	MatchStatusPending   MatchStatus = "pending"
	MatchStatusAccepted  MatchStatus = "accepted"
	MatchStatusRejected  MatchStatus = "rejected"
	MatchStatusCompleted MatchStatus = "completed"
)

// Terminal reports whether the status admits no further transitions.
func (s MatchStatus) Terminal() bool {
	return s == MatchStatusRejected || s == MatchStatusCompleted
}

// Match is a proposed donor-receiver pairing for one blood request, with its
// own lifecycle independent of the request's lifecycle. At most one match per
// (donor, receiver, request) may be active (pending or accepted) at a time,
// and at most one match per request may ever hold accepted or completed.
type Match struct {
	ID          uuid.UUID   `json:"id"`
	RequestID   uuid.UUID   `json:"request_id"`
	DonorID     uuid.UUID   `json:"donor_id"`
	ReceiverID  uuid.UUID   `json:"receiver_id"`
	BloodGroup  BloodGroup  `json:"blood_group"`   // Donor's group, snapshotted at proposal time.
	Status      MatchStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	CompletedAt *time.Time  `json:"completed_at"` // Set when the donation is marked completed.
}
