package usecase

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// ProposeMatchInput represents the input for proposing a new match
type ProposeMatchInput struct {
	RequestID uuid.UUID `json:"request_id"`
	DonorID   uuid.UUID `json:"donor_id"`
}

// AcceptMatchInput carries the donor's coordinates captured at the moment of
// acceptance; they are snapshotted onto the donor profile.
type AcceptMatchInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DonorMatchView is a donor's match joined with its originating request and
// the donor's current distance to it, when the donor has shared a position.
type DonorMatchView struct {
	Match      *entity.Match        `json:"match"`
	Request    *entity.BloodRequest `json:"request"`
	DistanceKm *float64             `json:"distance_km,omitempty"`
}

// MatchUsecase defines the interface for the match lifecycle use cases
type MatchUsecase interface {
	// ProposeMatch creates a pending match between a donor and the caller's
	// request. A duplicate active match for the same donor and request is
	// rejected.
	ProposeMatch(ctx context.Context, receiverID uuid.UUID, input *ProposeMatchInput) (*entity.Match, error)

	// AcceptMatch accepts a pending match on behalf of its donor, claiming
	// the request for them. The first donor to accept wins; a retry by the
	// winning donor succeeds idempotently.
	AcceptMatch(ctx context.Context, matchID, donorID uuid.UUID, input *AcceptMatchInput) (*entity.Match, error)

	// RejectMatch rejects a pending match on behalf of its donor. The request
	// is untouched.
	RejectMatch(ctx context.Context, matchID, donorID uuid.UUID) (*entity.Match, error)

	// CompleteMatch marks the accepted match between the request and the
	// donor as completed and applies the donation cooldown to the donor.
	CompleteMatch(ctx context.Context, requestID, donorID uuid.UUID) (*entity.Match, error)

	// ListDonorMatches returns the donor's matches, newest first, each joined
	// with its request.
	ListDonorMatches(ctx context.Context, donorID uuid.UUID) ([]*DonorMatchView, error)
}
