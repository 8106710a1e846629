// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for match persistence.
var (
	// ErrMatchNotFound is returned when a match is not found.
	ErrMatchNotFound = errors.New("match not found")
	// ErrDuplicateActiveMatch is returned when an active (pending or
	// accepted) match already exists for the same donor, receiver and
	// request. Enforced by a partial unique index, so concurrent proposals
	// cannot both slip through.
	ErrDuplicateActiveMatch = errors.New("active match already exists")
)

// MatchRepository defines the interface for match database operations.
//
// Status transitions are conditional writes keyed on the expected current
// status, never read-then-write: two concurrent transitions on the same match
// cannot both succeed.
type MatchRepository interface {
	// CreateMatch persists a new match in pending status. Returns
	// ErrDuplicateActiveMatch when an active match for the same
	// (donor, receiver, request) triple already exists.
	CreateMatch(ctx context.Context, match *entity.Match) error

	// FindMatchByID retrieves a match by its unique ID.
	FindMatchByID(ctx context.Context, id uuid.UUID) (*entity.Match, error)

	// FindMatchesByDonor retrieves all matches where the user is the donor,
	// newest first.
	FindMatchesByDonor(ctx context.Context, donorID uuid.UUID) ([]*entity.Match, error)

	// FindMatchByRequestAndDonor retrieves the match for a request/donor pair
	// holding one of the given statuses.
	FindMatchByRequestAndDonor(ctx context.Context, requestID, donorID uuid.UUID, statuses ...entity.MatchStatus) (*entity.Match, error)

	// UpdateMatchStatusIf atomically transitions a match from an expected
	// status to a new one. Returns false (and no error) when the match was
	// not in the expected status.
	UpdateMatchStatusIf(ctx context.Context, id uuid.UUID, from, to entity.MatchStatus) (bool, error)

	// MarkMatchCompleted atomically transitions an accepted match to
	// completed, recording the completion timestamp. Returns false when the
	// match was not accepted.
	MarkMatchCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) (bool, error)
}
