// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"lifeline/internal/domain/entity"
	"lifeline/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for blood request persistence.
var (
	// ErrRequestNotFound is returned when a blood request is not found.
	ErrRequestNotFound = errors.New("blood request not found")
)

// RequestRepository defines the interface for blood request database operations.
type RequestRepository interface {
	// CreateRequest persists a new blood request. The request coordinates are
	// written once here and never updated afterwards.
	CreateRequest(ctx context.Context, request *entity.BloodRequest) error

	// FindRequestByID retrieves a request by its unique ID.
	FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error)

	// FindRequestsByRequester retrieves all requests created by a user,
	// newest first.
	FindRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.BloodRequest, error)

	// FindOpenRequests retrieves pending requests for the given city whose
	// requested group is one of the given groups, newest first. Used for the
	// donor-side request feed.
	FindOpenRequests(ctx context.Context, city string, bloodGroups []entity.BloodGroup) ([]*entity.BloodRequest, error)

	// ClaimRequest atomically moves a request to accepted on behalf of a
	// donor. The conditional write succeeds when the request is still pending,
	// or when it was already claimed by the same donor (so a retried accept is
	// idempotent). Returns false when another donor holds the claim.
	ClaimRequest(ctx context.Context, requestID, donorID uuid.UUID) (bool, error)

	// MarkRequestFulfilled sets the request status to fulfilled. Allowed from
	// any prior status: the receiver may close out their side even without a
	// completed match.
	MarkRequestFulfilled(ctx context.Context, requestID uuid.UUID) error

	// DeleteRequest removes a request (soft delete).
	DeleteRequest(ctx context.Context, id uuid.UUID) error
}
