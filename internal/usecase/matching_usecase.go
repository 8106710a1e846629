package usecase

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchingUsecase defines the interface for candidate search use cases
type MatchingUsecase interface {
	// FindCandidates returns the eligible donors for a blood request, ranked
	// ascending by great-circle distance to the request coordinates (ties by
	// donor id). Only the request owner may search. The result is recomputed
	// on every call and never cached.
	FindCandidates(ctx context.Context, requestID, callerID uuid.UUID) ([]*entity.Candidate, error)
}
