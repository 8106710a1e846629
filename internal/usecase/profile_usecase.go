package usecase

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertProfileInput represents the input for creating or updating a profile
type UpsertProfileInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	BloodGroup string `json:"blood_group"`
	City       string `json:"city"`
}

// UpdateLocationInput represents freshly captured coordinates for a user
type UpdateLocationInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ProfileUsecase defines the interface for profile management use cases
type ProfileUsecase interface {
	// UpsertProfile creates the caller's profile on first use, or updates the
	// user-editable fields afterwards. New profiles start unavailable.
	UpsertProfile(ctx context.Context, userID uuid.UUID, input *UpsertProfileInput) (*entity.User, error)

	// GetProfile retrieves the caller's profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// SetAvailability sets the donor-controlled availability flag.
	SetAvailability(ctx context.Context, userID uuid.UUID, available bool) error

	// UpdateLocation records freshly captured coordinates for the caller.
	UpdateLocation(ctx context.Context, userID uuid.UUID, input *UpdateLocationInput) error

	// RegisterDevice records the caller's device token for push delivery.
	RegisterDevice(ctx context.Context, userID uuid.UUID, fcmToken string) error
}
