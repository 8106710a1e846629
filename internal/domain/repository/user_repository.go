// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when creating a user that already exists.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the interface for user-related database operations.
//
// Availability, location and cooldown writes are field-level updates on
// purpose: the cooldown set by a completed donation must never be clobbered
// by a concurrent whole-profile save, and vice versa.
type UserRepository interface {
	// CreateUser persists a new user profile.
	CreateUser(ctx context.Context, user *entity.User) error

	// UpdateUser persists changes to the profile fields a user edits directly
	// (name, email, blood group, city). Engine-owned fields are untouched.
	UpdateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListDonorCandidates retrieves every user currently flagged available
	// together with their location and cooldown state. Eligibility beyond the
	// availability flag (staleness, cooldown, compatibility, distance) is
	// evaluated by the caller.
	ListDonorCandidates(ctx context.Context) ([]*entity.User, error)

	// UpdateAvailability sets the donor-controlled availability flag.
	UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error

	// UpdateLocation records freshly captured coordinates for a user.
	UpdateLocation(ctx context.Context, id uuid.UUID, location entity.GeoLocation) error

	// UpdateFCMToken records the device token used for push delivery.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, token string) error

	// SetDonationCooldown records a completed donation: last donation moment,
	// cooldown expiry, and the automatic opt-out of availability, in a single
	// field-level update.
	SetDonationCooldown(ctx context.Context, id uuid.UUID, donatedAt, cooldownUntil time.Time) error
}
