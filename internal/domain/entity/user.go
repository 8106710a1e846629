// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// GeoLocation is a latitude/longitude pair together with the moment it was
// captured. The capture timestamp drives the staleness policy in candidate
// search: coordinates older than the configured bound are not trusted.
type GeoLocation struct {
	Latitude   float64   `json:"latitude"`    // Geographic latitude in degrees.
	Longitude  float64   `json:"longitude"`   // Geographic longitude in degrees.
	CapturedAt time.Time `json:"captured_at"` // When this coordinate pair was sourced.
}

// Point converts the location into an orb.Point (lon/lat order).
func (l GeoLocation) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// User is the core entity in the system, representing a registered person.
// Every user may act as a donor, as a receiver (requester), or both; the two
// roles share one identity issued by the external identity provider.
type User struct {
	ID             uuid.UUID    `json:"id"`               // Stable identifier owned by the identity provider.
	Email          string       `json:"email"`            // Contact email.
	Name           string       `json:"name"`             // Display name.
	BloodGroup     BloodGroup   `json:"blood_group"`      // One of the eight canonical ABO/Rh values.
	City           string       `json:"city"`             // Normalized (lowercase) city, used for the donor-side request feed.
	Available      bool         `json:"available"`        // Donor-controlled availability flag. New accounts start unavailable.
	Location       *GeoLocation `json:"location"`         // Last known coordinates. Nil until the donor shares a position.
	CooldownUntil  *time.Time   `json:"cooldown_until"`   // Donation cooldown expiry. Nil when the donor has never donated.
	LastDonationAt *time.Time   `json:"last_donation_at"` // Timestamp of the most recent completed donation.
	FCMToken       string       `json:"-"`                // Device token for push delivery. Empty when the user has no registered device.
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// OnCooldown reports whether the donor is inside the donation cooldown window
// at the given instant. Strict wall-clock comparison, no day rounding.
func (u *User) OnCooldown(now time.Time) bool {
	return u.CooldownUntil != nil && now.Before(*u.CooldownUntil)
}

// LocationFresh reports whether the donor has coordinates captured within
// maxAge of now. A donor without coordinates is never fresh.
func (u *User) LocationFresh(now time.Time, maxAge time.Duration) bool {
	if u.Location == nil {
		return false
	}

	return now.Sub(u.Location.CapturedAt) <= maxAge
}
