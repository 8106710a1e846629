// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Candidate is a donor surfaced by candidate search for a specific request,
// ranked by great-circle distance to the request coordinates.
type Candidate struct {
	DonorID    uuid.UUID  `json:"donor_id"`
	Name       string     `json:"name"`
	BloodGroup BloodGroup `json:"blood_group"`
	DistanceKm float64    `json:"distance_km"`           // Haversine distance, the ranking key.
	DrivingKm  *float64   `json:"driving_km,omitempty"`  // Optional routing-provider refinement.
	DrivingETA *float64   `json:"driving_eta,omitempty"` // Optional driving duration in seconds.
}
