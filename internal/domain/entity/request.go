// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of a blood request. The status only
// moves forward: pending -> accepted -> fulfilled.
type RequestStatus string

// Blood request lifecycle states.
const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusFulfilled RequestStatus = "fulfilled"
)

// BloodRequest represents a receiver's request for blood donation.
//
// The request coordinates are captured once at submission and are immutable
// afterwards: every downstream distance computation depends on them, so a
// silently changed coordinate would invalidate all candidate rankings.
type BloodRequest struct {
	ID              uuid.UUID     `json:"id"`
	RequesterID     uuid.UUID     `json:"requester_id"`      // The receiver who created this request.
	BloodGroup      BloodGroup    `json:"blood_group"`       // Requested blood group.
	Units           int           `json:"units"`             // Number of blood units needed.
	RequiredBy      time.Time     `json:"required_by"`       // Date the blood is needed by.
	PatientName     string        `json:"patient_name"`      // Name of the patient the blood is for.
	HospitalName    string        `json:"hospital_name"`     // Hospital where the donation takes place.
	City            string        `json:"city"`              // Normalized (lowercase) city.
	Purpose         string        `json:"purpose"`           // Free-form reason for the request.
	Location        GeoLocation   `json:"location"`          // Captured at creation, immutable thereafter.
	Status          RequestStatus `json:"status"`            // pending -> accepted -> fulfilled.
	AcceptedDonorID *uuid.UUID    `json:"accepted_donor_id"` // Set when a donor's match is accepted. At most one at a time.
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
