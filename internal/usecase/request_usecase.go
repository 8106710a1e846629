package usecase

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRequestInput represents the input for creating a blood request
type CreateRequestInput struct {
	BloodGroup   string    `json:"blood_group"`
	Units        int       `json:"units"`
	RequiredBy   time.Time `json:"required_by"`
	PatientName  string    `json:"patient_name"`
	HospitalName string    `json:"hospital_name"`
	City         string    `json:"city"`
	Purpose      string    `json:"purpose"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
}

// RequestUsecase defines the interface for blood request management use cases
type RequestUsecase interface {
	// CreateRequest creates a new pending blood request for the caller. The
	// coordinates are captured here and never change afterwards.
	CreateRequest(ctx context.Context, requesterID uuid.UUID, input *CreateRequestInput) (*entity.BloodRequest, error)

	// GetRequest retrieves a single request by id.
	GetRequest(ctx context.Context, requestID uuid.UUID) (*entity.BloodRequest, error)

	// ListMyRequests returns the caller's requests, newest first.
	ListMyRequests(ctx context.Context, requesterID uuid.UUID) ([]*entity.BloodRequest, error)

	// ListOpenRequests returns pending requests in the donor's city whose
	// requested group the donor's blood can serve.
	ListOpenRequests(ctx context.Context, donorID uuid.UUID) ([]*entity.BloodRequest, error)

	// FulfillRequest marks the caller's request as fulfilled. Allowed from
	// any prior status, independent of match completion.
	FulfillRequest(ctx context.Context, requestID, receiverID uuid.UUID) (*entity.BloodRequest, error)

	// DeleteRequest removes the caller's request.
	DeleteRequest(ctx context.Context, requestID, receiverID uuid.UUID) error
}
