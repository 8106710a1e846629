package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lifeline/internal/domain/entity"
)

// RequestModel mirrors the 'blood_requests' table.
// Latitude, longitude and the capture timestamp are written once at creation
// and never updated; every candidate ranking derives from them.
type RequestModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequesterID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	BloodGroup         string     `gorm:"type:varchar(3);not null;index"`
	Units              int        `gorm:"not null"`
	RequiredBy         time.Time  `gorm:"not null"`
	PatientName        string     `gorm:"type:varchar(100)"`
	HospitalName       string     `gorm:"type:varchar(255)"`
	City               string     `gorm:"type:varchar(100);index"`
	Purpose            string     `gorm:"type:text"`
	Latitude           float64    `gorm:"type:decimal(10,8);not null"`
	Longitude          float64    `gorm:"type:decimal(11,8);not null"`
	LocationCapturedAt time.Time  `gorm:"not null"`
	Status             string     `gorm:"type:varchar(16);not null;default:'pending';index"`
	AcceptedDonorID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (RequestModel) TableName() string {
	return "blood_requests"
}

// ToDomain converts the persistence model to a pure domain entity.
func (m *RequestModel) ToDomain() *entity.BloodRequest {
	if m == nil {
		return nil
	}

	return &entity.BloodRequest{
		ID:           m.ID,
		RequesterID:  m.RequesterID,
		BloodGroup:   entity.BloodGroup(m.BloodGroup),
		Units:        m.Units,
		RequiredBy:   m.RequiredBy,
		PatientName:  m.PatientName,
		HospitalName: m.HospitalName,
		City:         m.City,
		Purpose:      m.Purpose,
		Location: entity.GeoLocation{
			Latitude:   m.Latitude,
			Longitude:  m.Longitude,
			CapturedAt: m.LocationCapturedAt,
		},
		Status:          entity.RequestStatus(m.Status),
		AcceptedDonorID: m.AcceptedDonorID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromRequestDomain converts a domain entity to the persistence model.
func FromRequestDomain(request *entity.BloodRequest) *RequestModel {
	if request == nil {
		return nil
	}

	return &RequestModel{
		ID:                 request.ID,
		RequesterID:        request.RequesterID,
		BloodGroup:         string(request.BloodGroup),
		Units:              request.Units,
		RequiredBy:         request.RequiredBy,
		PatientName:        request.PatientName,
		HospitalName:       request.HospitalName,
		City:               request.City,
		Purpose:            request.Purpose,
		Latitude:           request.Location.Latitude,
		Longitude:          request.Location.Longitude,
		LocationCapturedAt: request.Location.CapturedAt,
		Status:             string(request.Status),
		AcceptedDonorID:    request.AcceptedDonorID,
		CreatedAt:          request.CreatedAt,
		UpdatedAt:          request.UpdatedAt,
	}
}
