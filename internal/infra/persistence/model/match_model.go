package model

import (
	"time"

	"github.com/google/uuid"

	"lifeline/internal/domain/entity"
)

// MatchModel mirrors the 'matches' table.
//
// The table carries a partial unique index (created by migration, GORM's
// index tags cannot express the predicate):
//
//	CREATE UNIQUE INDEX uq_matches_active
//	    ON matches (donor_id, receiver_id, request_id)
//	    WHERE status IN ('pending', 'accepted');
//
// so two concurrent proposals for the same triple cannot both land while one
// of them is still active. Violations surface as gorm.ErrDuplicatedKey.
type MatchModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequestID   uuid.UUID `gorm:"type:uuid;not null;index"`
	DonorID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceiverID  uuid.UUID `gorm:"type:uuid;not null;index"`
	BloodGroup  string    `gorm:"type:varchar(3);not null"`
	Status      string    `gorm:"type:varchar(16);not null;default:'pending';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (MatchModel) TableName() string {
	return "matches"
}

// ToDomain converts the persistence model to a pure domain entity.
func (m *MatchModel) ToDomain() *entity.Match {
	if m == nil {
		return nil
	}

	return &entity.Match{
		ID:          m.ID,
		RequestID:   m.RequestID,
		DonorID:     m.DonorID,
		ReceiverID:  m.ReceiverID,
		BloodGroup:  entity.BloodGroup(m.BloodGroup),
		Status:      entity.MatchStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		CompletedAt: m.CompletedAt,
	}
}

// FromMatchDomain converts a domain entity to the persistence model.
func FromMatchDomain(match *entity.Match) *MatchModel {
	if match == nil {
		return nil
	}

	return &MatchModel{
		ID:          match.ID,
		RequestID:   match.RequestID,
		DonorID:     match.DonorID,
		ReceiverID:  match.ReceiverID,
		BloodGroup:  string(match.BloodGroup),
		Status:      string(match.Status),
		CreatedAt:   match.CreatedAt,
		CompletedAt: match.CompletedAt,
	}
}
