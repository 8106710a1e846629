package model

import (
	"time"

	"github.com/google/uuid"

	"lifeline/internal/domain/entity"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Location is stored as a flat latitude/longitude pair plus the capture
// timestamp; all three are nil until the donor first shares a position.
type UserModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email              string    `gorm:"type:varchar(255);unique;not null"`
	Name               string    `gorm:"type:varchar(100)"`
	BloodGroup         string    `gorm:"type:varchar(3);not null"`
	City               string    `gorm:"type:varchar(100);index"`
	Available          bool      `gorm:"not null;default:false;index"`
	Latitude           *float64  `gorm:"type:decimal(10,8)"`
	Longitude          *float64  `gorm:"type:decimal(11,8)"`
	LocationCapturedAt *time.Time
	CooldownUntil      *time.Time
	LastDonationAt     *time.Time
	FCMToken           string `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a pure domain entity.
func (m *UserModel) ToDomain() *entity.User {
	if m == nil {
		return nil
	}

	user := &entity.User{
		ID:             m.ID,
		Email:          m.Email,
		Name:           m.Name,
		BloodGroup:     entity.BloodGroup(m.BloodGroup),
		City:           m.City,
		Available:      m.Available,
		CooldownUntil:  m.CooldownUntil,
		LastDonationAt: m.LastDonationAt,
		FCMToken:       m.FCMToken,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}

	if m.Latitude != nil && m.Longitude != nil && m.LocationCapturedAt != nil {
		user.Location = &entity.GeoLocation{
			Latitude:   *m.Latitude,
			Longitude:  *m.Longitude,
			CapturedAt: *m.LocationCapturedAt,
		}
	}

	return user
}

// FromUserDomain converts a domain entity to the persistence model.
func FromUserDomain(user *entity.User) *UserModel {
	if user == nil {
		return nil
	}

	userM := &UserModel{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		BloodGroup:     string(user.BloodGroup),
		City:           user.City,
		Available:      user.Available,
		CooldownUntil:  user.CooldownUntil,
		LastDonationAt: user.LastDonationAt,
		FCMToken:       user.FCMToken,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}

	if user.Location != nil {
		lat, lng, capturedAt := user.Location.Latitude, user.Location.Longitude, user.Location.CapturedAt
		userM.Latitude = &lat
		userM.Longitude = &lng
		userM.LocationCapturedAt = &capturedAt
	}

	return userM
}
