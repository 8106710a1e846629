package model

import (
	"time"

	"github.com/google/uuid"

	"lifeline/internal/domain/entity"
)

// NotificationModel mirrors the 'notifications' table. Rows are append-only
// from the engine's side; the recipient flips Read or deletes.
type NotificationModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ToUserID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	FromUserID *uuid.UUID `gorm:"type:uuid"`
	MatchID    *uuid.UUID `gorm:"type:uuid"`
	RequestID  *uuid.UUID `gorm:"type:uuid"`
	Type       string     `gorm:"type:varchar(32);not null"`
	Message    string     `gorm:"type:text;not null"`
	Read       bool       `gorm:"not null;default:false"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts the persistence model to a pure domain entity.
func (m *NotificationModel) ToDomain() *entity.Notification {
	if m == nil {
		return nil
	}

	return &entity.Notification{
		ID:         m.ID,
		ToUserID:   m.ToUserID,
		FromUserID: m.FromUserID,
		MatchID:    m.MatchID,
		RequestID:  m.RequestID,
		Type:       m.Type,
		Message:    m.Message,
		Read:       m.Read,
		CreatedAt:  m.CreatedAt,
	}
}

// FromNotificationDomain converts a domain entity to the persistence model.
func FromNotificationDomain(notification *entity.Notification) *NotificationModel {
	if notification == nil {
		return nil
	}

	return &NotificationModel{
		ID:         notification.ID,
		ToUserID:   notification.ToUserID,
		FromUserID: notification.FromUserID,
		MatchID:    notification.MatchID,
		RequestID:  notification.RequestID,
		Type:       notification.Type,
		Message:    notification.Message,
		Read:       notification.Read,
		CreatedAt:  notification.CreatedAt,
	}
}
