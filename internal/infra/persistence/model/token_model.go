package model

import (
	"time"

	"github.com/google/uuid"
)

// PushTokenModel is the GORM-specific struct for the 'push_tokens' table.
// A NULL user_id marks a guest device.
type PushTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Token     string     `gorm:"type:text;not null;uniqueIndex"`
	Platform  string     `gorm:"type:text;not null"`
	IsActive  bool       `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushTokenModel) TableName() string {
	return "push_tokens"
}
