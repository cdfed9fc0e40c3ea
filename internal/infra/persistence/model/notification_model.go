package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledNotificationModel is the GORM-specific struct for the 'scheduled_notifications' table.
// Targeting is flattened into the target_* columns; at most one of them is set,
// matching the descriptor priority enforced at the usecase layer.
type ScheduledNotificationModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title         string     `gorm:"type:text;not null"`
	Body          string     `gorm:"type:text;not null"`
	Data          JSONMap    `gorm:"type:jsonb;not null;default:'{}'"`
	Category      string     `gorm:"type:text;not null;default:'advertising'"`
	ScheduledFor  time.Time  `gorm:"not null;index:idx_scheduled_notifications_due,priority:2"`
	TargetKind    string     `gorm:"type:text;not null"`
	TargetUserIDs UUIDSlice  `gorm:"type:jsonb"`
	TargetRole    string     `gorm:"type:text"`
	TargetMotelID *uuid.UUID `gorm:"type:uuid"`
	IncludeGuests bool       `gorm:"not null;default:false"`
	Sent          bool       `gorm:"not null;default:false;index:idx_scheduled_notifications_due,priority:1"`
	SentAt        *time.Time
	TotalSent     int    `gorm:"not null;default:0"`
	TotalFailed   int    `gorm:"not null;default:0"`
	TotalSkipped  int    `gorm:"not null;default:0"`
	ErrorMessage  string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScheduledNotificationModel) TableName() string {
	return "scheduled_notifications"
}
