package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreferenceModel is the GORM-specific struct for the 'notification_preferences' table.
// One row per user; absence of a row means all switches enabled.
type NotificationPreferenceModel struct {
	UserID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	EnableNotifications    bool      `gorm:"not null;default:true"`
	EnablePush             bool      `gorm:"not null;default:true"`
	EnableAdvertisingPush  bool      `gorm:"not null;default:true"`
	EnableSecurityPush     bool      `gorm:"not null;default:true"`
	EnableMaintenancePush  bool      `gorm:"not null;default:true"`
	NotifyContactMessages  bool      `gorm:"not null;default:true"`
	NotifyNewProspects     bool      `gorm:"not null;default:true"`
	NotifyPaymentReminders bool      `gorm:"not null;default:true"`
	NotifyMotelApprovals   bool      `gorm:"not null;default:true"`
	NotifyNewPromos        bool      `gorm:"not null;default:true"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationPreferenceModel) TableName() string {
	return "notification_preferences"
}
