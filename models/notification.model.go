package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification types
const (
	NotificationInfo    = "INFO"
	NotificationSuccess = "SUCCESS"
	NotificationWarning = "WARNING"
	NotificationError   = "ERROR"
)

// Notification is an in-app message shown to a user
type Notification struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"index;not null"`
	Title            string     `json:"title" gorm:"not null"`
	Message          string     `json:"message" gorm:"type:text"`
	NotificationType string     `json:"notification_type" gorm:"default:'INFO'"`
	IsRead           bool       `json:"is_read" gorm:"default:false;index"`
	ReadAt           *time.Time `json:"read_at"`
}
