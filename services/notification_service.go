package services

import (
	"log"

	"trainhub/models"

	"gorm.io/gorm"
)

// NotifyUser creates an in-app notification for the user. Like the audit
// trail it is best-effort: a failed write is logged and swallowed so it
// never fails the operation that triggered it.
func NotifyUser(db *gorm.DB, userID uint, title, message, notificationType string) {
	if notificationType == "" {
		notificationType = models.NotificationInfo
	}

	notification := models.Notification{
		UserID:           userID,
		Title:            title,
		Message:          message,
		NotificationType: notificationType,
	}

	if err := db.Create(&notification).Error; err != nil {
		log.Printf("Failed to create notification for user %d: %v", userID, err)
	}
}
