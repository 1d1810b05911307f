package coreControllers

import (
	"errors"
	"time"

	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetNotifications lists the user's notifications, newest first
func GetNotifications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Model(&models.Notification{}).Where("user_id = ?", userID)

	if c.Query("unread") == "true" {
		db = db.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	if err := db.Order("created_at desc").Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", notifications)
}

// MarkNotificationRead marks one of the user's notifications as read
func MarkNotificationRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	notificationID := c.Locals("notificationID").(uint)
	db := database.Database.Db

	var notification models.Notification
	if err := db.Where("id = ? AND user_id = ?", notificationID, userID).First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notification!", nil)
	}

	if !notification.IsRead {
		now := time.Now()
		notification.IsRead = true
		notification.ReadAt = &now
		if err := db.Save(&notification).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notification!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read!", notification)
}
