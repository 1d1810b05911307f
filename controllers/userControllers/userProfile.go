package userControllers

import (
	"strconv"
	"strings"

	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"
	"trainhub/services"
	"trainhub/utils"
	userValidator "trainhub/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func auditContext(c *fiber.Ctx, userID uint) services.RequestContext {
	return services.RequestContext{
		UserID:    &userID,
		IPAddress: utils.ClientIP(c.Get("X-Forwarded-For"), c.IP()),
		UserAgent: c.Get("User-Agent"),
	}
}

// GetProfile returns the authenticated user's profile with learning stats
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_active = ?", userID, true).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var completedVideos int64
	db.Model(&models.UserProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&completedVideos)

	var certificates int64
	db.Model(&models.UserCertificate{}).
		Where("user_id = ?", userID).
		Count(&certificates)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"user":             user,
		"completed_videos": completedVideos,
		"certificates":     certificates,
	})
}

// UpdateProfile updates the authenticated user's profile fields
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*userValidator.ProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_active = ?", userID, true).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if strings.TrimSpace(reqData.FirstName) != "" {
		user.FirstName = strings.TrimSpace(reqData.FirstName)
	}
	if strings.TrimSpace(reqData.LastName) != "" {
		user.LastName = strings.TrimSpace(reqData.LastName)
	}
	if reqData.Department != nil {
		user.Department = strings.TrimSpace(*reqData.Department)
	}
	if reqData.Position != nil {
		user.Position = strings.TrimSpace(*reqData.Position)
	}

	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	services.RecordAudit(db, auditContext(c, userID), models.ActionUpdate, "User",
		strconv.Itoa(int(userID)), "Profile updated")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}
