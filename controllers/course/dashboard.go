package controllers

import (
	"trainhub/database"
	"trainhub/middleware"
	"trainhub/services"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats returns the user's overall progress statistics
func GetDashboardStats(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	stats, err := services.UserDashboardStats(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", stats)
}
