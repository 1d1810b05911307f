package coreControllers

import (
	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"

	"github.com/gofiber/fiber/v2"
)

// GetFAQs lists active FAQs, optionally filtered by category
func GetFAQs(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.FAQ{}).Where("is_active = ?", true)

	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}

	var faqs []models.FAQ
	if err := db.Order("category asc, order_index asc, question asc").Find(&faqs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch FAQs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQs fetched successfully!", faqs)
}
