package coreControllers

import (
	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"

	"github.com/gofiber/fiber/v2"
)

// GetAuditLogs lists audit log entries for administrators, filterable by
// action and model name
func GetAuditLogs(c *fiber.Ctx) error {
	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.AuditLog{})

	if action := c.Query("action"); action != "" {
		db = db.Where("action = ?", action)
	}
	if modelName := c.Query("model_name"); modelName != "" {
		db = db.Where("model_name = ?", modelName)
	}

	var total int64
	db.Count(&total)

	var logs []models.AuditLog
	if err := db.Offset(offset).Limit(limit).Order("timestamp desc").Find(&logs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch audit logs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Audit logs fetched successfully!", fiber.Map{
		"audit_logs": logs,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
