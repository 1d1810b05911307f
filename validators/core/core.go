package coreValidator

import (
	"strconv"
	"strings"

	"trainhub/config"
	"trainhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// NotificationID validates the notification ID route parameter
func NotificationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Notification ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notification ID!", nil)
		}

		c.Locals("notificationID", uint(id))
		return c.Next()
	}
}

// AuditLogList validates the audit log listing query parameters
func AuditLogList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		if page < 1 {
			page = 1
		}

		limit := c.QueryInt("limit", config.AppConfig.DefaultPageSize)
		if limit < 1 {
			limit = config.AppConfig.DefaultPageSize
		}
		if limit > config.AppConfig.MaxPageSize {
			limit = config.AppConfig.MaxPageSize
		}

		c.Locals("page", page)
		c.Locals("limit", limit)
		return c.Next()
	}
}
