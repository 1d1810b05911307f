package coreRoutes

import (
	coreControllers "trainhub/controllers/core"
	"trainhub/middleware"
	"trainhub/models"
	coreValidators "trainhub/validators/core"

	"github.com/gofiber/fiber/v2"
)

func SetupCoreRoutes(app *fiber.App) {
	app.Get("/faqs", coreControllers.GetFAQs)

	notificationGroup := app.Group("/notifications")
	notificationGroup.Get("", middleware.JWTMiddleware, coreControllers.GetNotifications)
	notificationGroup.Put("/:id/read", coreValidators.NotificationID(), middleware.JWTMiddleware, coreControllers.MarkNotificationRead)

	adminGroup := app.Group("/admin")
	adminGroup.Get("/audit-logs", coreValidators.AuditLogList(), middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), coreControllers.GetAuditLogs)
}
