package userRoutes

import (
	userControllers "trainhub/controllers/userControllers"
	"trainhub/middleware"
	userValidators "trainhub/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Put("/profile", userValidators.UpdateProfile(), middleware.JWTMiddleware, userControllers.UpdateProfile)
}
