package authRoutes

import (
	authControllers "trainhub/controllers/auth"
	"trainhub/middleware"
	authValidators "trainhub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/logout", middleware.JWTMiddleware, authControllers.Logout)
	authGroup.Put("/change/password", authValidators.ChangePassword(), middleware.JWTMiddleware, authControllers.ChangePassword)
}
