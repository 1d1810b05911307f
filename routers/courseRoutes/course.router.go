package courseRoutes

import (
	courseControllers "trainhub/controllers/course"
	"trainhub/middleware"
	courseValidators "trainhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	// Catalog browsing
	moduleGroup := app.Group("/modules")
	moduleGroup.Get("", courseValidators.ModuleList(), middleware.JWTMiddleware, courseControllers.GetModules)
	moduleGroup.Get("/:id", courseValidators.GetModuleDetail(), middleware.JWTMiddleware, courseControllers.GetModuleDetails)

	trainingGroup := app.Group("/trainings")
	trainingGroup.Get("/:id", courseValidators.GetTrainingDetail(), middleware.JWTMiddleware, courseControllers.GetTrainingDetails)

	videoGroup := app.Group("/videos")
	videoGroup.Get("/:id", courseValidators.GetVideoDetail(), middleware.JWTMiddleware, courseControllers.GetVideoDetails)

	// Progress reporting, both verbs accepted for the same upsert
	videoGroup.Post("/:id/progress", courseValidators.UpdateVideoProgress(), middleware.JWTMiddleware, courseControllers.UpdateVideoProgress)
	videoGroup.Put("/:id/progress", courseValidators.UpdateVideoProgress(), middleware.JWTMiddleware, courseControllers.UpdateVideoProgress)

	app.Get("/progress", courseValidators.ProgressList(), middleware.JWTMiddleware, courseControllers.GetUserProgressList)
	app.Get("/certificates", courseValidators.CertificateList(), middleware.JWTMiddleware, courseControllers.GetUserCertificates)
	app.Get("/dashboard/stats", middleware.JWTMiddleware, courseControllers.GetDashboardStats)
}
