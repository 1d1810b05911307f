package controllers

import (
	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserCertificates gets all certificates for the current user
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)
	offset := (page - 1) * limit

	db := database.Database.Db

	type CertificateWithTraining struct {
		models.UserCertificate
		TrainingTitle string `json:"training_title"`
		ModuleTitle   string `json:"module_title"`
	}

	query := db.Model(&models.UserCertificate{}).Where("user_id = ?", userID)

	var total int64
	query.Count(&total)

	var certificates []models.UserCertificate
	if err := query.Offset(offset).Limit(limit).Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	result := make([]CertificateWithTraining, len(certificates))
	for i, cert := range certificates {
		result[i] = CertificateWithTraining{UserCertificate: cert}

		var training models.Training
		if err := db.First(&training, cert.TrainingID).Error; err != nil {
			continue
		}
		var module models.Module
		db.First(&module, training.ModuleID)

		result[i].TrainingTitle = training.Title
		result[i].ModuleTitle = module.Title
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
