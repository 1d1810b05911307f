package controllers

import (
	"errors"

	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"
	"trainhub/services"
	courseValidator "trainhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// UpdateVideoProgress records the user's watch state for a video and returns
// the updated record with its derived percentage. Completing the last video
// of a training issues the certificate as a side effect.
func UpdateVideoProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	videoID := c.Locals("videoID").(uint)

	reqData, ok := c.Locals("validatedProgress").(*courseValidator.ProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	progress, percentage, err := services.ReportProgress(db, userID, videoID,
		*reqData.WatchedSeconds, reqData.Completed, auditContext(c, userID))
	if err != nil {
		if errors.Is(err, services.ErrVideoNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", fiber.Map{
		"progress":            progress,
		"progress_percentage": percentage,
	})
}

// ProgressWithVideo enriches a progress record with its video context
type ProgressWithVideo struct {
	models.UserProgress
	VideoTitle         string  `json:"video_title"`
	TrainingID         uint    `json:"training_id"`
	TrainingTitle      string  `json:"training_title"`
	ModuleID           uint    `json:"module_id"`
	ModuleTitle        string  `json:"module_title"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// GetUserProgressList lists the user's progress records, filterable by
// completion state, training and module
func GetUserProgressList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.UserProgress{}).
		Joins("JOIN videos ON videos.id = user_progress.video_id").
		Joins("JOIN trainings ON trainings.id = videos.training_id").
		Where("user_progress.user_id = ?", userID)

	if completed, _ := c.Locals("completedFilter").(string); completed != "" {
		db = db.Where("user_progress.completed = ?", completed == "true")
	}
	if trainingID, ok := c.Locals("training_id").(uint); ok {
		db = db.Where("videos.training_id = ?", trainingID)
	}
	if moduleID, ok := c.Locals("module_id").(uint); ok {
		db = db.Where("trainings.module_id = ?", moduleID)
	}

	var total int64
	db.Count(&total)

	var records []models.UserProgress
	if err := db.Offset(offset).Limit(limit).
		Order("user_progress.last_watched desc").
		Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	plainDb := database.Database.Db
	result := make([]ProgressWithVideo, len(records))
	for i, record := range records {
		result[i] = ProgressWithVideo{UserProgress: record}

		var video models.Video
		if err := plainDb.First(&video, record.VideoID).Error; err != nil {
			continue
		}
		var training models.Training
		plainDb.First(&training, video.TrainingID)
		var module models.Module
		plainDb.First(&module, training.ModuleID)

		result[i].VideoTitle = video.Title
		result[i].TrainingID = training.ID
		result[i].TrainingTitle = training.Title
		result[i].ModuleID = module.ID
		result[i].ModuleTitle = module.Title
		result[i].ProgressPercentage = record.ProgressPercent(video.DurationSeconds)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
