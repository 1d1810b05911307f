package controllers

import (
	"errors"
	"strconv"

	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"
	"trainhub/services"
	"trainhub/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func auditContext(c *fiber.Ctx, userID uint) services.RequestContext {
	return services.RequestContext{
		UserID:    &userID,
		IPAddress: utils.ClientIP(c.Get("X-Forwarded-For"), c.IP()),
		UserAgent: c.Get("User-Agent"),
	}
}

// ModuleWithProgress enriches a module with the user's aggregate progress
type ModuleWithProgress struct {
	models.Module
	Progress services.ProgressSummary `json:"progress"`
}

// TrainingWithProgress enriches a training with the user's aggregate progress
type TrainingWithProgress struct {
	models.Training
	Progress services.ProgressSummary `json:"progress"`
}

// VideoWithProgress enriches a video with the user's watch state
type VideoWithProgress struct {
	models.Video
	WatchedSeconds     int     `json:"watched_seconds"`
	ProgressPercentage float64 `json:"progress_percentage"`
	Completed          bool    `json:"completed"`
}

func videoWithProgress(db *gorm.DB, userID uint, video models.Video) VideoWithProgress {
	result := VideoWithProgress{Video: video}

	var progress models.UserProgress
	if err := db.Where("user_id = ? AND video_id = ?", userID, video.ID).First(&progress).Error; err == nil {
		result.WatchedSeconds = progress.WatchedSeconds
		result.ProgressPercentage = progress.ProgressPercent(video.DurationSeconds)
		result.Completed = progress.Completed
	}

	return result
}

// GetModules lists active modules with the user's per-module progress
func GetModules(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)
	category, _ := c.Locals("category").(string)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Module{}).Where("is_active = ?", true)
	if category != "" {
		db = db.Where("category = ?", category)
	}

	var total int64
	db.Count(&total)

	var modules []models.Module
	if err := db.Offset(offset).Limit(limit).Order("order_index asc, title asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	result := make([]ModuleWithProgress, len(modules))
	for i, module := range modules {
		summary, err := services.ModuleProgress(database.Database.Db, userID, module.ID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute progress!", nil)
		}
		result[i] = ModuleWithProgress{Module: module, Progress: summary}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetModuleDetails returns a module with its trainings and per-training progress
func GetModuleDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(uint)
	db := database.Database.Db

	var module models.Module
	if err := db.Where("id = ? AND is_active = ?", moduleID, true).First(&module).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module!", nil)
	}

	var trainings []models.Training
	if err := db.Where("module_id = ? AND is_active = ?", module.ID, true).
		Order("order_index asc, title asc").Find(&trainings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trainings!", nil)
	}

	trainingsResult := make([]TrainingWithProgress, len(trainings))
	for i, training := range trainings {
		summary, err := services.TrainingProgress(db, userID, training.ID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute progress!", nil)
		}
		trainingsResult[i] = TrainingWithProgress{Training: training, Progress: summary}
	}

	moduleSummary, err := services.ModuleProgress(db, userID, module.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute progress!", nil)
	}

	services.RecordAudit(db, auditContext(c, userID), models.ActionView, "Module",
		strconv.Itoa(int(module.ID)), "Module "+module.Title+" viewed")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", fiber.Map{
		"module":    module,
		"progress":  moduleSummary,
		"trainings": trainingsResult,
	})
}

// GetTrainingDetails returns a training with its videos and per-video progress
func GetTrainingDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	trainingID := c.Locals("trainingID").(uint)
	db := database.Database.Db

	var training models.Training
	if err := db.Where("id = ? AND is_active = ?", trainingID, true).First(&training).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch training!", nil)
	}

	var module models.Module
	db.First(&module, training.ModuleID)

	var videos []models.Video
	if err := db.Where("training_id = ? AND is_active = ?", training.ID, true).
		Order("order_index asc, title asc").Find(&videos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch videos!", nil)
	}

	videosResult := make([]VideoWithProgress, len(videos))
	for i, video := range videos {
		videosResult[i] = videoWithProgress(db, userID, video)
	}

	summary, err := services.TrainingProgress(db, userID, training.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute progress!", nil)
	}

	services.RecordAudit(db, auditContext(c, userID), models.ActionView, "Training",
		strconv.Itoa(int(training.ID)), "Training "+training.Title+" viewed")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training fetched successfully!", fiber.Map{
		"training": training,
		"module":   module,
		"progress": summary,
		"videos":   videosResult,
	})
}

// GetVideoDetails returns a video with the user's progress and the previous/
// next videos in the training for navigation
func GetVideoDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	videoID := c.Locals("videoID").(uint)
	db := database.Database.Db

	var video models.Video
	if err := db.Where("id = ? AND is_active = ?", videoID, true).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch video!", nil)
	}

	var training models.Training
	db.First(&training, video.TrainingID)
	var module models.Module
	db.First(&module, training.ModuleID)

	// Siblings ordered as in the training for prev/next navigation
	var siblings []models.Video
	db.Where("training_id = ? AND is_active = ?", video.TrainingID, true).
		Order("order_index asc, title asc").Find(&siblings)

	var previous, next *models.Video
	for i := range siblings {
		if siblings[i].ID == video.ID {
			if i > 0 {
				previous = &siblings[i-1]
			}
			if i < len(siblings)-1 {
				next = &siblings[i+1]
			}
			break
		}
	}

	services.RecordAudit(db, auditContext(c, userID), models.ActionView, "Video",
		strconv.Itoa(int(video.ID)), "Video "+video.Title+" viewed")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video fetched successfully!", fiber.Map{
		"video":          videoWithProgress(db, userID, video),
		"training":       training,
		"module":         module,
		"previous_video": previous,
		"next_video":     next,
		"total_videos":   len(siblings),
	})
}
