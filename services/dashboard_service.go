package services

import (
	"time"

	"trainhub/models"

	"gorm.io/gorm"
)

// RecentActivity is one row of a user's latest watch history
type RecentActivity struct {
	VideoTitle         string    `json:"video_title"`
	TrainingTitle      string    `json:"training_title"`
	ModuleTitle        string    `json:"module_title"`
	ProgressPercentage float64   `json:"progress_percentage"`
	Completed          bool      `json:"completed"`
	LastWatched        time.Time `json:"last_watched"`
}

// DashboardStats aggregates catalog totals and the user's overall progress
type DashboardStats struct {
	TotalModules       int64            `json:"total_modules"`
	TotalTrainings     int64            `json:"total_trainings"`
	TotalVideos        int64            `json:"total_videos"`
	CompletedVideos    int64            `json:"completed_videos"`
	InProgressVideos   int64            `json:"in_progress_videos"`
	CertificatesEarned int64            `json:"certificates_earned"`
	OverallProgress    float64          `json:"overall_progress"`
	RecentActivity     []RecentActivity `json:"recent_activity"`
}

// UserDashboardStats computes the dashboard aggregate for a user: active
// catalog totals, completed/in-progress counts, certificates earned, the
// overall percentage and the five most recent watch entries.
func UserDashboardStats(db *gorm.DB, userID uint) (*DashboardStats, error) {
	stats := &DashboardStats{RecentActivity: []RecentActivity{}}

	if err := db.Model(&models.Module{}).
		Where("is_active = ?", true).
		Count(&stats.TotalModules).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Training{}).
		Joins("JOIN modules ON modules.id = trainings.module_id").
		Where("trainings.is_active = ? AND modules.is_active = ?", true, true).
		Count(&stats.TotalTrainings).Error; err != nil {
		return nil, err
	}

	overall, err := OverallProgress(db, userID)
	if err != nil {
		return nil, err
	}
	stats.TotalVideos = overall.TotalVideos
	stats.CompletedVideos = overall.CompletedVideos
	stats.InProgressVideos = overall.InProgressVideos
	stats.OverallProgress = overall.ProgressPercentage

	if err := db.Model(&models.UserCertificate{}).
		Where("user_id = ?", userID).
		Count(&stats.CertificatesEarned).Error; err != nil {
		return nil, err
	}

	var recent []models.UserProgress
	if err := db.Where("user_id = ?", userID).
		Order("last_watched desc").
		Limit(5).
		Find(&recent).Error; err != nil {
		return nil, err
	}

	for _, progress := range recent {
		var video models.Video
		if err := db.First(&video, progress.VideoID).Error; err != nil {
			continue
		}
		var training models.Training
		db.First(&training, video.TrainingID)
		var module models.Module
		db.First(&module, training.ModuleID)

		stats.RecentActivity = append(stats.RecentActivity, RecentActivity{
			VideoTitle:         video.Title,
			TrainingTitle:      training.Title,
			ModuleTitle:        module.Title,
			ProgressPercentage: progress.ProgressPercent(video.DurationSeconds),
			Completed:          progress.Completed,
			LastWatched:        progress.LastWatched,
		})
	}

	return stats, nil
}
