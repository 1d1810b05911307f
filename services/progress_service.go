package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"trainhub/models"

	"gorm.io/gorm"
)

// ErrVideoNotFound is returned when a progress report references a video that
// does not exist or is inactive.
var ErrVideoNotFound = errors.New("video not found or inactive")

// ReportProgress records a user's watch state for a video. Watched seconds
// are last-write-wins; the completed flag is a one-way transition that stamps
// completed_at exactly once and never reverts, regardless of later reports.
// On the transition into completed it checks the parent training for
// certificate issuance. Returns the updated record and its derived
// percentage.
func ReportProgress(db *gorm.DB, userID, videoID uint, watchedSeconds int, completed bool, ctx RequestContext) (*models.UserProgress, float64, error) {
	var video models.Video
	if err := db.Where("id = ? AND is_active = ?", videoID, true).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrVideoNotFound
		}
		return nil, 0, err
	}

	progress, err := getOrCreateProgress(db, userID, videoID)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	if err := db.Model(progress).Updates(map[string]interface{}{
		"watched_seconds": watchedSeconds,
		"last_watched":    now,
	}).Error; err != nil {
		return nil, 0, err
	}

	transitioned := false
	if completed && !progress.Completed {
		// Guard on completed=false so concurrent reports elect a single
		// writer for the transition and completed_at is stamped once.
		res := db.Model(&models.UserProgress{}).
			Where("id = ? AND completed = ?", progress.ID, false).
			Updates(map[string]interface{}{"completed": true, "completed_at": now})
		if res.Error != nil {
			return nil, 0, res.Error
		}
		transitioned = res.RowsAffected == 1
	}

	// Reload so the caller sees whatever state won, including a completion
	// set by a concurrent report.
	if err := db.First(progress, progress.ID).Error; err != nil {
		return nil, 0, err
	}

	if transitioned {
		RecordAudit(db, ctx, models.ActionComplete, "UserProgress",
			strconv.Itoa(int(progress.ID)),
			fmt.Sprintf("Video %s marked as completed", video.Title))

		if _, err := CheckAndIssueCertificate(db, userID, video.TrainingID); err != nil {
			return nil, 0, err
		}
	} else {
		RecordAudit(db, ctx, models.ActionUpdate, "UserProgress",
			strconv.Itoa(int(progress.ID)),
			fmt.Sprintf("Progress for video %s updated", video.Title))
	}

	return progress, progress.ProgressPercent(video.DurationSeconds), nil
}

// getOrCreateProgress fetches the (user, video) record, creating it on first
// report. The composite unique index closes the create race: the losing
// writer re-fetches the existing row instead of erroring.
func getOrCreateProgress(db *gorm.DB, userID, videoID uint) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := db.Where("user_id = ? AND video_id = ?", userID, videoID).First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = models.UserProgress{
		UserID:      userID,
		VideoID:     videoID,
		LastWatched: time.Now(),
	}
	if err := db.Create(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.UserProgress
			if ferr := db.Where("user_id = ? AND video_id = ?", userID, videoID).First(&existing).Error; ferr != nil {
				return nil, ferr
			}
			return &existing, nil
		}
		return nil, err
	}
	return &progress, nil
}

// ProgressSummary is the read-side aggregate over a user's progress within a
// scope. Percentages are completed-over-total, never averaged per-video
// percentages, so partial videos never count fractionally.
type ProgressSummary struct {
	TotalVideos        int64   `json:"total_videos"`
	CompletedVideos    int64   `json:"completed_videos"`
	InProgressVideos   int64   `json:"in_progress_videos"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

func (s *ProgressSummary) computePercentage() {
	if s.TotalVideos > 0 {
		s.ProgressPercentage = float64(s.CompletedVideos) / float64(s.TotalVideos) * 100
	}
}

// TrainingProgress aggregates a user's progress over a training's active videos.
func TrainingProgress(db *gorm.DB, userID, trainingID uint) (ProgressSummary, error) {
	var summary ProgressSummary

	if err := db.Model(&models.Video{}).
		Where("training_id = ? AND is_active = ?", trainingID, true).
		Count(&summary.TotalVideos).Error; err != nil {
		return summary, err
	}

	base := db.Model(&models.UserProgress{}).
		Joins("JOIN videos ON videos.id = user_progress.video_id").
		Where("user_progress.user_id = ? AND videos.training_id = ? AND videos.is_active = ?", userID, trainingID, true).
		Session(&gorm.Session{})

	if err := base.
		Where("user_progress.completed = ?", true).
		Count(&summary.CompletedVideos).Error; err != nil {
		return summary, err
	}
	if err := base.
		Where("user_progress.completed = ? AND user_progress.watched_seconds > 0", false).
		Count(&summary.InProgressVideos).Error; err != nil {
		return summary, err
	}

	summary.computePercentage()
	return summary, nil
}

// ModuleProgress aggregates a user's progress over every active video of a
// module's active trainings.
func ModuleProgress(db *gorm.DB, userID, moduleID uint) (ProgressSummary, error) {
	var summary ProgressSummary

	if err := db.Model(&models.Video{}).
		Joins("JOIN trainings ON trainings.id = videos.training_id").
		Where("trainings.module_id = ? AND trainings.is_active = ? AND videos.is_active = ?", moduleID, true, true).
		Count(&summary.TotalVideos).Error; err != nil {
		return summary, err
	}

	base := db.Model(&models.UserProgress{}).
		Joins("JOIN videos ON videos.id = user_progress.video_id").
		Joins("JOIN trainings ON trainings.id = videos.training_id").
		Where("user_progress.user_id = ? AND trainings.module_id = ? AND trainings.is_active = ? AND videos.is_active = ?",
			userID, moduleID, true, true).
		Session(&gorm.Session{})

	if err := base.
		Where("user_progress.completed = ?", true).
		Count(&summary.CompletedVideos).Error; err != nil {
		return summary, err
	}
	if err := base.
		Where("user_progress.completed = ? AND user_progress.watched_seconds > 0", false).
		Count(&summary.InProgressVideos).Error; err != nil {
		return summary, err
	}

	summary.computePercentage()
	return summary, nil
}

// OverallProgress aggregates a user's progress over the whole active catalog.
func OverallProgress(db *gorm.DB, userID uint) (ProgressSummary, error) {
	var summary ProgressSummary

	if err := db.Model(&models.Video{}).
		Joins("JOIN trainings ON trainings.id = videos.training_id").
		Joins("JOIN modules ON modules.id = trainings.module_id").
		Where("videos.is_active = ? AND trainings.is_active = ? AND modules.is_active = ?", true, true, true).
		Count(&summary.TotalVideos).Error; err != nil {
		return summary, err
	}

	base := db.Model(&models.UserProgress{}).
		Where("user_progress.user_id = ?", userID).
		Session(&gorm.Session{})

	if err := base.
		Where("user_progress.completed = ?", true).
		Count(&summary.CompletedVideos).Error; err != nil {
		return summary, err
	}
	if err := base.
		Where("user_progress.completed = ? AND user_progress.watched_seconds > 0", false).
		Count(&summary.InProgressVideos).Error; err != nil {
		return summary, err
	}

	summary.computePercentage()
	return summary, nil
}
