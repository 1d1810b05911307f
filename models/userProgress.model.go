package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProgress tracks a user's watch state for one video. At most one row
// exists per (user, video) pair; the unique index is what arbitrates
// concurrent first reports.
type UserProgress struct {
	gorm.Model
	UserID         uint       `json:"user_id" gorm:"uniqueIndex:idx_user_video;not null"`
	VideoID        uint       `json:"video_id" gorm:"uniqueIndex:idx_user_video;not null"`
	WatchedSeconds int        `json:"watched_seconds" gorm:"default:0"`
	Completed      bool       `json:"completed" gorm:"default:false;index"`
	LastWatched    time.Time  `json:"last_watched"`
	CompletedAt    *time.Time `json:"completed_at"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// ProgressPercent computes the watch percentage against the video duration,
// clamped to [0,100]. A zero-duration video always reads 0.
func (p *UserProgress) ProgressPercent(durationSeconds int) float64 {
	if durationSeconds <= 0 {
		return 0
	}
	percent := float64(p.WatchedSeconds) / float64(durationSeconds) * 100
	if percent > 100 {
		return 100
	}
	return percent
}
