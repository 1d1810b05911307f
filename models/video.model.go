package models

import "gorm.io/gorm"

// Video is the smallest watchable unit, ordered within its training
type Video struct {
	gorm.Model
	TrainingID      uint   `json:"training_id" gorm:"index;not null"`
	Title           string `json:"title" gorm:"not null"`
	VideoURL        string `json:"video_url"`
	DurationSeconds int    `json:"duration_seconds" gorm:"default:0"`
	OrderIndex      int    `json:"order_index" gorm:"default:0;index"`
	IsActive        bool   `json:"is_active" gorm:"default:true"`
}
