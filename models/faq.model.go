package models

import "gorm.io/gorm"

type FAQ struct {
	gorm.Model
	Question   string `json:"question" gorm:"not null"`
	Answer     string `json:"answer" gorm:"type:text"`
	Category   string `json:"category" gorm:"index"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`
}
