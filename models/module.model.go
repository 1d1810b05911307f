package models

import "gorm.io/gorm"

// Module is a top-level training category grouping related trainings
type Module struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Category    string `json:"category" gorm:"index"`
	OrderIndex  int    `json:"order_index" gorm:"default:0;index"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
}
