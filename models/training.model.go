package models

import "gorm.io/gorm"

// Training is a course unit inside a module; completing all of its active
// videos earns the user a certificate
type Training struct {
	gorm.Model
	ModuleID        uint   `json:"module_id" gorm:"index;not null"`
	Title           string `json:"title" gorm:"not null"`
	Description     string `json:"description" gorm:"type:text"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:0"`
	OrderIndex      int    `json:"order_index" gorm:"default:0;index"`
	IsActive        bool   `json:"is_active" gorm:"default:true"`
}
