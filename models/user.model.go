package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleEmployee   = "employee"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	gorm.Model
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email" gorm:"unique;not null"`
	Password   string     `json:"-" gorm:"not null"`
	Role       string     `json:"role" gorm:"default:'employee'"` // employee, instructor, admin
	Department string     `json:"department"`
	Position   string     `json:"position"`
	LastLogin  *time.Time `json:"last_login"`
	IsActive   bool       `json:"is_active" gorm:"default:true"`
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
