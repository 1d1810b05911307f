package models

import (
	"time"

	"gorm.io/gorm"
)

// UserCertificate is proof of a user's completion of every active video in a
// training. Rows are immutable once created; the (user, training) unique
// index makes issuance idempotent.
type UserCertificate struct {
	gorm.Model
	UserID          uint      `json:"user_id" gorm:"uniqueIndex:idx_user_training;not null"`
	TrainingID      uint      `json:"training_id" gorm:"uniqueIndex:idx_user_training;not null"`
	CertificateCode string    `json:"certificate_code" gorm:"unique;not null"`
	IssuedAt        time.Time `json:"issued_at"`
}
