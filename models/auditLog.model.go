package models

import (
	"time"

	"gorm.io/gorm"
)

// Audit actions
const (
	ActionCreate   = "CREATE"
	ActionUpdate   = "UPDATE"
	ActionDelete   = "DELETE"
	ActionLogin    = "LOGIN"
	ActionLogout   = "LOGOUT"
	ActionView     = "VIEW"
	ActionComplete = "COMPLETE"
)

// Sentinel request context for system-initiated events (e.g. automatic
// certificate issuance), which have no originating client
const (
	SystemIP        = "127.0.0.1"
	SystemUserAgent = "System"
)

// AuditLog is an append-only record of a user or system action. Rows are
// never updated or deleted.
type AuditLog struct {
	gorm.Model
	UserID      *uint     `json:"user_id" gorm:"index"` // nil for system actions
	Action      string    `json:"action" gorm:"index;not null"`
	ModelName   string    `json:"model_name" gorm:"index"`
	ObjectID    string    `json:"object_id"`
	Description string    `json:"description" gorm:"type:text"`
	IPAddress   string    `json:"ip_address"`
	UserAgent   string    `json:"user_agent" gorm:"type:text"`
	Timestamp   time.Time `json:"timestamp" gorm:"index"`
}
