package services

import (
	"log"
	"time"

	"trainhub/models"

	"gorm.io/gorm"
)

// RequestContext carries the actor identity and request metadata passed
// explicitly into every auditable operation. UserID is nil for
// system-initiated events.
type RequestContext struct {
	UserID    *uint
	IPAddress string
	UserAgent string
}

// SystemContext returns the request context used for actions the platform
// performs on its own, such as automatic certificate issuance.
func SystemContext() RequestContext {
	return RequestContext{
		IPAddress: models.SystemIP,
		UserAgent: models.SystemUserAgent,
	}
}

// RecordAudit appends an audit log entry. It is best-effort: a failed write
// is logged and swallowed so it can never fail or roll back the business
// operation that triggered it.
func RecordAudit(db *gorm.DB, ctx RequestContext, action, modelName, objectID, description string) {
	entry := models.AuditLog{
		UserID:      ctx.UserID,
		Action:      action,
		ModelName:   modelName,
		ObjectID:    objectID,
		Description: description,
		IPAddress:   ctx.IPAddress,
		UserAgent:   ctx.UserAgent,
		Timestamp:   time.Now(),
	}

	if err := db.Create(&entry).Error; err != nil {
		log.Printf("Failed to write audit log (%s %s %s): %v", action, modelName, objectID, err)
	}
}
