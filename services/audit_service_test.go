package services

import (
	"testing"

	"trainhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAuditPersistsEntry(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "log@test.local")

	RecordAudit(db, testContext(userID), models.ActionLogin, "User", "1", "User logged in")

	var entry models.AuditLog
	require.NoError(t, db.First(&entry).Error)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, userID, *entry.UserID)
	assert.Equal(t, models.ActionLogin, entry.Action)
	assert.Equal(t, "User", entry.ModelName)
	assert.Equal(t, "10.0.0.1", entry.IPAddress)
	assert.Equal(t, "go-test", entry.UserAgent)
	assert.False(t, entry.Timestamp.IsZero())
}

func TestSystemContextSentinels(t *testing.T) {
	ctx := SystemContext()
	assert.Nil(t, ctx.UserID)
	assert.Equal(t, models.SystemIP, ctx.IPAddress)
	assert.Equal(t, models.SystemUserAgent, ctx.UserAgent)
}
