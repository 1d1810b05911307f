package services

import (
	"path/filepath"
	"testing"

	"trainhub/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Module{},
		&models.Training{},
		&models.Video{},
		&models.UserProgress{},
		&models.UserCertificate{},
		&models.AuditLog{},
		&models.Notification{},
	)
	require.NoError(t, err)

	return db
}

// seedCatalog creates one module with one training and the given videos,
// returning the training ID and video IDs in order.
func seedCatalog(t *testing.T, db *gorm.DB, durations ...int) (uint, []uint) {
	t.Helper()

	module := models.Module{Title: "Safety", Category: "compliance", IsActive: true}
	require.NoError(t, db.Create(&module).Error)

	training := models.Training{ModuleID: module.ID, Title: "Fire Safety", IsActive: true}
	require.NoError(t, db.Create(&training).Error)

	videoIDs := make([]uint, 0, len(durations))
	for i, duration := range durations {
		video := models.Video{
			TrainingID:      training.ID,
			Title:           "Video",
			DurationSeconds: duration,
			OrderIndex:      i,
			IsActive:        true,
		}
		require.NoError(t, db.Create(&video).Error)
		videoIDs = append(videoIDs, video.ID)
	}

	return training.ID, videoIDs
}

func seedUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()

	user := models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "hashed",
		Role:      models.RoleEmployee,
		IsActive:  true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func testContext(userID uint) RequestContext {
	return RequestContext{
		UserID:    &userID,
		IPAddress: "10.0.0.1",
		UserAgent: "go-test",
	}
}
