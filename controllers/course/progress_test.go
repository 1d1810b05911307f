package controllers

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"trainhub/config"
	"trainhub/database"
	"trainhub/models"
	courseValidator "trainhub/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T, userID uint) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:           "test-secret",
		TokenExpiryHours: 1,
		DefaultPageSize:  20,
		MaxPageSize:      100,
	}

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Module{},
		&models.Training{},
		&models.Video{},
		&models.UserProgress{},
		&models.UserCertificate{},
		&models.AuditLog{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authStub := func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}
	app.Post("/videos/:id/progress", courseValidator.UpdateVideoProgress(), authStub, UpdateVideoProgress)
	return app
}

func seedVideo(t *testing.T, durationSeconds int) uint {
	t.Helper()

	db := database.Database.Db
	module := models.Module{Title: "Onboarding", IsActive: true}
	require.NoError(t, db.Create(&module).Error)
	training := models.Training{ModuleID: module.ID, Title: "Welcome", IsActive: true}
	require.NoError(t, db.Create(&training).Error)
	video := models.Video{TrainingID: training.ID, Title: "Intro", DurationSeconds: durationSeconds, IsActive: true}
	require.NoError(t, db.Create(&video).Error)
	return video.ID
}

func TestUpdateVideoProgressEndpoint(t *testing.T) {
	app := setupTestApp(t, 1)
	videoID := seedVideo(t, 300)

	body := strings.NewReader(`{"watched_seconds": 150, "completed": false}`)
	req := httptest.NewRequest("POST", fmt.Sprintf("/videos/%d/progress", videoID), body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Status bool `json:"status"`
		Data   struct {
			ProgressPercentage float64 `json:"progress_percentage"`
			Progress           struct {
				WatchedSeconds int  `json:"watched_seconds"`
				Completed      bool `json:"completed"`
			} `json:"progress"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, payload.Status)
	assert.Equal(t, float64(50), payload.Data.ProgressPercentage)
	assert.Equal(t, 150, payload.Data.Progress.WatchedSeconds)
	assert.False(t, payload.Data.Progress.Completed)
}

func TestUpdateVideoProgressEndpointValidation(t *testing.T) {
	app := setupTestApp(t, 1)
	videoID := seedVideo(t, 300)

	// Missing watched_seconds
	req := httptest.NewRequest("POST", fmt.Sprintf("/videos/%d/progress", videoID), strings.NewReader(`{"completed": true}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// Non-numeric route parameter
	req = httptest.NewRequest("POST", "/videos/abc/progress", strings.NewReader(`{"watched_seconds": 10}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateVideoProgressEndpointUnknownVideo(t *testing.T) {
	app := setupTestApp(t, 1)

	req := httptest.NewRequest("POST", "/videos/9999/progress", strings.NewReader(`{"watched_seconds": 10}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
