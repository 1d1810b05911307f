package services

import (
	"testing"

	"trainhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportProgressCreatesSingleRecord(t *testing.T) {
	db := setupTestDB(t)
	_, videos := seedCatalog(t, db, 300)
	userID := seedUser(t, db, "single@test.local")

	_, _, err := ReportProgress(db, userID, videos[0], 30, false, testContext(userID))
	require.NoError(t, err)

	progress, _, err := ReportProgress(db, userID, videos[0], 90, false, testContext(userID))
	require.NoError(t, err)
	assert.Equal(t, 90, progress.WatchedSeconds)

	var count int64
	db.Model(&models.UserProgress{}).
		Where("user_id = ? AND video_id = ?", userID, videos[0]).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestReportProgressPercentage(t *testing.T) {
	db := setupTestDB(t)
	_, videos := seedCatalog(t, db, 300)
	userID := seedUser(t, db, "percent@test.local")

	_, percent, err := ReportProgress(db, userID, videos[0], 150, false, testContext(userID))
	require.NoError(t, err)
	assert.Equal(t, float64(50), percent)
}

func TestReportProgressPercentageClamped(t *testing.T) {
	db := setupTestDB(t)
	_, videos := seedCatalog(t, db, 100)
	userID := seedUser(t, db, "clamp@test.local")

	_, percent, err := ReportProgress(db, userID, videos[0], 500, false, testContext(userID))
	require.NoError(t, err)
	assert.Equal(t, float64(100), percent)
}

func TestReportProgressZeroDurationVideo(t *testing.T) {
	db := setupTestDB(t)
	_, videos := seedCatalog(t, db, 0)
	userID := seedUser(t, db, "zero@test.local")

	_, percent, err := ReportProgress(db, userID, videos[0], 120, false, testContext(userID))
	require.NoError(t, err)
	assert.Equal(t, float64(0), percent)
}

func TestReportProgressCompletionIsOneWay(t *testing.T) {
	db := setupTestDB(t)
	_, videos := seedCatalog(t, db, 300, 300)
	userID := seedUser(t, db, "oneway@test.local")

	progress, _, err := ReportProgress(db, userID, videos[0], 300, true, testContext(userID))
	require.NoError(t, err)
	require.True(t, progress.Completed)
	require.NotNil(t, progress.CompletedAt)
	firstCompletedAt := *progress.CompletedAt

	// A later report without the completed flag must not revert the state
	progress, _, err = ReportProgress(db, userID, videos[0], 50, false, testContext(userID))
	require.NoError(t, err)
	assert.True(t, progress.Completed)
	require.NotNil(t, progress.CompletedAt)
	assert.Equal(t, firstCompletedAt.Unix(), progress.CompletedAt.Unix())
	assert.Equal(t, 50, progress.WatchedSeconds)

	// Re-reporting completed must not move the completion timestamp either
	progress, _, err = ReportProgress(db, userID, videos[0], 300, true, testContext(userID))
	require.NoError(t, err)
	require.NotNil(t, progress.CompletedAt)
	assert.Equal(t, firstCompletedAt.Unix(), progress.CompletedAt.Unix())
}

func TestReportProgressInactiveVideo(t *testing.T) {
	db := setupTestDB(t)
	_, videos := seedCatalog(t, db, 300)
	userID := seedUser(t, db, "inactive@test.local")

	require.NoError(t, db.Model(&models.Video{}).
		Where("id = ?", videos[0]).
		Update("is_active", false).Error)

	_, _, err := ReportProgress(db, userID, videos[0], 10, false, testContext(userID))
	assert.ErrorIs(t, err, ErrVideoNotFound)

	_, _, err = ReportProgress(db, userID, 9999, 10, false, testContext(userID))
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestReportProgressAuditTrail(t *testing.T) {
	db := setupTestDB(t)
	_, videos := seedCatalog(t, db, 300, 300)
	userID := seedUser(t, db, "audit@test.local")

	_, _, err := ReportProgress(db, userID, videos[0], 60, false, testContext(userID))
	require.NoError(t, err)

	var updates int64
	db.Model(&models.AuditLog{}).
		Where("user_id = ? AND action = ? AND model_name = ?", userID, models.ActionUpdate, "UserProgress").
		Count(&updates)
	assert.Equal(t, int64(1), updates)

	_, _, err = ReportProgress(db, userID, videos[0], 300, true, testContext(userID))
	require.NoError(t, err)

	var completes int64
	db.Model(&models.AuditLog{}).
		Where("user_id = ? AND action = ? AND model_name = ?", userID, models.ActionComplete, "UserProgress").
		Count(&completes)
	assert.Equal(t, int64(1), completes)

	// The repeat completed report is not a transition, so it audits as UPDATE
	_, _, err = ReportProgress(db, userID, videos[0], 300, true, testContext(userID))
	require.NoError(t, err)

	db.Model(&models.AuditLog{}).
		Where("user_id = ? AND action = ? AND model_name = ?", userID, models.ActionComplete, "UserProgress").
		Count(&completes)
	assert.Equal(t, int64(1), completes)
}

func TestTrainingProgressSummary(t *testing.T) {
	db := setupTestDB(t)
	trainingID, videos := seedCatalog(t, db, 300, 300, 300)
	userID := seedUser(t, db, "summary@test.local")

	_, _, err := ReportProgress(db, userID, videos[0], 300, true, testContext(userID))
	require.NoError(t, err)
	_, _, err = ReportProgress(db, userID, videos[1], 100, false, testContext(userID))
	require.NoError(t, err)

	summary, err := TrainingProgress(db, userID, trainingID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalVideos)
	assert.Equal(t, int64(1), summary.CompletedVideos)
	assert.Equal(t, int64(1), summary.InProgressVideos)
	assert.InDelta(t, 33.33, summary.ProgressPercentage, 0.01)
}

func TestTrainingProgressEmptyTraining(t *testing.T) {
	db := setupTestDB(t)
	trainingID, _ := seedCatalog(t, db)
	userID := seedUser(t, db, "empty@test.local")

	summary, err := TrainingProgress(db, userID, trainingID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.TotalVideos)
	assert.Equal(t, float64(0), summary.ProgressPercentage)
}

func TestOverallProgressIsCompletedOverTotal(t *testing.T) {
	db := setupTestDB(t)
	_, videos := seedCatalog(t, db, 100, 100)
	userID := seedUser(t, db, "overall@test.local")

	// One video fully done, one half-watched: overall is 50%, not 75%
	_, _, err := ReportProgress(db, userID, videos[0], 100, true, testContext(userID))
	require.NoError(t, err)
	_, _, err = ReportProgress(db, userID, videos[1], 50, false, testContext(userID))
	require.NoError(t, err)

	summary, err := OverallProgress(db, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalVideos)
	assert.Equal(t, int64(1), summary.CompletedVideos)
	assert.Equal(t, float64(50), summary.ProgressPercentage)
}
