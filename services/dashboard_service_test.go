package services

import (
	"testing"

	"trainhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	_, videos := seedCatalog(t, db, 100, 200)
	userID := seedUser(t, db, "dash@test.local")

	_, _, err := ReportProgress(db, userID, videos[0], 100, true, testContext(userID))
	require.NoError(t, err)
	_, _, err = ReportProgress(db, userID, videos[1], 50, false, testContext(userID))
	require.NoError(t, err)

	stats, err := UserDashboardStats(db, userID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.TotalModules)
	assert.Equal(t, int64(1), stats.TotalTrainings)
	assert.Equal(t, int64(2), stats.TotalVideos)
	assert.Equal(t, int64(1), stats.CompletedVideos)
	assert.Equal(t, int64(1), stats.InProgressVideos)
	assert.Equal(t, float64(50), stats.OverallProgress)
	assert.Equal(t, int64(0), stats.CertificatesEarned)

	require.Len(t, stats.RecentActivity, 2)
	// Ordered by most recently watched first
	assert.Equal(t, float64(25), stats.RecentActivity[0].ProgressPercentage)
	assert.False(t, stats.RecentActivity[0].Completed)
	assert.True(t, stats.RecentActivity[1].Completed)
}

func TestUserDashboardStatsEmpty(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "fresh@test.local")

	stats, err := UserDashboardStats(db, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalVideos)
	assert.Equal(t, float64(0), stats.OverallProgress)
	assert.Empty(t, stats.RecentActivity)

	var zero models.UserProgress
	assert.Error(t, db.First(&zero).Error)
}
