package utils

import (
	"path/filepath"
	"strings"
	"testing"

	"trainhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGenerateUniqueCertificateCode(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserCertificate{}))

	code, err := GenerateUniqueCertificateCode(db)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(code, "CERT-"))
	assert.Equal(t, code, strings.ToUpper(code))
	assert.Len(t, code, len("CERT-")+36)
}

func TestClientIP(t *testing.T) {
	assert.Equal(t, "203.0.113.7", ClientIP("203.0.113.7, 10.0.0.2", "10.0.0.1"))
	assert.Equal(t, "203.0.113.7", ClientIP("203.0.113.7", "10.0.0.1"))
	assert.Equal(t, "10.0.0.1", ClientIP("", "10.0.0.1"))
}
