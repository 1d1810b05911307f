package utils

import (
	"errors"
	"strings"

	"trainhub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateUniqueCertificateCode produces an opaque certificate code and
// verifies it is not already in use. Collisions are practically impossible
// with a UUID source, but the check keeps the unique column the single
// source of truth.
func GenerateUniqueCertificateCode(tx *gorm.DB) (string, error) {
	for {
		code := "CERT-" + strings.ToUpper(uuid.New().String())

		var cert models.UserCertificate
		err := tx.Where("certificate_code = ?", code).First(&cert).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return code, nil
			}
			return "", err
		}
	}
}

// ClientIP resolves the originating client address, honouring the first
// entry of X-Forwarded-For when the service sits behind a proxy.
func ClientIP(forwardedFor, remoteAddr string) string {
	if forwardedFor != "" {
		parts := strings.Split(forwardedFor, ",")
		return strings.TrimSpace(parts[0])
	}
	return remoteAddr
}
