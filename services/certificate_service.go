package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"trainhub/models"
	"trainhub/utils"

	"gorm.io/gorm"
)

// CheckAndIssueCertificate issues a certificate for (user, training) when the
// user has completed every active video in the training. It is idempotent:
// the (user, training) unique index is the final arbiter, and a duplicate
// issuance attempt is a silent no-op. Trainings with no active videos never
// certify. Returns the new certificate, or nil when nothing was issued.
func CheckAndIssueCertificate(db *gorm.DB, userID, trainingID uint) (*models.UserCertificate, error) {
	// Deactivating a training hides it from the catalog but does not forfeit
	// completions already earned, so issuance does not check the active flag.
	var training models.Training
	if err := db.First(&training, trainingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var totalVideos int64
	if err := db.Model(&models.Video{}).
		Where("training_id = ? AND is_active = ?", trainingID, true).
		Count(&totalVideos).Error; err != nil {
		return nil, err
	}
	if totalVideos == 0 {
		return nil, nil
	}

	var completedVideos int64
	if err := db.Model(&models.UserProgress{}).
		Joins("JOIN videos ON videos.id = user_progress.video_id").
		Where("user_progress.user_id = ? AND user_progress.completed = ? AND videos.training_id = ? AND videos.is_active = ?",
			userID, true, trainingID, true).
		Count(&completedVideos).Error; err != nil {
		return nil, err
	}
	if completedVideos != totalVideos {
		return nil, nil
	}

	// Check if certificate already exists
	var existing models.UserCertificate
	if err := db.Where("user_id = ? AND training_id = ?", userID, trainingID).First(&existing).Error; err == nil {
		return nil, nil
	}

	code, err := utils.GenerateUniqueCertificateCode(db)
	if err != nil {
		return nil, err
	}

	cert := models.UserCertificate{
		UserID:          userID,
		TrainingID:      trainingID,
		CertificateCode: code,
		IssuedAt:        time.Now(),
	}

	if err := db.Create(&cert).Error; err != nil {
		// A concurrent completion got there first; the constraint holds
		// the invariant, so this writer just backs off.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil
		}
		return nil, err
	}

	RecordAudit(db, SystemContext(), models.ActionCreate, "UserCertificate",
		strconv.Itoa(int(cert.ID)),
		fmt.Sprintf("Certificate issued for training %s", training.Title))

	NotifyUser(db, userID, "Certificate earned",
		fmt.Sprintf("You completed %s and earned certificate %s", training.Title, cert.CertificateCode),
		models.NotificationSuccess)

	return &cert, nil
}
