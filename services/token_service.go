package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"dropu-backend/models"
	"dropu-backend/utils"
)

const (
	verificationCodeTTL = 10 * time.Minute
	resetTokenTTL       = 5 * time.Minute
)

// TokenService issues and consumes the two time-boxed credentials: 6-digit
// admin verification codes and 8-character rider reset tokens. Issue paths
// run delete+insert inside one transaction so at most one live token exists
// per (account, purpose) even under concurrent issuance.
type TokenService struct {
	DB     *gorm.DB
	Mailer utils.Mailer
}

func NewTokenService(db *gorm.DB, mailer utils.Mailer) *TokenService {
	return &TokenService{DB: db, Mailer: mailer}
}

// IssueVerificationCode supersedes any live code for (admin, purpose) and
// mails the new one. A delivery failure returns ErrNotification but leaves
// the stored code usable.
func (s *TokenService) IssueVerificationCode(adminID uint, purpose string) (string, error) {
	if purpose != models.VerifyEmail && purpose != models.VerifyPassword {
		return "", fmt.Errorf("unknown verification purpose %q", purpose)
	}

	var admin models.Admin
	if err := s.DB.First(&admin, adminID).Error; err != nil {
		return "", err
	}

	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return "", err
	}

	row := models.VerificationCode{
		AdminID:   adminID,
		Code:      code,
		Type:      purpose,
		ExpiresAt: time.Now().Add(verificationCodeTTL),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("admin_id = ? AND type = ?", adminID, purpose).
			Delete(&models.VerificationCode{}).Error; err != nil {
			return err
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return "", err
	}

	subject := "Verification Code for Dropu Profile Update"
	body := fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code)
	if err := s.Mailer.Send(admin.Email, subject, body); err != nil {
		// The row stays; the admin may still use the code if the mail
		// eventually arrived through a retry outside this service.
		return code, fmt.Errorf("%w: %v", ErrNotification, err)
	}
	return code, nil
}

// VerifyAndConsume burns a verification code. The match is on admin id,
// purpose, code value, and unexpired timestamp together; every mismatch
// reports the same ErrInvalidOrExpired.
func (s *TokenService) VerifyAndConsume(adminID uint, purpose, code string) error {
	// The failure sentinel leaves the closure via this flag, not as its
	// return value: returning an error would roll back the lazy cleanup
	// delete of an expired row, which has to commit.
	var invalid bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var row models.VerificationCode
		err := tx.Where("admin_id = ? AND type = ? AND code = ?", adminID, purpose, code).
			First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			invalid = true
			return nil
		}
		if err != nil {
			return err
		}
		if time.Now().After(row.ExpiresAt) {
			// Lazy cleanup; expiry has no background sweep.
			invalid = true
			return tx.Delete(&row).Error
		}
		return tx.Delete(&row).Error
	})
	if err != nil {
		return err
	}
	if invalid {
		return ErrInvalidOrExpired
	}
	return nil
}

// IssueResetToken replaces the rider's password with a temporary one derived
// from a fresh 8-character token, so the token works as a login credential
// until redeemed or expired. Returns the token and its expiry.
func (s *TokenService) IssueResetToken(riderID uint) (string, time.Time, error) {
	var rider models.Rider
	if err := s.DB.First(&rider, riderID).Error; err != nil {
		return "", time.Time{}, err
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		return "", time.Time{}, err
	}
	hash, err := utils.HashPassword(token)
	if err != nil {
		return "", time.Time{}, err
	}

	expiry := time.Now().Add(resetTokenTTL)
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rider_id = ?", riderID).Delete(&models.ResetToken{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Rider{}).Where("id = ?", riderID).
			Update("password", hash).Error; err != nil {
			return err
		}
		return tx.Create(&models.ResetToken{
			RiderID:   riderID,
			Token:     token,
			ExpiresAt: expiry,
		}).Error
	})
	if err != nil {
		return "", time.Time{}, err
	}

	frontendURL := utils.EnvOrDefault("FRONTEND_URL", "http://localhost:3000")
	subject := "Dropu Rider Password Reset"
	body := fmt.Sprintf(
		"Your temporary password is %s. It expires in 5 minutes.\n"+
			"Set a new password here: %s/rider/reset-password?token=%s",
		token, frontendURL, token,
	)
	if err := s.Mailer.Send(rider.Email, subject, body); err != nil {
		return token, expiry, fmt.Errorf("%w: %v", ErrNotification, err)
	}
	return token, expiry, nil
}

// RedeemResetToken consumes a token by value and returns the owning rider
// id. Expired and orphaned rows are deleted on sight, so a retried lookup
// fails as not-found rather than expired.
func (s *TokenService) RedeemResetToken(token string) (uint, error) {
	// As in VerifyAndConsume, the sentinel is carried out through a flag
	// so the expired/orphaned-row cleanup deletes commit instead of being
	// rolled back with the failed transaction.
	var (
		riderID uint
		invalid bool
	)
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var row models.ResetToken
		err := tx.Where("token = ?", token).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			invalid = true
			return nil
		}
		if err != nil {
			return err
		}

		if time.Now().After(row.ExpiresAt) {
			invalid = true
			return tx.Delete(&row).Error
		}

		var count int64
		if err := tx.Model(&models.Rider{}).Where("id = ?", row.RiderID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			invalid = true
			return tx.Delete(&row).Error
		}

		if err := tx.Delete(&row).Error; err != nil {
			return err
		}
		riderID = row.RiderID
		return nil
	})
	if err != nil {
		return 0, err
	}
	if invalid {
		return 0, ErrInvalidOrExpired
	}
	return riderID, nil
}
