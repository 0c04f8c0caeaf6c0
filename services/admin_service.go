package services

import (
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"dropu-backend/models"
	"dropu-backend/utils"
)

// AdminService manages admin accounts and the verified profile-change flow.
// Email and password changes are gated by single-use verification codes.
type AdminService struct {
	DB     *gorm.DB
	Auth   *AuthService
	Tokens *TokenService
}

func NewAdminService(db *gorm.DB, auth *AuthService, tokens *TokenService) *AdminService {
	return &AdminService{DB: db, Auth: auth, Tokens: tokens}
}

// CreateAdmin registers a regular admin. Only the super admin reaches this
// path; the route guard enforces that.
func (s *AdminService) CreateAdmin(name, email, password string) (*models.Admin, error) {
	taken, err := s.Auth.EmailTaken(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := models.Admin{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	if err := s.DB.Create(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminService) GetAll() ([]models.Admin, error) {
	var admins []models.Admin
	err := s.DB.Find(&admins).Error
	return admins, err
}

func (s *AdminService) GetByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// Delete removes an admin and its dependent verification codes in one
// transaction. The profile picture is removed from disk only after commit;
// the filesystem is not transactional with the database, so a failed unlink
// is logged and never rolls the deletion back.
func (s *AdminService) Delete(id uint) error {
	admin, err := s.GetByID(id)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("admin_id = ?", id).Delete(&models.VerificationCode{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Admin{}, id).Error
	})
	if err != nil {
		return err
	}

	if admin.ProfilePicture != nil {
		if err := utils.RemoveStoredFile(*admin.ProfilePicture); err != nil {
			log.Printf("warning: failed to remove profile picture for admin %d: %v", id, err)
		}
	}
	return nil
}

// UpdateProfilePicture stores the uploaded image and swaps the reference,
// removing the previous file best-effort.
func (s *AdminService) UpdateProfilePicture(id uint, imageBase64 string) (string, error) {
	admin, err := s.GetByID(id)
	if err != nil {
		return "", err
	}

	oldPath := admin.ProfilePicture

	path, err := utils.SaveBase64File(imageBase64, "profile_pictures")
	if err != nil {
		return "", err
	}
	if err := s.DB.Model(admin).Update("profile_picture", path).Error; err != nil {
		return "", err
	}

	if oldPath != nil {
		if rerr := utils.RemoveStoredFile(*oldPath); rerr != nil {
			log.Printf("warning: failed to remove old profile picture for admin %d: %v", id, rerr)
		}
	}
	return path, nil
}

func (s *AdminService) UpdatePreferences(id uint, prefs datatypes.JSON) error {
	return s.DB.Model(&models.Admin{}).Where("id = ?", id).
		Update("preferences", prefs).Error
}

// RequestEmailChange mails a verification code for a pending email change.
func (s *AdminService) RequestEmailChange(id uint) error {
	_, err := s.Tokens.IssueVerificationCode(id, models.VerifyEmail)
	return err
}

// ConfirmEmailChange consumes the code and applies the new address. The new
// email must still be unique across every account table.
func (s *AdminService) ConfirmEmailChange(id uint, code, newEmail string) error {
	taken, err := s.Auth.EmailTaken(newEmail)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateEmail
	}
	if err := s.Tokens.VerifyAndConsume(id, models.VerifyEmail, code); err != nil {
		return err
	}
	return s.DB.Model(&models.Admin{}).Where("id = ?", id).
		Update("email", newEmail).Error
}

// RequestPasswordChange mails a verification code for a password change.
func (s *AdminService) RequestPasswordChange(id uint) error {
	_, err := s.Tokens.IssueVerificationCode(id, models.VerifyPassword)
	return err
}

// ConfirmPasswordChange consumes the code and rehashes the password.
func (s *AdminService) ConfirmPasswordChange(id uint, code, newPassword string) error {
	if err := s.Tokens.VerifyAndConsume(id, models.VerifyPassword, code); err != nil {
		return err
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.DB.Model(&models.Admin{}).Where("id = ?", id).
		Update("password", hash).Error
}
