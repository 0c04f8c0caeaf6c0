package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"dropu-backend/models"
	"dropu-backend/utils"
)

// AuthService authenticates accounts and handles customer self-registration.
// Login resolves by email alone, so it probes each account table in turn.
type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// EmailTaken reports whether the email exists in any account table. Emails
// are unique across the union of all variants, since login cannot know the
// variant up front.
func (s *AuthService) EmailTaken(email string) (bool, error) {
	for _, model := range []any{
		&models.Admin{},
		&models.Rider{},
		&models.Agent{},
		&models.Customer{},
	} {
		var count int64
		if err := s.DB.Model(model).Where("email = ?", email).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

// Authenticate verifies credentials and returns the account id and role.
// Admin rows carry their own role column (admin or super_admin).
func (s *AuthService) Authenticate(email, password string) (uint, models.Role, error) {
	var admin models.Admin
	err := s.DB.Where("email = ?", email).First(&admin).Error
	if err == nil {
		if !utils.CheckPassword(admin.Password, password) {
			return 0, "", ErrInvalidCredentials
		}
		now := time.Now()
		if uerr := s.DB.Model(&admin).Update("last_login", &now).Error; uerr != nil {
			return 0, "", uerr
		}
		return admin.ID, admin.Role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, "", err
	}

	var rider models.Rider
	err = s.DB.Where("email = ?", email).First(&rider).Error
	if err == nil {
		if !utils.CheckPassword(rider.Password, password) {
			return 0, "", ErrInvalidCredentials
		}
		if aerr := s.enforceResetTokenExpiry(&rider, password); aerr != nil {
			return 0, "", aerr
		}
		return rider.ID, models.RoleRider, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, "", err
	}

	var agent models.Agent
	err = s.DB.Where("email = ?", email).First(&agent).Error
	if err == nil {
		if !utils.CheckPassword(agent.Password, password) {
			return 0, "", ErrInvalidCredentials
		}
		return agent.ID, models.RoleAgent, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, "", err
	}

	var customer models.Customer
	err = s.DB.Where("email = ?", email).First(&customer).Error
	if err == nil {
		if !utils.CheckPassword(customer.Password, password) {
			return 0, "", ErrInvalidCredentials
		}
		return customer.ID, models.RoleCustomer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, "", err
	}

	return 0, "", ErrInvalidCredentials
}

// enforceResetTokenExpiry closes the window where a rider's temporary
// password (the reset token value) would keep working after the token
// expired: the password hash matched, but if the supplied password is an
// expired token, the row is dropped and login fails.
func (s *AuthService) enforceResetTokenExpiry(rider *models.Rider, password string) error {
	var token models.ResetToken
	err := s.DB.Where("rider_id = ?", rider.ID).First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if token.Token != password {
		return nil
	}
	if time.Now().After(token.ExpiresAt) {
		if derr := s.DB.Delete(&token).Error; derr != nil {
			return derr
		}
		return ErrInvalidCredentials
	}
	return nil
}

// Register creates a self-service account. Only customers may register this
// way; admins, riders, and agents are created by privileged actors.
func (s *AuthService) Register(email, password, name string, role models.Role) (uint, error) {
	switch role {
	case models.RoleCustomer:
		// fallthrough to creation
	case models.RoleAdmin, models.RoleRider, models.RoleAgent, models.RoleSuperAdmin:
		return 0, ErrForbiddenRole
	default:
		return 0, ErrForbiddenRole
	}

	taken, err := s.EmailTaken(email)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return 0, err
	}

	customer := models.Customer{
		Name:     name,
		Email:    email,
		Password: hash,
	}
	if err := s.DB.Create(&customer).Error; err != nil {
		return 0, err
	}
	return customer.ID, nil
}
