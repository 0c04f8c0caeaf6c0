package services

import (
	"log"

	"gorm.io/gorm"

	"dropu-backend/models"
	"dropu-backend/utils"
)

// RiderOnboarding carries everything an admin submits when onboarding a
// rider. Documents arrive as base64 payloads and are stored on disk; only
// their paths go to the database.
type RiderOnboarding struct {
	Name        string
	Email       string
	Password    string
	BikeNumber  *string
	PhoneNumber string
	BikeModel   string
	BikeColor   string
	License     string

	IDDocumentBase64     string
	DrivingLicenseBase64 string
	InsuranceBase64      string

	EmergencyContactName         string
	EmergencyContactPhone        string
	EmergencyContactRelationship string
}

type RiderService struct {
	DB     *gorm.DB
	Auth   *AuthService
	Tokens *TokenService
}

func NewRiderService(db *gorm.DB, auth *AuthService, tokens *TokenService) *RiderService {
	return &RiderService{DB: db, Auth: auth, Tokens: tokens}
}

// Create onboards a rider on behalf of an admin. Files are written before
// the row insert; if the insert fails the orphaned files are cleaned up.
func (s *RiderService) Create(createdBy uint, in RiderOnboarding) (*models.Rider, error) {
	taken, err := s.Auth.EmailTaken(in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	var paths []string
	saveDoc := func(b64 string) (string, error) {
		p, err := utils.SaveBase64File(b64, "rider_documents")
		if err == nil {
			paths = append(paths, p)
		}
		return p, err
	}
	cleanup := func() {
		for _, p := range paths {
			if rerr := utils.RemoveStoredFile(p); rerr != nil {
				log.Printf("warning: failed to remove rider document %s: %v", p, rerr)
			}
		}
	}

	idDoc, err := saveDoc(in.IDDocumentBase64)
	if err != nil {
		cleanup()
		return nil, err
	}
	drivingLicense, err := saveDoc(in.DrivingLicenseBase64)
	if err != nil {
		cleanup()
		return nil, err
	}
	insurance, err := saveDoc(in.InsuranceBase64)
	if err != nil {
		cleanup()
		return nil, err
	}

	rider := models.Rider{
		Name:           in.Name,
		Email:          in.Email,
		Password:       hash,
		BikeNumber:     in.BikeNumber,
		PhoneNumber:    in.PhoneNumber,
		BikeModel:      in.BikeModel,
		BikeColor:      in.BikeColor,
		License:        in.License,
		IDDocument:     idDoc,
		DrivingLicense: drivingLicense,
		Insurance:      insurance,

		EmergencyContactName:         in.EmergencyContactName,
		EmergencyContactPhone:        in.EmergencyContactPhone,
		EmergencyContactRelationship: in.EmergencyContactRelationship,

		CreatedBy: createdBy,
		Status:    "active",
	}
	if err := s.DB.Create(&rider).Error; err != nil {
		cleanup()
		return nil, err
	}
	return &rider, nil
}

func (s *RiderService) GetAll() ([]models.Rider, error) {
	var riders []models.Rider
	err := s.DB.Find(&riders).Error
	return riders, err
}

func (s *RiderService) GetByID(id uint) (*models.Rider, error) {
	var rider models.Rider
	if err := s.DB.First(&rider, id).Error; err != nil {
		return nil, err
	}
	return &rider, nil
}

func (s *RiderService) UpdateStatus(id uint, status string) error {
	res := s.DB.Model(&models.Rider{}).Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a rider and its reset tokens in one transaction, then
// removes the document files best-effort. Filesystem failures are logged,
// never rolled back into the committed deletion.
func (s *RiderService) Delete(id uint) error {
	rider, err := s.GetByID(id)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rider_id = ?", id).Delete(&models.ResetToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Rider{}, id).Error
	})
	if err != nil {
		return err
	}

	for _, p := range []string{rider.IDDocument, rider.DrivingLicense, rider.Insurance} {
		if rerr := utils.RemoveStoredFile(p); rerr != nil {
			log.Printf("warning: failed to remove rider document %s: %v", p, rerr)
		}
	}
	return nil
}

// ResetPassword redeems a reset token and sets the rider's permanent
// password in its place.
func (s *RiderService) ResetPassword(token, newPassword string) error {
	riderID, err := s.Tokens.RedeemResetToken(token)
	if err != nil {
		return err
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.DB.Model(&models.Rider{}).Where("id = ?", riderID).
		Update("password", hash).Error
}
