package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dropu-backend/models"
	"dropu-backend/utils"
)

// newTestDB opens a per-test in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Rider{},
		&models.Agent{},
		&models.Customer{},
		&models.Issue{},
		&models.Feedback{},
		&models.VerificationCode{},
		&models.ResetToken{},
	))
	return db
}

// sentMail records one delivery attempt made through the fake mailer.
type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	Sent []sentMail
	Fail bool
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.Sent = append(m.Sent, sentMail{To: to, Subject: subject, Body: body})
	if m.Fail {
		return fmt.Errorf("smtp unreachable")
	}
	return nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func seedAdmin(t *testing.T, db *gorm.DB, email, password string, role models.Role) *models.Admin {
	t.Helper()
	admin := models.Admin{
		Name:     "Test Admin",
		Email:    email,
		Password: mustHash(t, password),
		Role:     role,
	}
	require.NoError(t, db.Create(&admin).Error)
	return &admin
}

func seedRider(t *testing.T, db *gorm.DB, email, password string) *models.Rider {
	t.Helper()
	rider := models.Rider{
		Name:                         "Test Rider",
		Email:                        email,
		Password:                     mustHash(t, password),
		PhoneNumber:                  "0700000000",
		BikeModel:                    "Boxer 150",
		BikeColor:                    "red",
		License:                      "DL-1234",
		IDDocument:                   "rider_documents/id.jpg",
		DrivingLicense:               "rider_documents/dl.jpg",
		Insurance:                    "rider_documents/ins.jpg",
		EmergencyContactName:         "Next of Kin",
		EmergencyContactPhone:        "0711111111",
		EmergencyContactRelationship: "sibling",
		CreatedBy:                    1,
		Status:                       "active",
	}
	require.NoError(t, db.Create(&rider).Error)
	return &rider
}
