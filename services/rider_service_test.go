package services

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dropu-backend/models"
)

var testDoc = base64.StdEncoding.EncodeToString([]byte("document-bytes"))

func newRiderService(t *testing.T) (*RiderService, *TokenService, *AuthService) {
	t.Helper()
	t.Chdir(t.TempDir()) // uploads/ is CWD-relative

	db := newTestDB(t)
	auth := NewAuthService(db)
	tokens := NewTokenService(db, &fakeMailer{})
	return NewRiderService(db, auth, tokens), tokens, auth
}

func onboarding(email string) RiderOnboarding {
	return RiderOnboarding{
		Name:        "New Rider",
		Email:       email,
		Password:    "riderpw1",
		PhoneNumber: "0700000000",
		BikeModel:   "Boxer 150",
		BikeColor:   "blue",
		License:     "DL-9876",

		IDDocumentBase64:     testDoc,
		DrivingLicenseBase64: testDoc,
		InsuranceBase64:      testDoc,

		EmergencyContactName:         "Kin",
		EmergencyContactPhone:        "0711111111",
		EmergencyContactRelationship: "parent",
	}
}

func TestRiderOnboarding(t *testing.T) {
	svc, _, auth := newRiderService(t)

	rider, err := svc.Create(7, onboarding("rider@x.com"))
	require.NoError(t, err)
	assert.Equal(t, uint(7), rider.CreatedBy)
	assert.Equal(t, "active", rider.Status)

	// Documents landed on disk under the stored paths.
	for _, p := range []string{rider.IDDocument, rider.DrivingLicense, rider.Insurance} {
		_, err := os.Stat(filepath.Join("uploads", p))
		assert.NoError(t, err, p)
	}

	_, role, err := auth.Authenticate("rider@x.com", "riderpw1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleRider, role)

	_, err = svc.Create(7, onboarding("rider@x.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRiderUpdateStatus(t *testing.T) {
	svc, _, _ := newRiderService(t)

	rider, err := svc.Create(1, onboarding("rider@x.com"))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(rider.ID, "suspended"))
	reloaded, err := svc.GetByID(rider.ID)
	require.NoError(t, err)
	assert.Equal(t, "suspended", reloaded.Status)

	err = svc.UpdateStatus(rider.ID+1, "active")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRiderDeleteCleansUpTokensAndFiles(t *testing.T) {
	svc, tokens, _ := newRiderService(t)

	rider, err := svc.Create(1, onboarding("rider@x.com"))
	require.NoError(t, err)

	_, _, err = tokens.IssueResetToken(rider.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(rider.ID))

	var tokenCount int64
	require.NoError(t, svc.DB.Model(&models.ResetToken{}).Where("rider_id = ?", rider.ID).Count(&tokenCount).Error)
	assert.Zero(t, tokenCount)

	var riderCount int64
	require.NoError(t, svc.DB.Model(&models.Rider{}).Count(&riderCount).Error)
	assert.Zero(t, riderCount)

	for _, p := range []string{rider.IDDocument, rider.DrivingLicense, rider.Insurance} {
		_, err := os.Stat(filepath.Join("uploads", p))
		assert.True(t, os.IsNotExist(err), p)
	}
}

func TestRiderResetPasswordEndToEnd(t *testing.T) {
	svc, tokens, auth := newRiderService(t)

	rider, err := svc.Create(1, onboarding("rider@x.com"))
	require.NoError(t, err)

	token, _, err := tokens.IssueResetToken(rider.ID)
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(token, "permanent1"))

	// Token consumed, permanent password live, temporary one dead.
	err = svc.ResetPassword(token, "again")
	assert.ErrorIs(t, err, ErrInvalidOrExpired)

	_, _, err = auth.Authenticate("rider@x.com", "permanent1")
	assert.NoError(t, err)
	_, _, err = auth.Authenticate("rider@x.com", token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
