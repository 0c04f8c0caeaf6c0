package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropu-backend/models"
)

func expireRow(t *testing.T, svc *TokenService, model any, where string, args ...any) {
	t.Helper()
	q := svc.DB.Model(model)
	if where != "" {
		q = q.Where(where, args...)
	}
	require.NoError(t, q.Update("expires_at", time.Now().Add(-time.Second)).Error)
}

func TestVerificationCodeSingleUse(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, &fakeMailer{})
	admin := seedAdmin(t, db, "admin@x.com", "pw", models.RoleAdmin)

	code, err := svc.IssueVerificationCode(admin.ID, models.VerifyEmail)
	require.NoError(t, err)
	require.Len(t, code, 6)

	require.NoError(t, svc.VerifyAndConsume(admin.ID, models.VerifyEmail, code))

	// Consumed means gone; the same code must not verify twice.
	err = svc.VerifyAndConsume(admin.ID, models.VerifyEmail, code)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestVerificationCodeSuperseded(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, &fakeMailer{})
	admin := seedAdmin(t, db, "admin@x.com", "pw", models.RoleAdmin)

	first, err := svc.IssueVerificationCode(admin.ID, models.VerifyPassword)
	require.NoError(t, err)
	second, err := svc.IssueVerificationCode(admin.ID, models.VerifyPassword)
	require.NoError(t, err)

	// Reissuing invalidates the first code even though its wall-clock
	// expiry has not passed.
	if first != second {
		err = svc.VerifyAndConsume(admin.ID, models.VerifyPassword, first)
		assert.ErrorIs(t, err, ErrInvalidOrExpired)
	}
	require.NoError(t, svc.VerifyAndConsume(admin.ID, models.VerifyPassword, second))

	var count int64
	require.NoError(t, db.Model(&models.VerificationCode{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestVerificationCodePurposeIsolation(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, &fakeMailer{})
	admin := seedAdmin(t, db, "admin@x.com", "pw", models.RoleAdmin)

	code, err := svc.IssueVerificationCode(admin.ID, models.VerifyEmail)
	require.NoError(t, err)

	// Right code, wrong purpose: same uniform failure.
	err = svc.VerifyAndConsume(admin.ID, models.VerifyPassword, code)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)

	// Issuing for one purpose must not clobber the other's code.
	_, err = svc.IssueVerificationCode(admin.ID, models.VerifyPassword)
	require.NoError(t, err)
	require.NoError(t, svc.VerifyAndConsume(admin.ID, models.VerifyEmail, code))
}

func TestVerificationCodeExpiry(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, &fakeMailer{})
	admin := seedAdmin(t, db, "admin@x.com", "pw", models.RoleAdmin)

	code, err := svc.IssueVerificationCode(admin.ID, models.VerifyEmail)
	require.NoError(t, err)

	expireRow(t, svc, &models.VerificationCode{}, "admin_id = ?", admin.ID)

	err = svc.VerifyAndConsume(admin.ID, models.VerifyEmail, code)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)

	// Expired rows are cleaned up when touched.
	var count int64
	require.NoError(t, db.Model(&models.VerificationCode{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestVerificationCodeSurvivesDeliveryFailure(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{Fail: true}
	svc := NewTokenService(db, mailer)
	admin := seedAdmin(t, db, "admin@x.com", "pw", models.RoleAdmin)

	code, err := svc.IssueVerificationCode(admin.ID, models.VerifyEmail)
	assert.ErrorIs(t, err, ErrNotification)
	require.Len(t, mailer.Sent, 1)

	// Delivery failed but the stored code is still live.
	require.NoError(t, svc.VerifyAndConsume(admin.ID, models.VerifyEmail, code))
}

func TestIssueVerificationCodeUnknownPurpose(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, &fakeMailer{})
	admin := seedAdmin(t, db, "admin@x.com", "pw", models.RoleAdmin)

	_, err := svc.IssueVerificationCode(admin.ID, "phone")
	assert.Error(t, err)
}

func TestResetTokenActsAsTemporaryPassword(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewTokenService(db, mailer)
	auth := NewAuthService(db)
	rider := seedRider(t, db, "rider@x.com", "oldpw")

	token, expiry, err := svc.IssueResetToken(rider.ID)
	require.NoError(t, err)
	require.Len(t, token, 8)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), expiry, 10*time.Second)
	require.Len(t, mailer.Sent, 1)
	assert.Contains(t, mailer.Sent[0].Body, token)
	assert.Contains(t, mailer.Sent[0].Body, "/rider/reset-password?token=")

	// The old password is gone the moment the token is issued.
	_, _, err = auth.Authenticate("rider@x.com", "oldpw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Inside the window the token logs the rider in.
	id, role, err := auth.Authenticate("rider@x.com", token)
	require.NoError(t, err)
	assert.Equal(t, rider.ID, id)
	assert.Equal(t, models.RoleRider, role)
}

func TestExpiredResetTokenStopsLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, &fakeMailer{})
	auth := NewAuthService(db)
	rider := seedRider(t, db, "rider@x.com", "oldpw")

	token, _, err := svc.IssueResetToken(rider.ID)
	require.NoError(t, err)

	expireRow(t, svc, &models.ResetToken{}, "rider_id = ?", rider.ID)

	_, _, err = auth.Authenticate("rider@x.com", token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// The expired row was removed on the way out.
	var count int64
	require.NoError(t, db.Model(&models.ResetToken{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRedeemResetToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, &fakeMailer{})
	rider := seedRider(t, db, "rider@x.com", "oldpw")

	token, _, err := svc.IssueResetToken(rider.ID)
	require.NoError(t, err)

	id, err := svc.RedeemResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, rider.ID, id)

	// One-time use.
	_, err = svc.RedeemResetToken(token)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestRedeemExpiredResetTokenDeletesRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, &fakeMailer{})
	rider := seedRider(t, db, "rider@x.com", "oldpw")

	token, _, err := svc.IssueResetToken(rider.ID)
	require.NoError(t, err)

	expireRow(t, svc, &models.ResetToken{}, "rider_id = ?", rider.ID)

	_, err = svc.RedeemResetToken(token)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)

	// The row is gone, so a retry is not-found rather than expired.
	var count int64
	require.NoError(t, db.Model(&models.ResetToken{}).Count(&count).Error)
	assert.Zero(t, count)

	_, err = svc.RedeemResetToken(token)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestRedeemResetTokenOrphanedRider(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, &fakeMailer{})
	rider := seedRider(t, db, "rider@x.com", "oldpw")

	token, _, err := svc.IssueResetToken(rider.ID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.Rider{}, rider.ID).Error)

	_, err = svc.RedeemResetToken(token)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)

	var count int64
	require.NoError(t, db.Model(&models.ResetToken{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestIssueResetTokenSupersedesPrevious(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, &fakeMailer{})
	auth := NewAuthService(db)
	rider := seedRider(t, db, "rider@x.com", "oldpw")

	first, _, err := svc.IssueResetToken(rider.ID)
	require.NoError(t, err)
	second, _, err := svc.IssueResetToken(rider.ID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.ResetToken{}).Where("rider_id = ?", rider.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	_, err = svc.RedeemResetToken(first)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)

	// The first token is no longer a valid temporary password either.
	_, _, err = auth.Authenticate("rider@x.com", first)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	id, err := svc.RedeemResetToken(second)
	require.NoError(t, err)
	assert.Equal(t, rider.ID, id)
}

func TestIssueResetTokenUnknownRider(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, &fakeMailer{})

	_, _, err := svc.IssueResetToken(999)
	assert.Error(t, err)
}
