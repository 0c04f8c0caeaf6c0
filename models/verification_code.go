package models

import "time"

// Verification code purposes. A code is only valid for the purpose it
// was issued under.
const (
	VerifyEmail    = "email"
	VerifyPassword = "password"
)

// VerificationCode gates an admin's email or password change. At most one
// live code exists per (admin, purpose); consumption deletes the row.
type VerificationCode struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AdminID   uint      `gorm:"not null;index" json:"admin_id"`
	Code      string    `gorm:"size:6;not null" json:"-"`
	Type      string    `gorm:"size:20;not null" json:"type"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
