package models

import "time"

// ResetToken doubles as a rider's temporary login password: at issuance the
// rider's stored hash is replaced with the hash of the token value, so the
// old password stops working immediately. One live token per rider.
type ResetToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RiderID   uint      `gorm:"not null;index" json:"rider_id"`
	Token     string    `gorm:"size:8;not null;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
