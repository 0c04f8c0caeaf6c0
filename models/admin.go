package models

import (
	"time"

	"gorm.io/datatypes"
)

// Admin covers both regular admins and the super admin; the two are
// distinguished by the Role column, not by separate tables.
type Admin struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"size:100;not null" json:"name"`
	Email          string         `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password       string         `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialized
	ProfilePicture *string        `gorm:"size:255" json:"profile_picture,omitempty"`
	LastLogin      *time.Time     `json:"last_login,omitempty"`
	Preferences    datatypes.JSON `json:"preferences,omitempty"`
	Role           Role           `gorm:"size:20;not null;default:admin" json:"role"`
}
