package models

import "time"

type Rider struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Email       string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password    string  `gorm:"size:255;not null" json:"-"`
	BikeNumber  *string `gorm:"size:50;uniqueIndex" json:"bike_number,omitempty"`
	PhoneNumber string  `gorm:"size:20;not null" json:"phone_number"`
	BikeModel   string  `gorm:"size:100;not null" json:"bike_model"`
	BikeColor   string  `gorm:"size:50;not null" json:"bike_color"`
	License     string  `gorm:"size:100;not null" json:"license"`

	// Stored as uploads-relative paths; file content never enters the DB.
	IDDocument     string `gorm:"size:255;not null" json:"id_document"`
	DrivingLicense string `gorm:"size:255;not null" json:"driving_license"`
	Insurance      string `gorm:"size:255;not null" json:"insurance"`

	EmergencyContactName         string `gorm:"size:100;not null" json:"emergency_contact_name"`
	EmergencyContactPhone        string `gorm:"size:20;not null" json:"emergency_contact_phone"`
	EmergencyContactRelationship string `gorm:"size:50;not null" json:"emergency_contact_relationship"`

	CreatedBy uint      `gorm:"not null" json:"created_by"`
	Status    string    `gorm:"size:20;not null;default:active" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
