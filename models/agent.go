package models

type Agent struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"size:100;not null" json:"name"`
	Email           string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password        string  `gorm:"size:255;not null" json:"-"`
	StationLocation *string `gorm:"size:255" json:"station_location,omitempty"`
}
