package models

import "time"

type Feedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	UserType  string    `gorm:"size:20;not null" json:"user_type"`
	Message   string    `gorm:"size:1000;not null" json:"message"`
	Region    string    `gorm:"size:100;not null" json:"region"`
	Category  string    `gorm:"size:50;not null" json:"category"`
	Status    string    `gorm:"size:50;not null" json:"status"`
	Rating    int       `gorm:"not null" json:"rating"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

// Feedback uses the plural-free table name the schema started with.
func (Feedback) TableName() string { return "feedback" }
