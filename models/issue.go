package models

import "time"

type Issue struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Urgency     bool      `gorm:"default:false" json:"urgency"`
	Timestamp   time.Time `gorm:"autoCreateTime" json:"timestamp"`
	Status      string    `gorm:"size:20;default:open" json:"status"`
}
