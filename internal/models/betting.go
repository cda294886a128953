package models

import "time"

type BettingTip struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Match      string `gorm:"not null" json:"match"`
	League     string `gorm:"not null" json:"league"`
	Time       string `gorm:"not null" json:"time"`
	Prediction string `gorm:"not null" json:"prediction"`
	Odds       string `gorm:"not null" json:"odds"`
	Confidence string `gorm:"type:varchar(10);not null" json:"confidence"` // High | Medium | Low
	Analysis   string `gorm:"type:text;not null" json:"analysis"`
	Date       string `gorm:"not null" json:"date"`
	IsActive   bool   `gorm:"default:true" json:"is_active"`
}
