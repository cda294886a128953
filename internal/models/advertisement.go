package models

import "time"

type Advertisement struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Title    string  `gorm:"not null" json:"title"`
	Brand    string  `gorm:"not null" json:"brand"`
	Duration int     `gorm:"not null" json:"duration"` // seconds
	Reward   float64 `gorm:"type:decimal(20,2);not null" json:"reward"`
	Category string  `gorm:"not null" json:"category"`
	Type     string  `gorm:"type:varchar(10);not null" json:"type"` // video | image
	URL      string  `gorm:"not null" json:"url"`
	Thumbnail string `gorm:"not null" json:"thumbnail"`

	// CurrentViews never exceeds MaxViews; each watch increments it by one
	// and credits the viewer in the same database transaction.
	MaxViews     int  `gorm:"not null" json:"max_views"`
	CurrentViews int  `gorm:"default:0" json:"current_views"`
	IsActive     bool `gorm:"default:true" json:"is_active"`
}
