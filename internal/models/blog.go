package models

import "time"

// BlogPost content must be at least 500 characters; enforced at the input
// validation layer, not here.
type BlogPost struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Category string `gorm:"not null" json:"category"`
	Author   string `gorm:"not null" json:"author"`
	AuthorID uint   `gorm:"index;not null" json:"author_id"`

	Status   ModerationStatus `gorm:"type:varchar(20);index;not null;default:'pending'" json:"status"`
	Views    int              `gorm:"default:0" json:"views"`
	Feedback string           `gorm:"type:text" json:"feedback,omitempty"`
}
