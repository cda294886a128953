package models

import (
	"time"

	"gorm.io/datatypes"
)

type TaskType string

const (
	TaskTypeSurvey        TaskType = "survey"
	TaskTypeTask          TaskType = "task"
	TaskTypeBidding       TaskType = "bidding"
	TaskTypeTranscription TaskType = "transcription"
)

type Task struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Title        string   `gorm:"not null" json:"title"`
	Description  string   `gorm:"type:text;not null" json:"description"`
	Category     string   `gorm:"not null" json:"category"`
	Type         TaskType `gorm:"type:varchar(20);not null" json:"type"`
	Reward       float64  `gorm:"type:decimal(20,2);not null" json:"reward"`
	Duration     string   `json:"duration"`
	Difficulty   string   `json:"difficulty"` // Easy | Medium | Hard
	Requirements string   `gorm:"type:text" json:"requirements"`

	// Bidding and transcription tasks consume the bidder pool; every other
	// type consumes the response pool. A zero max means unlimited.
	MaxResponses     int `gorm:"default:0" json:"max_responses"`
	CurrentResponses int `gorm:"default:0" json:"current_responses"`
	MaxBidders       int `gorm:"default:0" json:"max_bidders"`
	CurrentBidders   int `gorm:"default:0" json:"current_bidders"`

	Deadline     string         `json:"deadline,omitempty"`
	CanRedo      bool           `gorm:"default:false" json:"can_redo"`
	Questions    datatypes.JSON `gorm:"type:jsonb" json:"questions,omitempty" swaggertype:"object"`
	Instructions string         `gorm:"type:text" json:"instructions,omitempty"`
	Attachments  datatypes.JSON `gorm:"type:jsonb" json:"attachments,omitempty" swaggertype:"object"`
	AudioURL     string         `json:"audio_url,omitempty"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
}

// UsesBidderPool reports whether submissions count against the bidder
// counters instead of the response counters.
func (t *Task) UsesBidderPool() bool {
	return t.Type == TaskTypeBidding || t.Type == TaskTypeTranscription
}

// AtCapacity reports whether the type-appropriate counter has reached its
// limit. A zero limit means the task never fills up.
func (t *Task) AtCapacity() bool {
	if t.UsesBidderPool() {
		return t.MaxBidders > 0 && t.CurrentBidders >= t.MaxBidders
	}
	return t.MaxResponses > 0 && t.CurrentResponses >= t.MaxResponses
}

// TaskSubmission holds one member's answer to a task. At most one submission
// exists per (task, user) pair.
type TaskSubmission struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	TaskID   uint             `gorm:"uniqueIndex:idx_task_user;not null" json:"task_id"`
	UserID   uint             `gorm:"uniqueIndex:idx_task_user;not null" json:"user_id"`
	Response string           `gorm:"type:text" json:"response"`
	Status   ModerationStatus `gorm:"type:varchar(20);index;not null;default:'pending'" json:"status"`
	Feedback string           `gorm:"type:text" json:"feedback,omitempty"`

	Task *Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}
