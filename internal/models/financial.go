package models

import (
	"time"

	"gorm.io/datatypes"
)

// DepositRequest is created by a member pasting an M-Pesa confirmation
// message; an admin reconciles it manually and approves or rejects.
type DepositRequest struct {
	ID           uint             `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"-"`
	UserID       uint             `gorm:"index;not null" json:"user_id"`
	UserName     string           `gorm:"not null" json:"user_name"`
	Amount       float64          `gorm:"type:decimal(20,2);not null" json:"amount"`
	MpesaMessage string           `gorm:"type:text;not null" json:"mpesa_message"`
	Status       ModerationStatus `gorm:"type:varchar(20);index;not null;default:'pending'" json:"status"`
}

type WithdrawalMethod string

const (
	WithdrawalMethodMpesa WithdrawalMethod = "mpesa"
	WithdrawalMethodBank  WithdrawalMethod = "bank"
)

type WithdrawalRequest struct {
	ID        uint             `gorm:"primarykey" json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"-"`
	UserID    uint             `gorm:"index;not null" json:"user_id"`
	UserName  string           `gorm:"not null" json:"user_name"`
	Amount    float64          `gorm:"type:decimal(20,2);not null" json:"amount"`
	Method    WithdrawalMethod `gorm:"type:varchar(20);not null" json:"method"`
	Details   datatypes.JSON   `gorm:"type:jsonb" json:"details" swaggertype:"object"`
	Status    ModerationStatus `gorm:"type:varchar(20);index;not null;default:'pending'" json:"status"`
}
